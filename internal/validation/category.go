package validation

import (
	"fmt"
	"regexp"
	"strings"
)

var categoryNameRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9 &'-]{1,99}$`)

// "All" is the guide's wildcard and must never exist as a stored category.
var reservedCategoryNames = map[string]struct{}{
	"all": {},
}

// ValidateCategoryName validates a category label before it is stored.
func ValidateCategoryName(name string) error {
	if !categoryNameRegex.MatchString(name) {
		return fmt.Errorf("category name must be 2-100 characters and start with a letter or digit")
	}

	if strings.HasSuffix(name, " ") || strings.HasSuffix(name, "-") {
		return fmt.Errorf("category name cannot end with a space or hyphen")
	}

	if _, exists := reservedCategoryNames[strings.ToLower(name)]; exists {
		return fmt.Errorf("category name is reserved")
	}

	return nil
}
