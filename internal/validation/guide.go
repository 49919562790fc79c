package validation

import (
	"fmt"
	"regexp"
)

var (
	airTimeRegex   = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)
	programIDRegex = regexp.MustCompile(`^[1-9][0-9]{0,18}$`)
)

// ValidateAirTime checks that a program start time is a 24h "HH:MM" string.
// The guide sorts entries by comparing these strings directly, so the zero
// padding is load-bearing.
func ValidateAirTime(t string) error {
	if !airTimeRegex.MatchString(t) {
		return fmt.Errorf("time must be in 24-hour HH:MM format")
	}
	return nil
}

// ValidateKind checks a broadcast kind query or payload value.
func ValidateKind(kind string) error {
	switch kind {
	case "tv", "radio":
		return nil
	}
	return fmt.Errorf("type must be either 'tv' or 'radio'")
}

// ValidateChannel checks a live channel identifier.
func ValidateChannel(channel string) error {
	switch channel {
	case "tv", "radio":
		return nil
	}
	return fmt.Errorf("channel must be either 'tv' or 'radio'")
}

// ValidateCommentScope checks that a comment scope is a program ID in decimal
// form or one of the fixed live channel scopes.
func ValidateCommentScope(scope string) error {
	switch scope {
	case "live-tv", "live-radio":
		return nil
	}
	if programIDRegex.MatchString(scope) {
		return nil
	}
	return fmt.Errorf("scope must be a program ID, 'live-tv', or 'live-radio'")
}
