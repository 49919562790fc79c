package database

import "evtele/internal/models"

// PersistentModels returns the authoritative set of schema-managed GORM models.
func PersistentModels() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Program{},
		&models.Category{},
		&models.Replay{},
		&models.Comment{},
		&models.SiteSettings{},
	}
}
