package database

import (
	"testing"

	"evtele/internal/config"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestConfigurePool(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	assert.NoError(t, err)

	cfg := &config.Config{
		DBMaxOpenConns:           10,
		DBMaxIdleConns:           5,
		DBConnMaxLifetimeMinutes: 15,
	}

	assert.NoError(t, configurePool(db, cfg))

	_, err = db.DB()
	assert.NoError(t, err)
}

func TestIsProdLikeEnv(t *testing.T) {
	assert.True(t, isProdLikeEnv("production"))
	assert.True(t, isProdLikeEnv(" Staging "))
	assert.False(t, isProdLikeEnv("development"))
	assert.False(t, isProdLikeEnv("test"))
}
