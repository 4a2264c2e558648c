package repository

import (
	"testing"

	"github.com/sokha-dev/showfolio/internal/database"
	"github.com/sokha-dev/showfolio/internal/util"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestRepository opens an in-memory database with the full schema. Each
// caller gets its own isolated database.
func newTestRepository(t *testing.T) *Repository {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return NewRepository(db, util.NewLogger(), nil)
}
