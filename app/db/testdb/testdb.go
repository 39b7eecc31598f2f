package testdb

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/nandasafiq/go-storefront/app/models/migrations"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open returns an isolated in-memory database with the full schema so
// repositories and services can be exercised without a MySQL server. The
// unique name keeps parallel tests from sharing state; the foreign_keys
// pragma makes SQLite honor the schema's referential actions.
func Open(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.New().String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := migrations.AutoMigrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}
