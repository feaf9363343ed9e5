package inventory

import (
	"fmt"
	"testing"

	"github.com/angelmondragon/inventory-backend/pkg/db/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestRepo(t *testing.T) *Repository {
	t.Helper()

	// Unique DSN per test so rows never leak between cases.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := conn.AutoMigrate(&models.InventoryItem{}); err != nil {
		t.Fatalf("failed to migrate sqlite: %v", err)
	}
	return NewRepository(conn)
}

func newTestService(t *testing.T) (Service, *Repository) {
	t.Helper()
	repo := newTestRepo(t)
	svc, err := NewService(repo)
	if err != nil {
		t.Fatalf("failed to build service: %v", err)
	}
	return svc, repo
}
