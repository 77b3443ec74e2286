package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/mazin-goub/Hameed/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	adminActor    = models.Actor{UserID: 1, Email: "admin@hameedrestaurant.com", Role: "admin"}
	customerActor = models.Actor{UserID: 2, Email: "customer@example.com", Role: "user"}
)

// newTestDB opens a fresh in-memory database per test. The shared cache
// keeps the database alive across the gorm connection pool.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.MenuItem{}, &models.Order{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}
