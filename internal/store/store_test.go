package store

import (
	"os"
	"testing"

	"catering-service/internal/model"
	"catering-service/pkg/database"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var testDB *gorm.DB

func setupTestDB() (*gorm.DB, error) {
	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		dsn = "host=localhost port=5432 user=postgres password=postgres dbname=catering_test sslmode=disable"
	}

	dbConn, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, err
	}

	// Reset tables
	_ = dbConn.Migrator().DropTable(
		&model.OrderItem{}, &model.Order{},
		&model.CartItem{}, &model.Cart{},
		&model.User{}, &model.Product{}, &model.Category{},
	)
	if err := database.Migrate(dbConn); err != nil {
		return nil, err
	}
	if err := Seed(dbConn); err != nil {
		return nil, err
	}

	return dbConn, nil
}

func TestMain(m *testing.M) {
	db, err := setupTestDB()
	if err == nil {
		testDB = db
	}
	os.Exit(m.Run())
}

// requireDB skips the test when no PostgreSQL instance is reachable.
func requireDB(t *testing.T) *gorm.DB {
	t.Helper()
	if testDB == nil {
		t.Skip("test database not available, set TEST_DATABASE_DSN")
	}
	return testDB
}

// newTestUser registers a user row so cart and order foreign keys resolve.
func newTestUser(t *testing.T, db *gorm.DB, id int64) int64 {
	t.Helper()
	if err := NewUserStore(db).GetOrCreate(id, "testuser", "Test"); err != nil {
		t.Fatalf("Failed to create user %d: %v", id, err)
	}
	return id
}

// seededProducts returns the products of the first seeded category.
func seededProducts(t *testing.T, db *gorm.DB) []model.Product {
	t.Helper()
	catalog := NewCatalogStore(db)
	categories, err := catalog.Categories()
	if err != nil {
		t.Fatalf("Failed to list categories: %v", err)
	}
	if len(categories) == 0 {
		t.Fatal("Seeded catalog has no categories")
	}
	products, err := catalog.ProductsByCategory(categories[0].ID)
	if err != nil {
		t.Fatalf("Failed to list products: %v", err)
	}
	if len(products) < 2 {
		t.Fatalf("Expected at least 2 seeded products, got %d", len(products))
	}
	return products
}
