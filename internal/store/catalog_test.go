package store

import (
	"testing"

	"catering-service/internal/model"
)

func TestSeedIsIdempotent(t *testing.T) {
	db := requireDB(t)

	var before int64
	if err := db.Model(&model.Category{}).Count(&before).Error; err != nil {
		t.Fatalf("Failed to count categories: %v", err)
	}
	if before == 0 {
		t.Fatal("Expected a seeded catalog")
	}

	if err := Seed(db); err != nil {
		t.Fatalf("Second seed failed: %v", err)
	}

	var after int64
	if err := db.Model(&model.Category{}).Count(&after).Error; err != nil {
		t.Fatalf("Failed to count categories: %v", err)
	}
	if after != before {
		t.Errorf("Second seed changed category count: %d -> %d", before, after)
	}
}

func TestCategoriesOrderedByIndex(t *testing.T) {
	db := requireDB(t)
	catalog := NewCatalogStore(db)

	categories, err := catalog.Categories()
	if err != nil {
		t.Fatalf("Failed to list categories: %v", err)
	}
	if len(categories) == 0 {
		t.Fatal("Expected seeded categories")
	}
	for i := 1; i < len(categories); i++ {
		if categories[i-1].OrderIndex > categories[i].OrderIndex {
			t.Errorf("Categories out of order at %d: %d > %d",
				i, categories[i-1].OrderIndex, categories[i].OrderIndex)
		}
	}
}

func TestProductsByCategoryOrderedByIndex(t *testing.T) {
	db := requireDB(t)
	catalog := NewCatalogStore(db)

	categories, err := catalog.Categories()
	if err != nil {
		t.Fatalf("Failed to list categories: %v", err)
	}
	products, err := catalog.ProductsByCategory(categories[0].ID)
	if err != nil {
		t.Fatalf("Failed to list products: %v", err)
	}
	if len(products) == 0 {
		t.Fatal("Expected seeded products in the first category")
	}
	for i := 1; i < len(products); i++ {
		if products[i-1].OrderIndex > products[i].OrderIndex {
			t.Errorf("Products out of order at %d", i)
		}
	}
}

func TestProductsByCategoryEmptyIsNotAnError(t *testing.T) {
	db := requireDB(t)
	catalog := NewCatalogStore(db)

	products, err := catalog.ProductsByCategory(999999)
	if err != nil {
		t.Fatalf("Unexpected error for unknown category: %v", err)
	}
	if len(products) != 0 {
		t.Errorf("Expected no products, got %d", len(products))
	}
}

func TestProductAbsentReturnsNil(t *testing.T) {
	db := requireDB(t)
	catalog := NewCatalogStore(db)

	product, err := catalog.Product(999999)
	if err != nil {
		t.Fatalf("Unexpected error for unknown product: %v", err)
	}
	if product != nil {
		t.Errorf("Expected nil for unknown product, got %+v", product)
	}
}
