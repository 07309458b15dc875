package store

import (
	"errors"

	"catering-service/internal/model"

	"gorm.io/gorm"
)

// CatalogStore provides read-only access to the seeded menu.
type CatalogStore struct {
	db *gorm.DB
}

func NewCatalogStore(db *gorm.DB) *CatalogStore {
	return &CatalogStore{db: db}
}

// Categories returns all menu categories ordered by their display position.
func (s *CatalogStore) Categories() ([]model.Category, error) {
	var categories []model.Category
	result := s.db.Order("order_index").Find(&categories)
	if result.Error != nil {
		return nil, result.Error
	}
	return categories, nil
}

// Category returns a single category, nil if it does not exist.
func (s *CatalogStore) Category(id uint) (*model.Category, error) {
	var category model.Category
	result := s.db.First(&category, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &category, nil
}

// ProductsByCategory returns the category's products ordered by their display
// position. An empty slice is a valid result, not an error.
func (s *CatalogStore) ProductsByCategory(categoryID uint) ([]model.Product, error) {
	var products []model.Product
	result := s.db.Where("category_id = ?", categoryID).Order("order_index").Find(&products)
	if result.Error != nil {
		return nil, result.Error
	}
	return products, nil
}

// Product returns a single product, nil if it does not exist. Callers render
// a user-facing not-found state instead of treating absence as a failure.
func (s *CatalogStore) Product(id uint) (*model.Product, error) {
	var product model.Product
	result := s.db.First(&product, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &product, nil
}
