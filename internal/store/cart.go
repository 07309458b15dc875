package store

import (
	"errors"

	"catering-service/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CartStore mutates the per-user shopping cart. Quantity changes are applied
// as a single atomic delta at the storage layer, so two simultaneous taps on
// the same product never lose an update.
type CartStore struct {
	db *gorm.DB
}

func NewCartStore(db *gorm.DB) *CartStore {
	return &CartStore{db: db}
}

// GetOrCreateCart returns the user's cart id, creating the cart on first
// access. The unique constraint on user_id is the concurrency guard: if a
// concurrent request created the cart first, the insert fails and the cart
// is reselected.
func (s *CartStore) GetOrCreateCart(userID int64) (uint, error) {
	return getOrCreateCart(s.db, userID)
}

func getOrCreateCart(db *gorm.DB, userID int64) (uint, error) {
	var cart model.Cart
	err := db.Where("user_id = ?", userID).First(&cart).Error
	if err == nil {
		return cart.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}

	cart = model.Cart{UserID: userID}
	if createErr := db.Create(&cart).Error; createErr != nil {
		// Lost the race against a concurrent first access: someone else
		// created the cart, reselect it.
		if selErr := db.Where("user_id = ?", userID).First(&cart).Error; selErr != nil {
			return 0, createErr
		}
	}
	return cart.ID, nil
}

// ChangeQuantity applies a signed delta to the quantity of one product in the
// user's cart. The upsert and the cleanup of non-positive rows run in one
// transaction, so a row with quantity <= 0 is never visible after commit.
func (s *CartStore) ChangeQuantity(userID int64, productID uint, delta int) error {
	cartID, err := getOrCreateCart(s.db, userID)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		item := model.CartItem{CartID: cartID, ProductID: productID, Quantity: delta}
		err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "cart_id"}, {Name: "product_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"quantity": gorm.Expr("cart_items.quantity + excluded.quantity"),
			}),
		}).Create(&item).Error
		if err != nil {
			return err
		}

		return tx.Where("cart_id = ? AND product_id = ? AND quantity <= 0", cartID, productID).
			Delete(&model.CartItem{}).Error
	})
}

// AddToCart increases the quantity of a product by the given amount.
func (s *CartStore) AddToCart(userID int64, productID uint, quantity int) error {
	return s.ChangeQuantity(userID, productID, quantity)
}

// RemoveFromCart deletes the product line regardless of its quantity.
func (s *CartStore) RemoveFromCart(userID int64, productID uint) error {
	cartID, err := getOrCreateCart(s.db, userID)
	if err != nil {
		return err
	}
	return s.db.Where("cart_id = ? AND product_id = ?", cartID, productID).
		Delete(&model.CartItem{}).Error
}

// Items returns the cart's lines joined against the live catalog: name and
// price reflect the products table at read time, not a snapshot.
func (s *CartStore) Items(userID int64) ([]model.CartLine, error) {
	cartID, err := getOrCreateCart(s.db, userID)
	if err != nil {
		return nil, err
	}
	return cartLines(s.db, cartID)
}

func cartLines(db *gorm.DB, cartID uint) ([]model.CartLine, error) {
	var lines []model.CartLine
	err := db.Table("cart_items").
		Select("cart_items.product_id, cart_items.quantity, products.name, products.price, products.weight").
		Joins("JOIN products ON products.id = cart_items.product_id").
		Where("cart_items.cart_id = ?", cartID).
		Order("cart_items.id").
		Scan(&lines).Error
	if err != nil {
		return nil, err
	}
	return lines, nil
}

// Quantity returns the current quantity of a product in the cart, 0 if the
// product is not in it.
func (s *CartStore) Quantity(userID int64, productID uint) (int, error) {
	cartID, err := getOrCreateCart(s.db, userID)
	if err != nil {
		return 0, err
	}

	var item model.CartItem
	err = s.db.Where("cart_id = ? AND product_id = ?", cartID, productID).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return item.Quantity, nil
}

// Total recomputes the cart total from the current items on every call.
// Prices are live-joined, so the total is never cached or stale.
func (s *CartStore) Total(userID int64) (int, error) {
	lines, err := s.Items(userID)
	if err != nil {
		return 0, err
	}
	return lineTotal(lines), nil
}

func lineTotal(lines []model.CartLine) int {
	total := 0
	for _, line := range lines {
		total += line.Price * line.Quantity
	}
	return total
}
