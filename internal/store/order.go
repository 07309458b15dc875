package store

import (
	"errors"

	"catering-service/internal/model"

	"gorm.io/gorm"
)

// OrderStore converts carts into immutable order records.
type OrderStore struct {
	db *gorm.DB
}

func NewOrderStore(db *gorm.DB) *OrderStore {
	return &OrderStore{db: db}
}

// CreateOrder snapshots the user's cart into an order inside one transaction:
// the order row, its item snapshots and the cart cleanup either all commit or
// all roll back. The cart row itself is kept for reuse. Refusing an empty
// cart is the caller's responsibility.
func (s *OrderStore) CreateOrder(userID int64) (uint, error) {
	var orderID uint
	err := s.db.Transaction(func(tx *gorm.DB) error {
		cartID, err := getOrCreateCart(tx, userID)
		if err != nil {
			return err
		}

		lines, err := cartLines(tx, cartID)
		if err != nil {
			return err
		}

		order := model.Order{
			UserID:     userID,
			TotalPrice: lineTotal(lines),
			Status:     model.OrderStatusPending,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		if len(lines) > 0 {
			items := make([]model.OrderItem, 0, len(lines))
			for _, line := range lines {
				items = append(items, model.OrderItem{
					OrderID:   order.ID,
					ProductID: line.ProductID,
					Quantity:  line.Quantity,
					Price:     line.Price,
				})
			}
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("cart_id = ?", cartID).Delete(&model.CartItem{}).Error; err != nil {
			return err
		}

		orderID = order.ID
		return nil
	})
	if err != nil {
		return 0, err
	}
	return orderID, nil
}

// Order returns one order with its item snapshots, nil if it does not exist.
func (s *OrderStore) Order(id uint) (*model.Order, error) {
	var order model.Order
	result := s.db.Preload("Items").First(&order, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &order, nil
}

// Recent returns the newest orders with their item snapshots, for the
// operator listing.
func (s *OrderStore) Recent(limit int) ([]model.Order, error) {
	var orders []model.Order
	result := s.db.Preload("Items").Order("id DESC").Limit(limit).Find(&orders)
	if result.Error != nil {
		return nil, result.Error
	}
	return orders, nil
}
