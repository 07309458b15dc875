package model

import "time"

// OrderStatusPending is the only status this system assigns; no transition
// logic exists beyond order creation.
const OrderStatusPending = "pending"

// Order is created exactly once per checkout and immutable afterwards.
type Order struct {
	ID         uint        `json:"id" gorm:"primarykey"`
	UserID     int64       `json:"user_id" gorm:"not null;index"`
	TotalPrice int         `json:"total_price" gorm:"not null"`
	Status     string      `json:"status" gorm:"type:varchar(50);not null;default:'pending'"`
	Items      []OrderItem `json:"items,omitempty" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt  time.Time   `json:"created_at"`
}

// OrderItem is a price-and-quantity snapshot taken at order creation time,
// decoupled from future product price changes.
type OrderItem struct {
	ID        uint    `json:"id" gorm:"primarykey"`
	OrderID   uint    `json:"order_id" gorm:"not null;index"`
	ProductID uint    `json:"product_id" gorm:"not null"`
	Quantity  int     `json:"quantity" gorm:"not null"`
	Price     int     `json:"price" gorm:"not null"`
	Product   Product `json:"-" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}
