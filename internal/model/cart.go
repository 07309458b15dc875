package model

import "time"

// Cart holds at most one open cart per user.
type Cart struct {
	ID        uint       `json:"id" gorm:"primarykey"`
	UserID    int64      `json:"user_id" gorm:"not null;uniqueIndex"`
	Items     []CartItem `json:"items,omitempty" gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time  `json:"created_at"`
}

// CartItem is one product line in a cart. A row never stores a quantity
// below 1: non-positive results of a quantity change delete the row instead.
type CartItem struct {
	ID        uint    `json:"id" gorm:"primarykey"`
	CartID    uint    `json:"cart_id" gorm:"not null;uniqueIndex:idx_cart_items_cart_product"`
	ProductID uint    `json:"product_id" gorm:"not null;uniqueIndex:idx_cart_items_cart_product"`
	Quantity  int     `json:"quantity" gorm:"not null;default:1"`
	Product   Product `json:"-" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// CartLine is a cart item joined with the live product data. Name, price and
// weight reflect the catalog at read time, not a snapshot.
type CartLine struct {
	ProductID uint   `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Name      string `json:"name"`
	Price     int    `json:"price"`
	Weight    string `json:"weight"`
}
