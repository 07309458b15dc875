package model

// Category is a menu section, seeded once and read-only afterwards.
type Category struct {
	ID         uint      `json:"id" gorm:"primarykey"`
	Name       string    `json:"name" gorm:"type:varchar(255);not null;unique"`
	OrderIndex int       `json:"order_index" gorm:"not null;default:0"`
	Products   []Product `json:"products,omitempty" gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
}

// Product belongs to exactly one category. Price is in whole currency units.
type Product struct {
	ID         uint   `json:"id" gorm:"primarykey"`
	CategoryID uint   `json:"category_id" gorm:"not null;index"`
	Name       string `json:"name" gorm:"type:varchar(500);not null"`
	Weight     string `json:"weight" gorm:"type:varchar(100)"`
	Price      int    `json:"price" gorm:"not null"`
	OrderIndex int    `json:"order_index" gorm:"not null;default:0"`
}
