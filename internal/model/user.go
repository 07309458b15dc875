package model

import "time"

// User is keyed by the chat identity, not an auto-increment id. It is created
// on first interaction; username and first name are refreshed on every one.
type User struct {
	ID        int64     `json:"id" gorm:"primarykey;autoIncrement:false"`
	Username  string    `json:"username" gorm:"type:varchar(255)"`
	FirstName string    `json:"first_name" gorm:"type:varchar(255)"`
	Phone     string    `json:"phone" gorm:"type:varchar(50)"`
	Cart      *Cart     `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Orders    []Order   `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time `json:"created_at"`
}
