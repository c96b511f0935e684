package entity

import (
	"gorm.io/gorm"
)

// CartItem is one pending line of a user's cart.
// At most one row per (user, product); repeat adds bump Quantity.
type CartItem struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex:idx_cart_user_product;not null" json:"userId"`
	User   User `json:"-"`

	ProductID uint    `gorm:"uniqueIndex:idx_cart_user_product;not null" json:"productId"`
	Product   Product `json:"-"`

	Quantity int `gorm:"not null;default:1" json:"quantity"`
}
