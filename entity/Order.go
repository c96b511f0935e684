package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Order keeps only the aggregate total of the cart it was created from;
// per-line detail is not retained.
type Order struct {
	gorm.Model
	UserID uint `gorm:"not null" json:"userId"`
	User   User `json:"-"`

	TotalAmount decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"totalAmount"`
	IsPaid      bool            `gorm:"not null;default:false" json:"isPaid"`
}
