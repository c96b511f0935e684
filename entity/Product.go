package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const PlaceholderImageURL = "https://via.placeholder.com/400x200?text=No+Image"

type Product struct {
	gorm.Model
	Name        string          `gorm:"not null" json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	ImageURL    string          `json:"imageUrl"`

	CartItems []CartItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}

// DisplayImageURL falls back to a placeholder when no image was set.
func (p *Product) DisplayImageURL() string {
	if p.ImageURL != "" {
		return p.ImageURL
	}
	return PlaceholderImageURL
}
