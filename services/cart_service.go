package services

import (
	"errors"

	"grocery/entity"
	"grocery/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CartService struct {
	DB          *gorm.DB
	CartRepo    *repository.CartRepository
	ProductRepo *repository.ProductRepository
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, pr *repository.ProductRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr, ProductRepo: pr}
}

// CartLine is one cart row joined with its product, priced.
type CartLine struct {
	ItemID    uint            `json:"itemId"`
	Product   entity.Product  `json:"product"`
	Quantity  int             `json:"quantity"`
	LineTotal decimal.Decimal `json:"lineTotal"`
}

type CartView struct {
	Items []CartLine      `json:"items"`
	Total decimal.Decimal `json:"total"`
}

// Add puts one unit of the product in the user's cart: first add creates the
// line with quantity 1, repeat adds bump the same line. Returns the resulting
// line so the caller can render a confirmation.
func (s *CartService) Add(userID, productID uint) (*entity.CartItem, error) {
	if ok, err := s.ProductRepo.Exists(productID); err != nil {
		return nil, err
	} else if !ok {
		return nil, ErrProductNotFound
	}

	var out *entity.CartItem
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.CartRepo.UpsertItem(tx, userID, productID); err != nil {
			return err
		}
		it, err := s.CartRepo.ItemByProduct(tx, userID, productID)
		if err != nil {
			return err
		}
		out = it
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Remove takes one unit off the line: quantity > 1 decrements, quantity == 1
// deletes the row. Only the owner's items are reachable.
func (s *CartService) Remove(userID, itemID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		it, err := s.CartRepo.ItemForUser(tx, userID, itemID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCartItemNotFound
			}
			return err
		}

		if it.Quantity > 1 {
			it.Quantity--
			return s.CartRepo.Save(tx, it)
		}
		return s.CartRepo.DeleteItem(tx, it)
	})
}

// View returns the user's cart lines with exact line totals and the grand
// total. No side effects.
func (s *CartService) View(userID uint) (*CartView, error) {
	items, err := s.CartRepo.ItemsWithProducts(s.DB, userID)
	if err != nil {
		return nil, err
	}

	view := &CartView{Items: make([]CartLine, 0, len(items)), Total: decimal.Zero}
	for _, it := range items {
		line := it.Product.Price.Mul(decimal.NewFromInt(int64(it.Quantity)))
		view.Items = append(view.Items, CartLine{
			ItemID:    it.ID,
			Product:   it.Product,
			Quantity:  it.Quantity,
			LineTotal: line,
		})
		view.Total = view.Total.Add(line)
	}
	return view, nil
}
