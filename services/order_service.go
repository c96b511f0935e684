package services

import (
	"grocery/entity"
	"grocery/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	CartRepo *repository.CartRepository
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository, cartRepo *repository.CartRepository) *OrderService {
	return &OrderService{DB: db, Repo: repo, CartRepo: cartRepo}
}

// Checkout converts the user's whole cart into one Order and empties the
// cart, all in a single transaction — a crash or a lost race rolls both
// writes back together. Returns ErrCartEmpty (no Order, no side effects)
// when there is nothing to check out.
//
// There is no real payment step; the order is marked paid at creation.
func (s *OrderService) Checkout(userID uint) (*entity.Order, error) {
	var out *entity.Order
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		items, err := s.CartRepo.ItemsWithProducts(tx, userID)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			return ErrCartEmpty
		}

		total := decimal.Zero
		itemIDs := make([]uint, 0, len(items))
		for _, it := range items {
			total = total.Add(it.Product.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
			itemIDs = append(itemIDs, it.ID)
		}

		order := entity.Order{
			UserID:      userID,
			TotalAmount: total,
			IsPaid:      true,
		}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}

		n, err := s.CartRepo.DeleteItems(tx, userID, itemIDs)
		if err != nil {
			return err
		}
		// A concurrent checkout already consumed part of this snapshot.
		// Roll back; this attempt takes the empty-cart path.
		if n != int64(len(itemIDs)) {
			return ErrCartEmpty
		}

		out = &order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *OrderService) ListForUser(userID uint, limit int) ([]repository.OrderSummary, error) {
	return s.Repo.ListOrdersForUser(userID, limit)
}

func (s *OrderService) DetailForUser(userID, orderID uint) (*entity.Order, error) {
	return s.Repo.GetOrderForUser(userID, orderID)
}

type AdminOrderListOut struct {
	Items []repository.AdminOrderSummary `json:"items"`
	Total int64                          `json:"total"`
	Page  int                            `json:"page"`
	Limit int                            `json:"limit"`
}

func (s *OrderService) ListAll(page, limit int) (*AdminOrderListOut, error) {
	items, total, err := s.Repo.ListOrders(page, limit)
	if err != nil {
		return nil, err
	}
	return &AdminOrderListOut{Items: items, Total: total, Page: page, Limit: limit}, nil
}
