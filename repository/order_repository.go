package repository

import (
	"strings"
	"time"

	"grocery/entity"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// CreateOrder runs inside the checkout transaction.
func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

// GET /orders → a customer's order history
type OrderSummary struct {
	ID          uint            `json:"id"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	IsPaid      bool            `json:"isPaid"`
	CreatedAt   time.Time       `json:"createdAt"`
}

func (r *OrderRepository) ListOrdersForUser(userID uint, limit int) ([]OrderSummary, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []OrderSummary
	err := r.DB.Model(&entity.Order{}).
		Select("id, total_amount, is_paid, created_at").
		Where("user_id = ?", userID).
		Order("id DESC").Limit(limit).
		Scan(&out).Error
	return out, err
}

// GET /orders/:id → scoped to the owner
func (r *OrderRepository) GetOrderForUser(userID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Where("id = ? AND user_id = ?", orderID, userID).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// GET /admin/orders → all orders with the customer's name joined in
type AdminOrderSummary struct {
	ID           uint            `json:"id"`
	UserID       uint            `json:"userId"`
	CustomerName string          `json:"customerName"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	IsPaid       bool            `json:"isPaid"`
	CreatedAt    time.Time       `json:"createdAt"`
}

func (r *OrderRepository) ListOrders(page, limit int) ([]AdminOrderSummary, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 200 {
		limit = 20
	}
	offset := (page - 1) * limit

	var total int64
	if err := r.DB.Model(&entity.Order{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []struct {
		ID          uint
		UserID      uint
		TotalAmount decimal.Decimal
		IsPaid      bool
		CreatedAt   time.Time
		FirstName   string
		LastName    string
	}
	err := r.DB.Table("orders AS o").
		Select("o.id, o.user_id, o.total_amount, o.is_paid, o.created_at, u.first_name, u.last_name").
		Joins("JOIN users u ON u.id = o.user_id").
		Where("o.deleted_at IS NULL").
		Order("o.id DESC").Limit(limit).Offset(offset).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	out := make([]AdminOrderSummary, 0, len(rows))
	for _, row := range rows {
		name := strings.TrimSpace(row.FirstName + " " + row.LastName)
		out = append(out, AdminOrderSummary{
			ID:           row.ID,
			UserID:       row.UserID,
			CustomerName: name,
			TotalAmount:  row.TotalAmount,
			IsPaid:       row.IsPaid,
			CreatedAt:    row.CreatedAt,
		})
	}
	return out, total, nil
}

func (r *OrderRepository) CountOrdersSince(t time.Time) (int64, error) {
	var cnt int64
	err := r.DB.Model(&entity.Order{}).Where("created_at >= ?", t).Count(&cnt).Error
	return cnt, err
}

// Revenue sums every order total in Go rather than SQL, keeping the decimal
// arithmetic exact.
func (r *OrderRepository) Revenue() (decimal.Decimal, error) {
	var totals []decimal.Decimal
	if err := r.DB.Model(&entity.Order{}).Pluck("total_amount", &totals).Error; err != nil {
		return decimal.Zero, err
	}
	sum := decimal.Zero
	for _, t := range totals {
		sum = sum.Add(t)
	}
	return sum, nil
}
