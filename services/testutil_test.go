package services

import (
	"fmt"
	"testing"

	"grocery/entity"
	"grocery/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory database. Shared cache + immediate
// transactions so concurrent transactions in the same test serialize the way
// they would on a real server.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_busy_timeout=5000&_txlock=immediate", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&entity.User{}, &entity.Product{}, &entity.CartItem{}, &entity.Order{}); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func newCartService(db *gorm.DB) *CartService {
	return NewCartService(db, repository.NewCartRepository(db), repository.NewProductRepository(db))
}

func newOrderService(db *gorm.DB) *OrderService {
	return NewOrderService(db, repository.NewOrderRepository(db), repository.NewCartRepository(db))
}

func mustUser(t *testing.T, db *gorm.DB, email string) entity.User {
	t.Helper()
	u := entity.User{Email: email, Password: "x", FirstName: "Test", LastName: "User", Role: "customer"}
	if err := db.Create(&u).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return u
}

func mustProduct(t *testing.T, db *gorm.DB, name, price string) entity.Product {
	t.Helper()
	p := entity.Product{Name: name, Price: decimal.RequireFromString(price)}
	if err := db.Create(&p).Error; err != nil {
		t.Fatalf("create product: %v", err)
	}
	return p
}

func cartCount(t *testing.T, db *gorm.DB, userID uint) int64 {
	t.Helper()
	var cnt int64
	if err := db.Model(&entity.CartItem{}).Where("user_id = ?", userID).Count(&cnt).Error; err != nil {
		t.Fatalf("count cart items: %v", err)
	}
	return cnt
}

func orderCount(t *testing.T, db *gorm.DB, userID uint) int64 {
	t.Helper()
	var cnt int64
	if err := db.Model(&entity.Order{}).Where("user_id = ?", userID).Count(&cnt).Error; err != nil {
		t.Fatalf("count orders: %v", err)
	}
	return cnt
}
