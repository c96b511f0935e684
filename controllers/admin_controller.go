package controllers

import (
	"strconv"
	"time"

	"grocery/entity"
	"grocery/pkg/resp"
	"grocery/repository"
	"grocery/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AdminController struct {
	DB        *gorm.DB
	OrderRepo *repository.OrderRepository
	Orders    *services.OrderService
}

func NewAdminController(db *gorm.DB, orders *services.OrderService) *AdminController {
	return &AdminController{DB: db, OrderRepo: repository.NewOrderRepository(db), Orders: orders}
}

// GET /admin/dashboard
func (ac *AdminController) Dashboard(c *gin.Context) {
	db := ac.DB

	var totalUsers int64
	if err := db.Model(&entity.User{}).Count(&totalUsers).Error; err != nil {
		resp.ServerError(c, err)
		return
	}

	var totalProducts int64
	if err := db.Model(&entity.Product{}).Count(&totalProducts).Error; err != nil {
		resp.ServerError(c, err)
		return
	}

	start := time.Now().Truncate(24 * time.Hour)
	ordersToday, err := ac.OrderRepo.CountOrdersSince(start)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	revenue, err := ac.OrderRepo.Revenue()
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	resp.OK(c, gin.H{
		"totalUsers":    totalUsers,
		"totalProducts": totalProducts,
		"ordersToday":   ordersToday,
		"revenue":       revenue,
	})
}

// GET /admin/orders?page=&limit=
func (ac *AdminController) OrderList(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	out, err := ac.Orders.ListAll(page, limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}
