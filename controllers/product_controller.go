package controllers

import (
	"errors"
	"strconv"

	"grocery/entity"
	"grocery/pkg/resp"
	"grocery/repository"
	"grocery/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ProductController struct {
	DB        *gorm.DB
	Repo      *repository.ProductRepository
	UploadDir string
}

func NewProductController(db *gorm.DB, uploadDir string) *ProductController {
	return &ProductController{DB: db, Repo: repository.NewProductRepository(db), UploadDir: uploadDir}
}

type ProductRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	ImageURL    string          `json:"imageUrl"`
}

// GET /products (public storefront)
func (ctl *ProductController) List(c *gin.Context) {
	products, err := ctl.Repo.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	items := make([]gin.H, 0, len(products))
	for i := range products {
		p := &products[i]
		items = append(items, gin.H{
			"id": p.ID, "name": p.Name, "description": p.Description,
			"price": p.Price, "imageUrl": p.DisplayImageURL(),
		})
	}
	c.JSON(200, gin.H{"items": items})
}

// GET /products/:id
func (ctl *ProductController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	p, err := ctl.Repo.Get(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "product not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	c.JSON(200, gin.H{
		"id": p.ID, "name": p.Name, "description": p.Description,
		"price": p.Price, "imageUrl": p.DisplayImageURL(),
	})
}

// POST /admin/products
func (ctl *ProductController) Create(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if req.Price.IsNegative() {
		resp.BadRequest(c, "price must not be negative")
		return
	}

	p := entity.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
	}
	if err := ctl.Repo.Create(&p); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, p)
}

// PATCH /admin/products/:id
func (ctl *ProductController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if req.Price.IsNegative() {
		resp.BadRequest(c, "price must not be negative")
		return
	}

	ok, err := ctl.Repo.Exists(uint(id))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if !ok {
		resp.NotFound(c, "product not found")
		return
	}

	fields := map[string]any{
		"name":        req.Name,
		"description": req.Description,
		"price":       req.Price,
		"image_url":   req.ImageURL,
	}
	if err := ctl.Repo.UpdateFields(uint(id), fields); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"id": uint(id)})
}

// DELETE /admin/products/:id — cart lines referencing the product go with it
func (ctl *ProductController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	ok, err := ctl.Repo.Exists(uint(id))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if !ok {
		resp.NotFound(c, "product not found")
		return
	}

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		return ctl.Repo.DeleteCascade(tx, uint(id))
	})
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "product deleted"})
}

// POST /admin/products/:id/image — base64 payload saved to disk, path stored
// as the image URL
func (ctl *ProductController) UploadImage(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req struct {
		Image string `json:"image" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	ok, err := ctl.Repo.Exists(uint(id))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if !ok {
		resp.NotFound(c, "product not found")
		return
	}

	path, err := utils.SaveBase64Image(req.Image, ctl.UploadDir)
	if err != nil {
		resp.BadRequest(c, "invalid image payload")
		return
	}
	if err := ctl.Repo.UpdateFields(uint(id), map[string]any{"image_url": "/" + path}); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"imageUrl": "/" + path})
}
