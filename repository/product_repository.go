package repository

import (
	"grocery/entity"

	"gorm.io/gorm"
)

type ProductRepository struct {
	DB *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{DB: db}
}

// GET /products → storefront listing
func (r *ProductRepository) List() ([]entity.Product, error) {
	var products []entity.Product
	err := r.DB.Order("id").Find(&products).Error
	return products, err
}

func (r *ProductRepository) Get(id uint) (*entity.Product, error) {
	var p entity.Product
	if err := r.DB.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) Exists(id uint) (bool, error) {
	var cnt int64
	if err := r.DB.Model(&entity.Product{}).Where("id = ?", id).Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (r *ProductRepository) Create(p *entity.Product) error {
	return r.DB.Create(p).Error
}

func (r *ProductRepository) UpdateFields(id uint, fields map[string]any) error {
	return r.DB.Model(&entity.Product{}).Where("id = ?", id).Updates(fields).Error
}

// DeleteCascade removes a product together with any cart lines that still
// reference it. SQLite does not enforce the FK for us, so the cascade is
// explicit and runs in the caller's transaction.
func (r *ProductRepository) DeleteCascade(tx *gorm.DB, id uint) error {
	if err := tx.Unscoped().Where("product_id = ?", id).Delete(&entity.CartItem{}).Error; err != nil {
		return err
	}
	return tx.Delete(&entity.Product{}, id).Error
}
