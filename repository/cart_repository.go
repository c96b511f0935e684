package repository

import (
	"time"

	"grocery/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

// ItemsWithProducts returns the user's cart lines with product data, in
// insertion order.
func (r *CartRepository) ItemsWithProducts(tx *gorm.DB, userID uint) ([]entity.CartItem, error) {
	var items []entity.CartItem
	err := tx.Where("user_id = ?", userID).
		Preload("Product").
		Order("id").
		Find(&items).Error
	return items, err
}

// UpsertItem creates the (user, product) line with quantity 1 or bumps the
// existing one by 1. A single ON CONFLICT statement, so concurrent adds for
// the same line never lose an increment.
func (r *CartRepository) UpsertItem(tx *gorm.DB, userID, productID uint) error {
	row := entity.CartItem{UserID: userID, ProductID: productID, Quantity: 1}
	return tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"quantity":   gorm.Expr("quantity + 1"),
			"updated_at": time.Now(),
		}),
	}).Create(&row).Error
}

// ItemByProduct reads the line back after an upsert.
func (r *CartRepository) ItemByProduct(tx *gorm.DB, userID, productID uint) (*entity.CartItem, error) {
	var it entity.CartItem
	if err := tx.Where("user_id = ? AND product_id = ?", userID, productID).First(&it).Error; err != nil {
		return nil, err
	}
	return &it, nil
}

// ItemForUser scopes the lookup to the owner; someone else's item id behaves
// like a missing one.
func (r *CartRepository) ItemForUser(tx *gorm.DB, userID, itemID uint) (*entity.CartItem, error) {
	var it entity.CartItem
	if err := tx.Where("id = ? AND user_id = ?", itemID, userID).First(&it).Error; err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *CartRepository) Save(tx *gorm.DB, item *entity.CartItem) error {
	return tx.Save(item).Error
}

// DeleteItem removes the row for good. Cart lines are hard-deleted: a
// soft-deleted row would keep occupying the (user_id, product_id) unique
// index and shadow future upserts.
func (r *CartRepository) DeleteItem(tx *gorm.DB, item *entity.CartItem) error {
	return tx.Unscoped().Delete(item).Error
}

// DeleteItems clears the given lines and reports how many rows actually went
// away, so checkout can tell whether its snapshot was still intact.
func (r *CartRepository) DeleteItems(tx *gorm.DB, userID uint, itemIDs []uint) (int64, error) {
	res := tx.Unscoped().
		Where("user_id = ? AND id IN ?", userID, itemIDs).
		Delete(&entity.CartItem{})
	return res.RowsAffected, res.Error
}

func (r *CartRepository) CountForUser(tx *gorm.DB, userID uint) (int64, error) {
	var cnt int64
	err := tx.Model(&entity.CartItem{}).Where("user_id = ?", userID).Count(&cnt).Error
	return cnt, err
}
