// Package adapters provides the GORM implementation of product persistence.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"youthcup_backend/internal/domain/entity"
	"youthcup_backend/internal/feature/product/usecase"
)

type productGorm struct {
	db *gorm.DB
}

// Compile-time check to ensure productGorm implements ProductRepository.
var _ usecase.ProductRepository = (*productGorm)(nil)

// NewProductGorm creates a new instance of productGorm.
func NewProductGorm(db *gorm.DB) *productGorm {
	return &productGorm{db: db}
}

func (r *productGorm) FindAll(ctx context.Context) ([]entity.Product, error) {
	var products []entity.Product
	err := r.db.WithContext(ctx).Order("id ASC").Find(&products).Error
	return products, err
}

func (r *productGorm) FindFeatured(ctx context.Context) ([]entity.Product, error) {
	var products []entity.Product
	err := r.db.WithContext(ctx).
		Where("is_featured = ? AND quantity > ?", true, 0).
		Order("id ASC").
		Find(&products).Error
	return products, err
}

func (r *productGorm) FindByCategory(ctx context.Context, category string) ([]entity.Product, error) {
	var products []entity.Product
	err := r.db.WithContext(ctx).Where("category = ?", category).Order("id ASC").Find(&products).Error
	return products, err
}

func (r *productGorm) FindByID(ctx context.Context, id uint) (*entity.Product, error) {
	var product entity.Product
	if err := r.db.WithContext(ctx).First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

func (r *productGorm) Create(ctx context.Context, product *entity.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

// Save writes every column of product.
func (r *productGorm) Save(ctx context.Context, product *entity.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

func (r *productGorm) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&entity.Product{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrProductNotFound
	}
	return nil
}
