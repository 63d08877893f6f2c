// Package adapters provides the GORM implementation of order persistence.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"youthcup_backend/internal/domain/entity"
	"youthcup_backend/internal/feature/checkout/usecase"
)

type orderGorm struct {
	db *gorm.DB
}

// Compile-time check to ensure orderGorm implements OrderRepository.
var _ usecase.OrderRepository = (*orderGorm)(nil)

// NewOrderGorm creates a new instance of orderGorm.
func NewOrderGorm(db *gorm.DB) *orderGorm {
	return &orderGorm{db: db}
}

func (r *orderGorm) Create(ctx context.Context, order *entity.Order) error {
	return r.db.WithContext(ctx).Omit("User", "Product").Create(order).Error
}

func (r *orderGorm) FindAll(ctx context.Context) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Product").
		Order("created_at DESC").Order("id DESC").
		Find(&orders).Error
	return orders, err
}

func (r *orderGorm) FindUser(ctx context.Context, id uint) (*entity.User, error) {
	var user entity.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}
