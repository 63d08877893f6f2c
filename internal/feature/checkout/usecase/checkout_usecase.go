// Package usecase implements merchandise checkout and order listing.
package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"youthcup_backend/internal/domain/entity"
	"youthcup_backend/internal/platform/mail"
	"youthcup_backend/internal/shared/apperror"
	"youthcup_backend/internal/shared/besteffort"
)

// OrderRepository persists orders and resolves buyers.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	// FindAll returns every order with its user and product, newest first.
	FindAll(ctx context.Context) ([]entity.Order, error)
	// FindUser returns ErrUserNotFound when missing.
	FindUser(ctx context.Context, id uint) (*entity.User, error)
}

// ProductStore loads and saves the product being bought. Saving through
// the caching repository keeps the featured list current.
type ProductStore interface {
	FindByID(ctx context.Context, id uint) (*entity.Product, error)
	Save(ctx context.Context, product *entity.Product) error
}

// Mailer delivers email.
type Mailer interface {
	Send(ctx context.Context, msg mail.Message) error
}

type checkoutUsecase struct {
	orders   OrderRepository
	products ProductStore
	mailer   Mailer
}

// NewCheckoutUsecase creates a checkout usecase.
func NewCheckoutUsecase(orders OrderRepository, products ProductStore, mailer Mailer) *checkoutUsecase {
	return &checkoutUsecase{orders: orders, products: products, mailer: mailer}
}

// Checkout buys one unit of productID for userID.
//
// The stock check and the decrement are not atomic, so two concurrent
// buyers of the last unit can both succeed. The order is written before
// the product and neither write is rolled back if the other fails.
func (u *checkoutUsecase) Checkout(ctx context.Context, userID, productID uint) (*entity.Order, error) {
	user, err := u.orders.FindUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	product, err := u.products.FindByID(ctx, productID)
	if err != nil {
		if apperror.KindOf(err) == apperror.KindNotFound {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	if product.Quantity <= 0 {
		return nil, ErrOutOfStock
	}

	order := &entity.Order{UserID: user.ID, ProductID: product.ID, Price: product.Price}
	if err := u.orders.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	product.Quantity--
	product.Normalize()
	if err := u.products.Save(ctx, product); err != nil {
		return nil, fmt.Errorf("decrement stock for product %d: %w", product.ID, err)
	}

	besteffort.Do(ctx, "send_order_confirmation", func(ctx context.Context) error {
		return u.mailer.Send(ctx, mail.OrderConfirmation(user.Email, user.Name, product.Name, order.Price, order.ID))
	})
	slog.InfoContext(ctx, "order placed", "order_id", order.ID, "product_id", product.ID, "user_id", user.ID, "remaining", product.Quantity)
	return order, nil
}

// Orders lists all orders.
func (u *checkoutUsecase) Orders(ctx context.Context) ([]entity.Order, error) {
	return u.orders.FindAll(ctx)
}
