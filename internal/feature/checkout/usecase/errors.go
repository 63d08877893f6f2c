package usecase

import "youthcup_backend/internal/shared/apperror"

var (
	// ErrProductNotFound is returned when the product being bought does not exist.
	ErrProductNotFound = apperror.NotFound("product not found")

	// ErrOutOfStock is returned when the product has no quantity left.
	ErrOutOfStock = apperror.Conflict("product is out of stock, please refresh the page")

	// ErrUserNotFound is returned when the buyer's account no longer exists.
	ErrUserNotFound = apperror.NotFound("user not found")
)
