package usecase

import "youthcup_backend/internal/shared/apperror"

var (
	// ErrProductNotFound is returned when no product has the requested id.
	ErrProductNotFound = apperror.NotFound("product not found")

	// ErrNoStock is returned when featuring a product with nothing in stock.
	ErrNoStock = apperror.Validation("quantity needs to be greater than 0")
)
