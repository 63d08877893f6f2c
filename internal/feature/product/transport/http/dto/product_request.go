// Package dto defines request bodies for the product endpoints.
package dto

import "youthcup_backend/internal/shared/patch"

// CreateProductReq is the body of POST /products. Images may be data URIs
// or plain URLs.
type CreateProductReq struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Price       float64  `json:"price" binding:"gte=0"`
	Images      []string `json:"images"`
	Category    string   `json:"category" binding:"required"`
	Quantity    *int     `json:"quantity" binding:"omitempty,gte=0"`
	IsFeatured  *bool    `json:"isFeatured"`
}

// UpdateProductReq is the body of PUT /products/:id.
type UpdateProductReq struct {
	Name        patch.Field[string]   `json:"name"`
	Description patch.Field[string]   `json:"description"`
	Price       patch.Field[float64]  `json:"price"`
	Images      patch.Field[[]string] `json:"images"`
	Category    patch.Field[string]   `json:"category"`
	Quantity    patch.Field[int]      `json:"quantity"`
	IsFeatured  patch.Field[bool]     `json:"isFeatured"`
}
