// Package handler exposes the product catalogue over HTTP.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"youthcup_backend/internal/domain/entity"
	"youthcup_backend/internal/feature/product/transport/http/dto"
	"youthcup_backend/internal/feature/product/usecase"
	"youthcup_backend/internal/platform/http/response"
)

// ProductUsecase is the consumer-side view of the product usecase.
type ProductUsecase interface {
	List(ctx context.Context) ([]entity.Product, error)
	Featured(ctx context.Context) ([]entity.Product, error)
	ByCategory(ctx context.Context, category string) ([]entity.Product, error)
	Create(ctx context.Context, in usecase.CreateInput) (*entity.Product, error)
	Edit(ctx context.Context, id uint, in usecase.UpdateInput) (*entity.Product, error)
	ToggleFeatured(ctx context.Context, id uint) (*entity.Product, error)
	Delete(ctx context.Context, id uint) error
}

// ProductHandler handles /products requests.
type ProductHandler struct {
	products ProductUsecase
}

// NewProductHandler creates a ProductHandler.
func NewProductHandler(products ProductUsecase) *ProductHandler {
	return &ProductHandler{products: products}
}

func orEmpty(products []entity.Product) []entity.Product {
	if products == nil {
		return []entity.Product{}
	}
	return products
}

// List handles GET /products.
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.products.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": orEmpty(products)})
}

// Featured handles GET /products/featured. The body is a bare array.
func (h *ProductHandler) Featured(c *gin.Context) {
	products, err := h.products.Featured(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, orEmpty(products))
}

// ByCategory handles GET /products/category/:category.
func (h *ProductHandler) ByCategory(c *gin.Context) {
	products, err := h.products.ByCategory(c.Request.Context(), c.Param("category"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": orEmpty(products)})
}

// Create handles POST /products.
func (h *ProductHandler) Create(c *gin.Context) {
	var req dto.CreateProductReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	product, err := h.products.Create(c.Request.Context(), usecase.CreateInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Images:      req.Images,
		Category:    req.Category,
		Quantity:    req.Quantity,
		IsFeatured:  req.IsFeatured,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	slog.Info("product created", "product_id", product.ID, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, product)
}

// Edit handles PUT /products/:id.
func (h *ProductHandler) Edit(c *gin.Context) {
	id, err := response.ParamID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.UpdateProductReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	product, err := h.products.Edit(c.Request.Context(), id, usecase.UpdateInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Images:      req.Images,
		Category:    req.Category,
		Quantity:    req.Quantity,
		IsFeatured:  req.IsFeatured,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// ToggleFeatured handles PATCH /products/:id.
func (h *ProductHandler) ToggleFeatured(c *gin.Context) {
	id, err := response.ParamID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	product, err := h.products.ToggleFeatured(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// Delete handles DELETE /products/:id.
func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := response.ParamID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.products.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	slog.Info("product deleted", "product_id", id, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, response.Message{Message: "Product deleted successfully"})
}
