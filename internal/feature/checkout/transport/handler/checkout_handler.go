// Package handler exposes checkout and order listing over HTTP.
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"youthcup_backend/internal/domain/entity"
	"youthcup_backend/internal/feature/checkout/transport/http/dto"
	"youthcup_backend/internal/platform/http/response"
	jwtmw "youthcup_backend/internal/platform/jwt"
	"youthcup_backend/internal/shared/apperror"
)

var errNotAuthenticated = apperror.Unauthorized("not authenticated")

// CheckoutUsecase is the consumer-side view of the checkout usecase.
type CheckoutUsecase interface {
	Checkout(ctx context.Context, userID, productID uint) (*entity.Order, error)
	Orders(ctx context.Context) ([]entity.Order, error)
}

// CheckoutHandler handles /payments requests.
type CheckoutHandler struct {
	checkout CheckoutUsecase
}

// NewCheckoutHandler creates a CheckoutHandler.
func NewCheckoutHandler(checkout CheckoutUsecase) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout}
}

// CreateCheckoutSession buys one unit of a product for the caller.
func (h *CheckoutHandler) CreateCheckoutSession(c *gin.Context) {
	userID, ok := jwtmw.UserIDFrom(c)
	if !ok {
		response.Error(c, errNotAuthenticated)
		return
	}
	var req dto.CheckoutReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	order, err := h.checkout.Checkout(c.Request.Context(), userID, req.ProductID)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.CheckoutRes{
		Message: "Purchase completed. A confirmation email has been sent.",
		OrderID: order.ID,
	})
}

// Orders handles GET /payments/orders.
func (h *CheckoutHandler) Orders(c *gin.Context) {
	orders, err := h.checkout.Orders(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	if orders == nil {
		orders = []entity.Order{}
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}
