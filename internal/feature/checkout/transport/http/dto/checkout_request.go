// Package dto defines request bodies for the checkout endpoints.
package dto

// CheckoutReq is the body of POST /payments/create-checkout-session.
type CheckoutReq struct {
	ProductID uint `json:"productId" binding:"required"`
}

// CheckoutRes is returned after a successful purchase.
type CheckoutRes struct {
	Message string `json:"message"`
	OrderID uint   `json:"orderId"`
}
