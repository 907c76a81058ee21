package handlers

import (
	"net/http"

	"food-ordering-api/middleware"
	"food-ordering-api/services"

	"github.com/gin-gonic/gin"
)

type AddPaymentMethodRequest struct {
	CardNumber string `json:"card_number" binding:"required"`
	CardHolder string `json:"card_holder" binding:"required"`
	ExpiryDate string `json:"expiry_date" binding:"required"`
	IsDefault  bool   `json:"is_default"`
}

// ListPaymentMethods returns the caller's stored payment methods
func (h *Handlers) ListPaymentMethods(c *gin.Context) {
	methods, err := h.Payments.List(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(methods), "payment_methods": methods})
}

// AddPaymentMethod stores a new card for the caller (admin only)
func (h *Handlers) AddPaymentMethod(c *gin.Context) {
	var req AddPaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	method, err := h.Payments.Add(c.Request.Context(), middleware.GetUserID(c),
		req.CardNumber, req.CardHolder, req.ExpiryDate, req.IsDefault)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":        "Payment method added",
		"payment_method": method,
	})
}

// UpdatePaymentMethod applies partial updates to a stored card (admin only)
func (h *Handlers) UpdatePaymentMethod(c *gin.Context) {
	var input services.PaymentMethodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	method, err := h.Payments.Update(c.Request.Context(), middleware.GetUserID(c), c.Param("id"), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":        "Payment method updated",
		"payment_method": method,
	})
}

// DeletePaymentMethod removes a stored card (admin only)
func (h *Handlers) DeletePaymentMethod(c *gin.Context) {
	if err := h.Payments.Delete(c.Request.Context(), middleware.GetUserID(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Payment method deleted", "deleted": true})
}
