package handlers

import (
	"net/http"

	"food-ordering-api/middleware"
	"food-ordering-api/services"

	"github.com/gin-gonic/gin"
)

type CreateOrderRequest struct {
	RestaurantID string                    `json:"restaurant_id" binding:"required"`
	Items        []services.OrderItemInput `json:"items" binding:"required,min=1,dive"`
}

// ListOrders returns the orders visible to the caller's role scope
func (h *Handlers) ListOrders(c *gin.Context) {
	orders, err := h.Orders.ListOrders(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// CreateOrder creates a new PENDING order with price snapshots
func (h *Handlers) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.Orders.CreateOrder(c.Request.Context(), middleware.GetUserID(c), req.RestaurantID, req.Items)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Order placed successfully",
		"order":   order,
	})
}

// CheckoutOrder confirms a pending order
func (h *Handlers) CheckoutOrder(c *gin.Context) {
	order, err := h.Orders.CheckoutOrder(c.Request.Context(), c.Param("id"), middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order confirmed", "order": order})
}

// CancelOrder cancels a pending order
func (h *Handlers) CancelOrder(c *gin.Context) {
	order, err := h.Orders.CancelOrder(c.Request.Context(), c.Param("id"), middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order cancelled", "order": order})
}
