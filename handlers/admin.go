package handlers

import (
	"net/http"

	"food-ordering-api/middleware"

	"github.com/gin-gonic/gin"
)

// AdminGetAllUsers returns every user — admin only
func (h *Handlers) AdminGetAllUsers(c *gin.Context) {
	users, err := h.Users.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(users), "users": users})
}

// AdminGetAllOrders returns the newest page of orders plus a summary aggregated
// over every order, not just the returned page
func (h *Handlers) AdminGetAllOrders(c *gin.Context) {
	orders, err := h.Orders.ListOrders(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	summary, confirmedTotal, err := h.Orders.StatusSummary(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"order_summary":   summary,
		"confirmed_total": confirmedTotal,
		"count":           len(orders),
		"orders":          orders,
	})
}
