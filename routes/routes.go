package routes

import (
	"food-ordering-api/handlers"
	"food-ordering-api/middleware"
	"food-ordering-api/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, h *handlers.Handlers) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		public.POST("/auth/login", h.Login)
	}

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired(h.Auth))
	{
		auth.GET("/me", h.Me)

		// Catalog
		auth.GET("/restaurants", h.ListRestaurants)
		auth.GET("/restaurants/:id", h.GetRestaurant)
		auth.GET("/restaurants/:id/menu", h.GetMenu)

		// Orders
		auth.GET("/orders", h.ListOrders)
		auth.POST("/orders", h.CreateOrder)
		auth.PUT("/orders/:id/checkout", h.CheckoutOrder)
		auth.PUT("/orders/:id/cancel", h.CancelOrder)

		// Payment methods (writes are gated admin-only in the service)
		auth.GET("/payment-methods", h.ListPaymentMethods)
		auth.POST("/payment-methods", h.AddPaymentMethod)
		auth.PUT("/payment-methods/:id", h.UpdatePaymentMethod)
		auth.DELETE("/payment-methods/:id", h.DeletePaymentMethod)
	}

	// ── Admin routes ───────────────────────────────────────────────
	admin := r.Group("/api/admin")
	admin.Use(middleware.AuthRequired(h.Auth), middleware.RoleRequired(models.RoleAdmin))
	{
		admin.GET("/users", h.AdminGetAllUsers)
		admin.GET("/orders", h.AdminGetAllOrders)
	}
}
