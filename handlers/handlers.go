package handlers

import (
	"errors"
	"net/http"

	"food-ordering-api/repository"
	"food-ordering-api/services"

	"github.com/gin-gonic/gin"
)

// Handlers bundles the HTTP surface over the injected services.
type Handlers struct {
	Auth     *services.AuthService
	Catalog  *services.CatalogService
	Orders   *services.OrderService
	Payments *services.PaymentService
	Users    repository.UserRepository
}

func New(auth *services.AuthService, catalog *services.CatalogService, orders *services.OrderService, payments *services.PaymentService, users repository.UserRepository) *Handlers {
	return &Handlers{
		Auth:     auth,
		Catalog:  catalog,
		Orders:   orders,
		Payments: payments,
		Users:    users,
	}
}

// respondError maps a service error kind onto an HTTP status. Only the error
// kind's message leaves the process.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrUnauthenticated), errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrAccessDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidState):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
