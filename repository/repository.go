// Package repository defines the persistence ports used by the services and their
// gorm implementations. Services only see the interfaces, so tests can run them
// against an in-memory database.
package repository

import (
	"context"
	"errors"

	"food-ordering-api/models"
)

// ErrRecordNotFound is returned when a lookup by id resolves nothing.
var ErrRecordNotFound = errors.New("record not found")

type UserRepository interface {
	ByID(ctx context.Context, id string) (*models.User, error)
	ByEmail(ctx context.Context, email string) (*models.User, error)
	IDsByCountry(ctx context.Context, country models.Country) ([]string, error)
	List(ctx context.Context) ([]models.User, error)
	Create(ctx context.Context, user *models.User) error
}

type RestaurantRepository interface {
	// ByID loads a restaurant with its menu items.
	ByID(ctx context.Context, id string) (*models.Restaurant, error)
	// List returns restaurants with menus, oldest first, capped at limit.
	// An empty country means no country filter.
	List(ctx context.Context, country models.Country, limit int) ([]models.Restaurant, error)
	MenuItemsByRestaurant(ctx context.Context, restaurantID string) ([]models.MenuItem, error)
	MenuItemsByIDs(ctx context.Context, ids []string) ([]models.MenuItem, error)
	Create(ctx context.Context, restaurant *models.Restaurant) error
}

// OrderFilter narrows an order listing. Zero value means no filtering.
type OrderFilter struct {
	UserIDs []string // restrict to orders owned by these users
}

type OrderRepository interface {
	// CreateWithItems persists the order header and all items as one unit.
	CreateWithItems(ctx context.Context, order *models.Order) error
	// ByID loads an order with its items and owning user.
	ByID(ctx context.Context, id string) (*models.Order, error)
	// List returns orders with items and owners, newest first, capped at limit.
	List(ctx context.Context, filter OrderFilter, limit int) ([]models.Order, error)
	// UpdateStatus moves an order from one status to another in a single guarded
	// write. ErrRecordNotFound means no order with that id is in the from status.
	UpdateStatus(ctx context.Context, id string, from, to models.OrderStatus) error
	// StatusSummary aggregates every order: count per status and the summed
	// total amount of confirmed orders.
	StatusSummary(ctx context.Context) (map[models.OrderStatus]int, float64, error)
}

type PaymentMethodRepository interface {
	ByID(ctx context.Context, id string) (*models.PaymentMethod, error)
	ListByUser(ctx context.Context, userID string) ([]models.PaymentMethod, error)
	Create(ctx context.Context, method *models.PaymentMethod) error
	Update(ctx context.Context, method *models.PaymentMethod) error
	Delete(ctx context.Context, id string) error
}
