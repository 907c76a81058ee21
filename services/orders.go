package services

import (
	"context"
	"errors"
	"fmt"

	"food-ordering-api/models"
	"food-ordering-api/policy"
	"food-ordering-api/repository"
	"food-ordering-api/statemachine"
)

// orderPageSize caps every order listing.
const orderPageSize = 20

// OrderItemInput is one requested line of a new order.
type OrderItemInput struct {
	MenuItemID string `json:"menu_item_id" binding:"required"`
	Quantity   int    `json:"quantity" binding:"required,min=1"`
}

// OrderService drives the order lifecycle: create, list, checkout, cancel.
type OrderService struct {
	users       repository.UserRepository
	restaurants repository.RestaurantRepository
	orders      repository.OrderRepository
}

func NewOrderService(users repository.UserRepository, restaurants repository.RestaurantRepository, orders repository.OrderRepository) *OrderService {
	return &OrderService{users: users, restaurants: restaurants, orders: orders}
}

func (s *OrderService) actor(ctx context.Context, actorID string) (*models.User, error) {
	actor, err := s.users.ByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, err
	}
	return actor, nil
}

// ListOrders returns the orders visible to the actor, newest first, capped at
// orderPageSize. Admins see everything, managers their country, members themselves.
func (s *OrderService) ListOrders(ctx context.Context, actorID string) ([]models.Order, error) {
	actor, err := s.actor(ctx, actorID)
	if err != nil {
		return nil, err
	}

	var filter repository.OrderFilter
	switch policy.VisibleOrdersScope(actor) {
	case policy.ScopeAll:
		// no filter
	case policy.ScopeCountry:
		ids, err := s.users.IDsByCountry(ctx, actor.Country)
		if err != nil {
			return nil, err
		}
		filter.UserIDs = ids
	default:
		filter.UserIDs = []string{actor.ID}
	}

	return s.orders.List(ctx, filter, orderPageSize)
}

// CreateOrder validates every requested menu item up front, snapshots unit prices
// and names, and persists the order atomically in PENDING status.
func (s *OrderService) CreateOrder(ctx context.Context, actorID, restaurantID string, items []OrderItemInput) (*models.Order, error) {
	actor, err := s.actor(ctx, actorID)
	if err != nil {
		return nil, err
	}

	if len(items) == 0 {
		return nil, fmt.Errorf("%w: order needs at least one item", ErrInvalidInput)
	}

	restaurant, err := s.restaurants.ByID(ctx, restaurantID)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: restaurant", ErrNotFound)
		}
		return nil, err
	}

	if !policy.CanAccessRestaurant(actor, restaurant) {
		return nil, fmt.Errorf("%w: restaurant is outside your country", ErrAccessDenied)
	}

	ids := make([]string, 0, len(items))
	for _, item := range items {
		if item.Quantity < 1 {
			return nil, fmt.Errorf("%w: quantity must be positive", ErrInvalidInput)
		}
		ids = append(ids, item.MenuItemID)
	}

	menuItems, err := s.restaurants.MenuItemsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]models.MenuItem, len(menuItems))
	for _, m := range menuItems {
		byID[m.ID] = m
	}

	// resolve everything before any write; a single missing item aborts the order
	var orderItems []models.OrderItem
	var total float64
	for _, item := range items {
		menuItem, ok := byID[item.MenuItemID]
		if !ok {
			return nil, fmt.Errorf("%w: menu item %s", ErrNotFound, item.MenuItemID)
		}
		if menuItem.RestaurantID != restaurant.ID {
			return nil, fmt.Errorf("%w: menu item %q does not belong to this restaurant", ErrInvalidInput, menuItem.Name)
		}
		total += menuItem.Price * float64(item.Quantity)
		orderItems = append(orderItems, models.OrderItem{
			MenuItemID: menuItem.ID,
			Quantity:   item.Quantity,
			Price:      menuItem.Price,
			Name:       menuItem.Name,
		})
	}

	order := &models.Order{
		UserID:       actor.ID,
		RestaurantID: restaurant.ID,
		Status:       models.StatusPending,
		TotalAmount:  total,
		Items:        orderItems,
	}
	if err := s.orders.CreateWithItems(ctx, order); err != nil {
		return nil, err
	}
	return s.orders.ByID(ctx, order.ID)
}

// CheckoutOrder moves a PENDING order to CONFIRMED. Members may not check out.
func (s *OrderService) CheckoutOrder(ctx context.Context, orderID, actorID string) (*models.Order, error) {
	return s.transition(ctx, orderID, actorID, models.StatusConfirmed)
}

// CancelOrder moves a PENDING order to CANCELLED. Members may not cancel, and
// confirmed orders stay confirmed.
func (s *OrderService) CancelOrder(ctx context.Context, orderID, actorID string) (*models.Order, error) {
	return s.transition(ctx, orderID, actorID, models.StatusCancelled)
}

func (s *OrderService) transition(ctx context.Context, orderID, actorID string, to models.OrderStatus) (*models.Order, error) {
	actor, err := s.actor(ctx, actorID)
	if err != nil {
		return nil, err
	}

	if !policy.CanCheckoutOrCancel(actor) {
		return nil, fmt.Errorf("%w: members do not have permission to progress orders", ErrAccessDenied)
	}

	order, err := s.orders.ByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: order", ErrNotFound)
		}
		return nil, err
	}

	if err := statemachine.CanTransition(order.Status, to); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidState, err.Error())
	}

	// the guarded write loses against a concurrent transition out of PENDING
	if err := s.orders.UpdateStatus(ctx, order.ID, order.Status, to); err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: order is no longer %s", ErrInvalidState, order.Status)
		}
		return nil, err
	}
	return s.orders.ByID(ctx, order.ID)
}

// StatusSummary aggregates every order in the system by status. The route
// exposing it is admin-only.
func (s *OrderService) StatusSummary(ctx context.Context) (map[models.OrderStatus]int, float64, error) {
	return s.orders.StatusSummary(ctx)
}
