package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"food-ordering-api/models"
	"food-ordering-api/policy"
	"food-ordering-api/repository"

	"github.com/redis/go-redis/v9"
)

// restaurantPageSize caps every restaurant listing.
const restaurantPageSize = 10

const catalogCacheTTL = 5 * time.Minute

// CatalogService lists restaurants and menus scoped by the access policy.
// The redis client is optional; a nil client disables the read-through cache.
type CatalogService struct {
	users       repository.UserRepository
	restaurants repository.RestaurantRepository
	cache       *redis.Client
}

func NewCatalogService(users repository.UserRepository, restaurants repository.RestaurantRepository, cache *redis.Client) *CatalogService {
	return &CatalogService{users: users, restaurants: restaurants, cache: cache}
}

func (s *CatalogService) actor(ctx context.Context, actorID string) (*models.User, error) {
	actor, err := s.users.ByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, err
	}
	return actor, nil
}

// ListRestaurants returns restaurants with their menus: every country for admins,
// the actor's own country for everyone else. Capped at restaurantPageSize.
func (s *CatalogService) ListRestaurants(ctx context.Context, actorID string) ([]models.Restaurant, error) {
	actor, err := s.actor(ctx, actorID)
	if err != nil {
		return nil, err
	}

	var country models.Country
	if actor.Role != models.RoleAdmin {
		country = actor.Country
	}

	cacheKey := fmt.Sprintf("restaurants:%s", country)
	if country == "" {
		cacheKey = "restaurants:ALL"
	}

	if cached, ok := s.cacheGet(ctx, cacheKey); ok {
		return cached, nil
	}

	restaurants, err := s.restaurants.List(ctx, country, restaurantPageSize)
	if err != nil {
		return nil, err
	}
	s.cacheSet(ctx, cacheKey, restaurants)
	return restaurants, nil
}

// GetRestaurant returns one restaurant with its menu, enforcing country access.
func (s *CatalogService) GetRestaurant(ctx context.Context, restaurantID, actorID string) (*models.Restaurant, error) {
	actor, err := s.actor(ctx, actorID)
	if err != nil {
		return nil, err
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
	return restaurant, nil
}

// ListMenuItems returns the menu of a restaurant the actor can access.
func (s *CatalogService) ListMenuItems(ctx context.Context, restaurantID, actorID string) ([]models.MenuItem, error) {
	// same access gate as GetRestaurant; the menu is not an open surface
	if _, err := s.GetRestaurant(ctx, restaurantID, actorID); err != nil {
		return nil, err
	}
	return s.restaurants.MenuItemsByRestaurant(ctx, restaurantID)
}

// cacheGet tries the redis cache; any failure is a miss.
func (s *CatalogService) cacheGet(ctx context.Context, key string) ([]models.Restaurant, bool) {
	if s.cache == nil {
		return nil, false
	}
	payload, err := s.cache.Get(ctx, key).Result()
	if err != nil {
		return nil, false
	}
	var restaurants []models.Restaurant
	if err := json.Unmarshal([]byte(payload), &restaurants); err != nil {
		return nil, false
	}
	return restaurants, true
}

func (s *CatalogService) cacheSet(ctx context.Context, key string, restaurants []models.Restaurant) {
	if s.cache == nil {
		return
	}
	payload, err := json.Marshal(restaurants)
	if err != nil {
		return
	}
	// best effort: a dead cache never fails the request
	s.cache.Set(ctx, key, payload, catalogCacheTTL)
}
