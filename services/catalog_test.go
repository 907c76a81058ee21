package services

import (
	"context"
	"fmt"
	"testing"

	"food-ordering-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListRestaurantsScoping(t *testing.T) {
	f := newFixture(t)
	catalog := f.catalogService()
	ctx := context.Background()

	t.Run("member sees only own country", func(t *testing.T) {
		restaurants, err := catalog.ListRestaurants(ctx, f.memberIndia.ID)
		require.NoError(t, err)
		require.Len(t, restaurants, 1)
		assert.Equal(t, models.CountryIndia, restaurants[0].Country)
		assert.NotEmpty(t, restaurants[0].MenuItems)
	})

	t.Run("manager sees only own country", func(t *testing.T) {
		restaurants, err := catalog.ListRestaurants(ctx, f.managerUS.ID)
		require.NoError(t, err)
		require.Len(t, restaurants, 1)
		assert.Equal(t, models.CountryAmerica, restaurants[0].Country)
	})

	t.Run("admin sees both countries", func(t *testing.T) {
		restaurants, err := catalog.ListRestaurants(ctx, f.admin.ID)
		require.NoError(t, err)
		require.Len(t, restaurants, 2)
	})

	t.Run("unknown actor", func(t *testing.T) {
		_, err := catalog.ListRestaurants(ctx, "no-such-user")
		assert.ErrorIs(t, err, ErrUnauthenticated)
	})
}

func TestListRestaurantsPageCap(t *testing.T) {
	f := newFixture(t)
	catalog := f.catalogService()
	ctx := context.Background()

	for i := 0; i < 15; i++ {
		r := &models.Restaurant{
			Name:    fmt.Sprintf("Dhaba %02d", i),
			Country: models.CountryIndia,
		}
		require.NoError(t, f.repos.Restaurants.Create(ctx, r))
	}

	restaurants, err := catalog.ListRestaurants(ctx, f.memberIndia.ID)
	require.NoError(t, err)
	assert.Len(t, restaurants, restaurantPageSize)
}

func TestGetRestaurant(t *testing.T) {
	f := newFixture(t)
	catalog := f.catalogService()
	ctx := context.Background()

	t.Run("found with menu", func(t *testing.T) {
		restaurant, err := catalog.GetRestaurant(ctx, f.indiaPlace.ID, f.memberIndia.ID)
		require.NoError(t, err)
		assert.Equal(t, "Spice Route", restaurant.Name)
		assert.Len(t, restaurant.MenuItems, 2)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := catalog.GetRestaurant(ctx, "missing", f.memberIndia.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("cross-country denied", func(t *testing.T) {
		_, err := catalog.GetRestaurant(ctx, f.americanPlace.ID, f.memberIndia.ID)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("admin crosses countries", func(t *testing.T) {
		_, err := catalog.GetRestaurant(ctx, f.americanPlace.ID, f.admin.ID)
		assert.NoError(t, err)
	})
}

func TestListMenuItems(t *testing.T) {
	f := newFixture(t)
	catalog := f.catalogService()
	ctx := context.Background()

	items, err := catalog.ListMenuItems(ctx, f.indiaPlace.ID, f.managerIndia.ID)
	require.NoError(t, err)
	assert.Len(t, items, 2)

	// the menu carries the same access gate as the restaurant itself
	_, err = catalog.ListMenuItems(ctx, f.indiaPlace.ID, f.memberUS.ID)
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = catalog.ListMenuItems(ctx, "missing", f.managerIndia.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
