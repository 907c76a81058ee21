package policy

import (
	"testing"

	"food-ordering-api/models"

	"github.com/stretchr/testify/assert"
)

func user(role models.Role, country models.Country) *models.User {
	return &models.User{ID: "u1", Role: role, Country: country}
}

func TestCanAccessRestaurant(t *testing.T) {
	india := &models.Restaurant{ID: "r1", Country: models.CountryIndia}
	america := &models.Restaurant{ID: "r2", Country: models.CountryAmerica}

	tests := []struct {
		name       string
		actor      *models.User
		restaurant *models.Restaurant
		want       bool
	}{
		{"admin crosses countries", user(models.RoleAdmin, ""), america, true},
		{"admin with country still sees all", user(models.RoleAdmin, models.CountryIndia), america, true},
		{"manager same country", user(models.RoleManager, models.CountryIndia), india, true},
		{"manager other country", user(models.RoleManager, models.CountryAmerica), india, false},
		{"member same country", user(models.RoleMember, models.CountryAmerica), america, true},
		{"member other country", user(models.RoleMember, models.CountryIndia), america, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanAccessRestaurant(tt.actor, tt.restaurant))
		})
	}
}

func TestVisibleOrdersScope(t *testing.T) {
	assert.Equal(t, ScopeAll, VisibleOrdersScope(user(models.RoleAdmin, "")))
	assert.Equal(t, ScopeCountry, VisibleOrdersScope(user(models.RoleManager, models.CountryIndia)))
	assert.Equal(t, ScopeSelf, VisibleOrdersScope(user(models.RoleMember, models.CountryIndia)))
}

func TestCanCheckoutOrCancel(t *testing.T) {
	assert.True(t, CanCheckoutOrCancel(user(models.RoleAdmin, "")))
	assert.True(t, CanCheckoutOrCancel(user(models.RoleManager, models.CountryAmerica)))
	assert.False(t, CanCheckoutOrCancel(user(models.RoleMember, models.CountryIndia)))
}

func TestCanManagePaymentMethods(t *testing.T) {
	assert.True(t, CanManagePaymentMethods(user(models.RoleAdmin, "")))
	assert.False(t, CanManagePaymentMethods(user(models.RoleManager, models.CountryIndia)))
	assert.False(t, CanManagePaymentMethods(user(models.RoleMember, models.CountryAmerica)))
}
