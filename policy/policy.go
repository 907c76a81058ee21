// Package policy holds the pure access-control decisions. Every function here is
// total: callers decide how to reject, the policy only answers allow/deny or scope.
package policy

import "food-ordering-api/models"

// OrderScope describes which orders an actor may see.
type OrderScope string

const (
	ScopeAll     OrderScope = "ALL"     // every order in the system
	ScopeCountry OrderScope = "COUNTRY" // orders of users sharing the actor's country
	ScopeSelf    OrderScope = "SELF"    // only the actor's own orders
)

// CanAccessRestaurant reports whether the actor may see or order from the restaurant.
// Admins see everything; everyone else is confined to their own country.
func CanAccessRestaurant(actor *models.User, restaurant *models.Restaurant) bool {
	if actor.Role == models.RoleAdmin {
		return true
	}
	return actor.Country == restaurant.Country
}

// VisibleOrdersScope maps the actor's role to an order visibility scope.
func VisibleOrdersScope(actor *models.User) OrderScope {
	switch actor.Role {
	case models.RoleAdmin:
		return ScopeAll
	case models.RoleManager:
		return ScopeCountry
	default:
		return ScopeSelf
	}
}

// CanCheckoutOrCancel reports whether the actor may drive an order through its
// lifecycle. Members can build orders but not progress them.
func CanCheckoutOrCancel(actor *models.User) bool {
	return actor.Role != models.RoleMember
}

// CanManagePaymentMethods reports whether the actor may write payment methods.
func CanManagePaymentMethods(actor *models.User) bool {
	return actor.Role == models.RoleAdmin
}
