package services

import (
	"context"
	"fmt"
	"testing"

	"food-ordering-api/models"
	"food-ordering-api/repository"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// fixture is a populated in-memory database with one user per interesting
// role/country combination and a restaurant per country.
type fixture struct {
	db    *gorm.DB
	repos *repository.Repositories

	admin         *models.User
	managerIndia  *models.User
	managerUS     *models.User
	memberIndia   *models.User
	memberUS      *models.User
	indiaPlace    *models.Restaurant
	americanPlace *models.Restaurant
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// each test gets its own named shared-cache memory database so gorm's
	// connection pool always sees the same data
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Restaurant{},
		&models.MenuItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.PaymentMethod{},
	))
	return db
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := newTestDB(t)
	f := &fixture{db: db, repos: repository.New(db)}
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.MinCost)
	require.NoError(t, err)

	mkUser := func(email string, role models.Role, country models.Country) *models.User {
		u := &models.User{Email: email, Name: email, PasswordHash: string(hash), Role: role, Country: country}
		require.NoError(t, f.repos.Users.Create(ctx, u))
		return u
	}
	f.admin = mkUser("admin@example.com", models.RoleAdmin, models.CountryIndia)
	f.managerIndia = mkUser("manager.in@example.com", models.RoleManager, models.CountryIndia)
	f.managerUS = mkUser("manager.us@example.com", models.RoleManager, models.CountryAmerica)
	f.memberIndia = mkUser("member.in@example.com", models.RoleMember, models.CountryIndia)
	f.memberUS = mkUser("member.us@example.com", models.RoleMember, models.CountryAmerica)

	f.indiaPlace = &models.Restaurant{
		Name:    "Spice Route",
		Country: models.CountryIndia,
		MenuItems: []models.MenuItem{
			{Name: "Butter Chicken", Price: 12.50},
			{Name: "Garlic Naan", Price: 3.00},
		},
	}
	require.NoError(t, f.repos.Restaurants.Create(ctx, f.indiaPlace))

	f.americanPlace = &models.Restaurant{
		Name:    "Liberty Diner",
		Country: models.CountryAmerica,
		MenuItems: []models.MenuItem{
			{Name: "Cheeseburger", Price: 11.00},
		},
	}
	require.NoError(t, f.repos.Restaurants.Create(ctx, f.americanPlace))

	return f
}

func (f *fixture) authService() *AuthService {
	return NewAuthService(f.repos.Users, []byte("test-secret"), 0)
}

func (f *fixture) catalogService() *CatalogService {
	return NewCatalogService(f.repos.Users, f.repos.Restaurants, nil)
}

func (f *fixture) orderService() *OrderService {
	return NewOrderService(f.repos.Users, f.repos.Restaurants, f.repos.Orders)
}

func (f *fixture) paymentService() *PaymentService {
	return NewPaymentService(f.repos.Users, f.repos.PaymentMethods)
}
