// Package seed loads the demo dataset: the fixed user roster, one restaurant set
// per country, and a sample stored card for the first admin.
package seed

import (
	"context"

	"food-ordering-api/models"
	"food-ordering-api/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Run populates an empty database. It is a no-op when users already exist.
func Run(ctx context.Context, db *gorm.DB) error {
	var count int64
	if err := db.WithContext(ctx).Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	repos := repository.New(db)

	users := []models.User{
		{Email: "nick.fury@slooze.xyz", Name: "Nick Fury", Role: models.RoleAdmin, Country: models.CountryIndia},
		{Email: "captain.marvel@slooze.xyz", Name: "Captain Marvel", Role: models.RoleManager, Country: models.CountryIndia},
		{Email: "captain.america@slooze.xyz", Name: "Captain America", Role: models.RoleManager, Country: models.CountryAmerica},
		{Email: "thanos@slooze.xyz", Name: "Thanos", Role: models.RoleMember, Country: models.CountryIndia},
		{Email: "thor@slooze.xyz", Name: "Thor", Role: models.RoleMember, Country: models.CountryIndia},
		{Email: "travis@slooze.xyz", Name: "Travis", Role: models.RoleMember, Country: models.CountryAmerica},
	}
	var admin *models.User
	for i := range users {
		users[i].PasswordHash = string(hash)
		if err := repos.Users.Create(ctx, &users[i]); err != nil {
			return err
		}
		if users[i].Role == models.RoleAdmin && admin == nil {
			admin = &users[i]
		}
	}

	restaurants := []models.Restaurant{
		{
			Name:        "Spice Route",
			Description: "North Indian classics",
			Country:     models.CountryIndia,
			MenuItems: []models.MenuItem{
				{Name: "Butter Chicken", Description: "Creamy tomato gravy", Price: 12.50},
				{Name: "Paneer Tikka", Description: "Char-grilled cottage cheese", Price: 9.00},
				{Name: "Garlic Naan", Description: "Tandoor flatbread", Price: 3.00},
			},
		},
		{
			Name:        "Dosa Corner",
			Description: "South Indian breakfast all day",
			Country:     models.CountryIndia,
			MenuItems: []models.MenuItem{
				{Name: "Masala Dosa", Description: "Potato-filled crepe", Price: 6.50},
				{Name: "Idli Sambar", Description: "Steamed rice cakes", Price: 5.00},
			},
		},
		{
			Name:        "Liberty Diner",
			Description: "All-American comfort food",
			Country:     models.CountryAmerica,
			MenuItems: []models.MenuItem{
				{Name: "Cheeseburger", Description: "Double patty, cheddar", Price: 11.00},
				{Name: "Buffalo Wings", Description: "Dozen, extra hot", Price: 10.50},
				{Name: "Milkshake", Description: "Vanilla or chocolate", Price: 5.50},
			},
		},
		{
			Name:        "Golden Gate Grill",
			Description: "West-coast grill and salads",
			Country:     models.CountryAmerica,
			MenuItems: []models.MenuItem{
				{Name: "Grilled Salmon", Description: "With seasonal greens", Price: 17.00},
				{Name: "Cobb Salad", Description: "Classic, avocado ranch", Price: 12.00},
			},
		},
	}
	for i := range restaurants {
		if err := repos.Restaurants.Create(ctx, &restaurants[i]); err != nil {
			return err
		}
	}

	if admin != nil {
		card := &models.PaymentMethod{
			UserID:     admin.ID,
			CardNumber: "4111111111111111",
			CardHolder: admin.Name,
			ExpiryDate: "12/28",
			IsDefault:  true,
		}
		if err := repos.PaymentMethods.Create(ctx, card); err != nil {
			return err
		}
	}

	return nil
}
