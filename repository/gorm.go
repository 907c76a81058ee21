package repository

import (
	"context"
	"errors"

	"food-ordering-api/models"

	"gorm.io/gorm"
)

// Repositories bundles the gorm-backed implementations over one database handle.
type Repositories struct {
	Users          UserRepository
	Restaurants    RestaurantRepository
	Orders         OrderRepository
	PaymentMethods PaymentMethodRepository
}

func New(db *gorm.DB) *Repositories {
	return &Repositories{
		Users:          &gormUserRepository{db: db},
		Restaurants:    &gormRestaurantRepository{db: db},
		Orders:         &gormOrderRepository{db: db},
		PaymentMethods: &gormPaymentMethodRepository{db: db},
	}
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrRecordNotFound
	}
	return err
}

// ── Users ──────────────────────────────────────────────────────────

type gormUserRepository struct {
	db *gorm.DB
}

func (r *gormUserRepository) ByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *gormUserRepository) ByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "email = ?", email).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *gormUserRepository) IDsByCountry(ctx context.Context, country models.Country) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).Model(&models.User{}).
		Where("country = ?", country).
		Pluck("id", &ids).Error
	return ids, err
}

func (r *gormUserRepository) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := r.db.WithContext(ctx).Order("created_at asc").Find(&users).Error
	return users, err
}

func (r *gormUserRepository) Create(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// ── Restaurants ────────────────────────────────────────────────────

type gormRestaurantRepository struct {
	db *gorm.DB
}

func (r *gormRestaurantRepository) ByID(ctx context.Context, id string) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	if err := r.db.WithContext(ctx).Preload("MenuItems").First(&restaurant, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &restaurant, nil
}

func (r *gormRestaurantRepository) List(ctx context.Context, country models.Country, limit int) ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	query := r.db.WithContext(ctx).Preload("MenuItems").Order("created_at asc")
	if country != "" {
		query = query.Where("country = ?", country)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&restaurants).Error
	return restaurants, err
}

func (r *gormRestaurantRepository) MenuItemsByRestaurant(ctx context.Context, restaurantID string) ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := r.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		Order("created_at asc").
		Find(&items).Error
	return items, err
}

func (r *gormRestaurantRepository) MenuItemsByIDs(ctx context.Context, ids []string) ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&items).Error
	return items, err
}

func (r *gormRestaurantRepository) Create(ctx context.Context, restaurant *models.Restaurant) error {
	return r.db.WithContext(ctx).Create(restaurant).Error
}

// ── Orders ─────────────────────────────────────────────────────────

type gormOrderRepository struct {
	db *gorm.DB
}

// CreateWithItems relies on gorm writing the order and its association rows inside
// a single transaction, so a failed item insert never leaves a bare header behind.
func (r *gormOrderRepository) CreateWithItems(ctx context.Context, order *models.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *gormOrderRepository) ByID(ctx context.Context, id string) (*models.Order, error) {
	var order models.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("User").
		First(&order, "id = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &order, nil
}

func (r *gormOrderRepository) List(ctx context.Context, filter OrderFilter, limit int) ([]models.Order, error) {
	var orders []models.Order
	query := r.db.WithContext(ctx).
		Preload("Items").
		Preload("User").
		Order("created_at desc")
	if filter.UserIDs != nil {
		query = query.Where("user_id IN ?", filter.UserIDs)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&orders).Error
	return orders, err
}

// UpdateStatus guards the write on the expected current status, so two racing
// transitions can never both succeed.
func (r *gormOrderRepository) UpdateStatus(ctx context.Context, id string, from, to models.OrderStatus) error {
	result := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (r *gormOrderRepository) StatusSummary(ctx context.Context) (map[models.OrderStatus]int, float64, error) {
	var rows []struct {
		Status models.OrderStatus
		Count  int
		Total  float64
	}
	err := r.db.WithContext(ctx).Model(&models.Order{}).
		Select("status, count(*) as count, sum(total_amount) as total").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	summary := make(map[models.OrderStatus]int, len(rows))
	var confirmedTotal float64
	for _, row := range rows {
		summary[row.Status] = row.Count
		if row.Status == models.StatusConfirmed {
			confirmedTotal = row.Total
		}
	}
	return summary, confirmedTotal, nil
}

// ── Payment methods ────────────────────────────────────────────────

type gormPaymentMethodRepository struct {
	db *gorm.DB
}

func (r *gormPaymentMethodRepository) ByID(ctx context.Context, id string) (*models.PaymentMethod, error) {
	var method models.PaymentMethod
	if err := r.db.WithContext(ctx).First(&method, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &method, nil
}

func (r *gormPaymentMethodRepository) ListByUser(ctx context.Context, userID string) ([]models.PaymentMethod, error) {
	var methods []models.PaymentMethod
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at asc").
		Find(&methods).Error
	return methods, err
}

func (r *gormPaymentMethodRepository) Create(ctx context.Context, method *models.PaymentMethod) error {
	return r.db.WithContext(ctx).Create(method).Error
}

func (r *gormPaymentMethodRepository) Update(ctx context.Context, method *models.PaymentMethod) error {
	return r.db.WithContext(ctx).Save(method).Error
}

func (r *gormPaymentMethodRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.PaymentMethod{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}
