package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderStatus represents all possible states of an order
type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusConfirmed OrderStatus = "CONFIRMED"
	StatusCancelled OrderStatus = "CANCELLED"
	StatusCompleted OrderStatus = "COMPLETED"
)

type Order struct {
	ID           string      `json:"id" gorm:"primaryKey"`
	UserID       string      `json:"user_id" gorm:"not null;index"`
	User         User        `json:"user,omitempty" gorm:"foreignKey:UserID"`
	RestaurantID string      `json:"restaurant_id" gorm:"not null;index"`
	Restaurant   *Restaurant `json:"restaurant,omitempty" gorm:"foreignKey:RestaurantID"`
	Status       OrderStatus `json:"status" gorm:"not null;default:'PENDING'"`
	TotalAmount  float64     `json:"total_amount"`
	Items        []OrderItem `json:"items,omitempty" gorm:"foreignKey:OrderID"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}

type OrderItem struct {
	ID         string  `json:"id" gorm:"primaryKey"`
	OrderID    string  `json:"order_id" gorm:"not null;index"`
	MenuItemID string  `json:"menu_item_id" gorm:"not null"`
	Quantity   int     `json:"quantity" gorm:"not null"`
	Price      float64 `json:"price" gorm:"not null"` // snapshot unit price at time of order
	Name       string  `json:"name"`                  // snapshot name
}

func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
