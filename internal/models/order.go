package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the fulfilment state of an order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusShipped   OrderStatus = "SHIPPED"
	OrderStatusDelivered OrderStatus = "DELIVERED"
	OrderStatusCanceled  OrderStatus = "CANCELED"
)

// Valid reports whether s is one of the known statuses. Any valid status
// may replace any other; no transition graph is enforced.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusShipped, OrderStatusDelivered, OrderStatusCanceled:
		return true
	}
	return false
}

// Order is a single-product purchase. TotalPrice is fixed when the order
// is created and does not follow later product price changes.
type Order struct {
	ID         string          `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID     string          `json:"userId" gorm:"type:varchar(36);not null;index"`
	User       *User           `json:"user,omitempty" gorm:"foreignKey:UserID"`
	ProductID  string          `json:"productId" gorm:"type:varchar(36);not null;index"`
	Product    *Product        `json:"product,omitempty" gorm:"foreignKey:ProductID"`
	Quantity   int             `json:"quantity" gorm:"not null"`
	TotalPrice decimal.Decimal `json:"totalPrice" gorm:"type:decimal(12,2);not null"`
	Status     OrderStatus     `json:"status" gorm:"type:varchar(16);not null;default:PENDING"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}
