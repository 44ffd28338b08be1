package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatusPending is the status every order is created with. The client
// never mutates an order after creation.
const OrderStatusPending = "pending"

// Order represents a submitted order header, excluding its line items.
type Order struct {
	ID              uuid.UUID  `json:"id" db:"id"`
	CustomerName    string     `json:"customerName" db:"customer_name"`
	CustomerPhone   string     `json:"customerPhone" db:"customer_phone"`
	DeliveryAddress string     `json:"deliveryAddress" db:"delivery_address"`
	TotalAmount     int64      `json:"totalAmount" db:"total_amount"`
	Status          string     `json:"status" db:"status"`
	TableID         *uuid.UUID `json:"tableId,omitempty" db:"table_id"`
	TableNumber     *int       `json:"tableNumber,omitempty" db:"table_number"`
	CreatedAt       time.Time  `json:"createdAt" db:"created_at"`
}

// OrderItem represents one persisted line within an order. UnitPrice is a
// snapshot of the product price at order time, not a live reference.
type OrderItem struct {
	ID        uuid.UUID `json:"-" db:"id"`
	OrderID   uuid.UUID `json:"-" db:"order_id"`
	ProductID string    `json:"productId" db:"product_id"`
	Quantity  int       `json:"quantity" db:"quantity"`
	UnitPrice int64     `json:"unitPrice" db:"unit_price"`
}

// CheckoutRequest represents the contact form submitted at checkout.
type CheckoutRequest struct {
	Name    string     `json:"name"`
	Phone   string     `json:"phone"`
	Address string     `json:"address"`
	TableID *uuid.UUID `json:"tableId,omitempty"`
}

// CheckoutResponse carries the created order reference and the messaging
// deep link the client must navigate to. The redirect is the terminal action.
type CheckoutResponse struct {
	OrderID     uuid.UUID `json:"orderId"`
	RedirectURL string    `json:"redirectUrl"`
}
