package repository

import (
	"context"

	"grill-master/internal/model"
)

// ProductRepository defines the interface for product data access operations.
type ProductRepository interface {
	// GetAll retrieves all products ordered by category label.
	GetAll(ctx context.Context) ([]model.Product, error)

	// GetByID retrieves a single product by its ID. Returns nil when the
	// product does not exist.
	GetByID(ctx context.Context, id string) (*model.Product, error)
}

// OrderRepository defines the interface for order data access operations.
//
// CreateOrder and CreateOrderItems are deliberately two separate round trips
// with no enclosing transaction: the write path mirrors the storefront's
// behaviour, where an order header that succeeds before a failing item batch
// is left in place.
type OrderRepository interface {
	// CreateOrder inserts a single order header row.
	CreateOrder(ctx context.Context, order *model.Order) error

	// CreateOrderItems inserts the order's line items in one batch.
	CreateOrderItems(ctx context.Context, items []model.OrderItem) error
}

// TableRepository defines the interface for restaurant table reference data.
type TableRepository interface {
	// GetAll retrieves all restaurant tables ordered by table number.
	GetAll(ctx context.Context) ([]model.RestaurantTable, error)
}
