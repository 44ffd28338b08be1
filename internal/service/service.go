package service

import (
	"context"

	"grill-master/internal/cart"
	"grill-master/internal/model"

	"github.com/google/uuid"
)

// CatalogService defines operations for the product catalog.
type CatalogService interface {
	// GetCatalog fetches all products and groups them into the fixed
	// category buckets. Fetch failures degrade to an empty catalog.
	GetCatalog(ctx context.Context) []model.CategoryGroup
}

// CartService defines session-scoped cart operations.
type CartService interface {
	// Add resolves the product and puts one unit of it in the session cart.
	Add(ctx context.Context, sessionID, productID string) (cart.Summary, error)

	// UpdateQuantity sets a line's quantity; zero or less removes the line.
	UpdateQuantity(sessionID, productID string, quantity int) cart.Summary

	// Remove removes a line unconditionally.
	Remove(sessionID, productID string) cart.Summary

	// Clear empties the session cart.
	Clear(sessionID string) cart.Summary

	// View returns the current cart contents with derived totals.
	View(sessionID string) cart.Summary
}

// CheckoutService defines the order submission flow.
type CheckoutService interface {
	// Submit turns the session cart and the contact form into a persisted
	// order and returns the messaging redirect. At most one submission per
	// session may be in flight.
	Submit(ctx context.Context, sessionID string, req *model.CheckoutRequest) (*model.CheckoutResponse, error)
}

// TableService defines the restaurant table picker operations.
type TableService interface {
	// List returns all tables, falling back to the built-in floor plan when
	// the fetch fails.
	List(ctx context.Context) []model.RestaurantTable

	// Select returns the table when it exists and is available.
	Select(ctx context.Context, id uuid.UUID) (*model.RestaurantTable, error)
}
