package service

import (
	"context"
	"fmt"

	"grill-master/internal/cart"
	"grill-master/internal/model"
	"grill-master/internal/repository"

	"github.com/rs/zerolog"
)

// cartService implements CartService on top of the shared cart store.
type cartService struct {
	carts       *cart.Store
	productRepo repository.ProductRepository
	logger      zerolog.Logger
}

// NewCartService creates a new cart service.
func NewCartService(carts *cart.Store, productRepo repository.ProductRepository, logger zerolog.Logger) CartService {
	return &cartService{
		carts:       carts,
		productRepo: productRepo,
		logger:      logger.With().Str("service", "cart").Logger(),
	}
}

// Add resolves the product and puts one unit of it in the session cart.
// Cart lines always hold the full product so totals and the checkout
// snapshot never depend on a second lookup.
func (s *cartService) Add(ctx context.Context, sessionID, productID string) (cart.Summary, error) {
	c := s.carts.Get(sessionID)

	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", productID).Msg("failed to resolve product")
		return cart.Summarize(c), fmt.Errorf("failed to resolve product: %w", err)
	}
	if product == nil {
		s.logger.Warn().Str("product_id", productID).Msg("product not found")
		return cart.Summarize(c), model.ErrProductNotFound
	}

	c.Add(*product)

	s.logger.Debug().
		Str("product_id", productID).
		Int("item_count", c.ItemCount()).
		Msg("product added to cart")

	return cart.Summarize(c), nil
}

// UpdateQuantity sets a line's quantity; zero or less removes the line.
func (s *cartService) UpdateQuantity(sessionID, productID string, quantity int) cart.Summary {
	c := s.carts.Get(sessionID)
	c.UpdateQuantity(productID, quantity)
	return cart.Summarize(c)
}

// Remove removes a line unconditionally.
func (s *cartService) Remove(sessionID, productID string) cart.Summary {
	c := s.carts.Get(sessionID)
	c.Remove(productID)
	return cart.Summarize(c)
}

// Clear empties the session cart.
func (s *cartService) Clear(sessionID string) cart.Summary {
	c := s.carts.Get(sessionID)
	c.Clear()
	return cart.Summarize(c)
}

// View returns the current cart contents with derived totals.
func (s *cartService) View(sessionID string) cart.Summary {
	return cart.Summarize(s.carts.Get(sessionID))
}
