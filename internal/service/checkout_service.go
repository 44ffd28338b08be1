package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"grill-master/internal/cart"
	"grill-master/internal/model"
	"grill-master/internal/repository"
	"grill-master/internal/whatsapp"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// checkoutService implements CheckoutService.
//
// The busy flag per session is the only concurrency guard in the system. It
// prevents double submission from one storefront; it is not an idempotency
// key and would not survive multiple server instances.
type checkoutService struct {
	orderRepo      repository.OrderRepository
	carts          *cart.Store
	tables         TableService
	whatsappNumber string
	logger         zerolog.Logger

	mu       sync.Mutex
	inflight map[string]struct{}
}

// NewCheckoutService creates a new checkout service.
func NewCheckoutService(
	orderRepo repository.OrderRepository,
	carts *cart.Store,
	tables TableService,
	whatsappNumber string,
	logger zerolog.Logger,
) CheckoutService {
	return &checkoutService{
		orderRepo:      orderRepo,
		carts:          carts,
		tables:         tables,
		whatsappNumber: whatsappNumber,
		logger:         logger.With().Str("service", "checkout").Logger(),
		inflight:       make(map[string]struct{}),
	}
}

// Submit turns the session cart and the contact form into a persisted order.
//
// The order header and its items are written as two independent round trips.
// If the item batch fails after the header succeeded, the header is left
// orphaned: the source system has no cleanup for this and inventing a retry
// here could double-submit. Either failure leaves the cart intact.
func (s *checkoutService) Submit(ctx context.Context, sessionID string, req *model.CheckoutRequest) (*model.CheckoutResponse, error) {
	if !s.begin(sessionID) {
		s.logger.Warn().Msg("submission already in progress for session")
		return nil, model.ErrSubmissionInProgress
	}
	defer s.end(sessionID)

	if req == nil || strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Phone) == "" {
		return nil, model.ErrMissingCustomerInfo
	}

	c := s.carts.Get(sessionID)
	lines := c.Lines()
	if len(lines) == 0 {
		return nil, model.ErrEmptyCart
	}

	var total int64
	for _, line := range lines {
		total += line.Subtotal()
	}

	var table *model.RestaurantTable
	if req.TableID != nil {
		t, err := s.tables.Select(ctx, *req.TableID)
		if err != nil {
			return nil, err
		}
		table = t
	}

	order := &model.Order{
		ID:              uuid.New(),
		CustomerName:    req.Name,
		CustomerPhone:   req.Phone,
		DeliveryAddress: req.Address,
		TotalAmount:     total,
		Status:          model.OrderStatusPending,
		CreatedAt:       time.Now(),
	}
	if table != nil {
		order.TableID = &table.ID
		order.TableNumber = &table.TableNumber
	}

	if err := s.orderRepo.CreateOrder(ctx, order); err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("order header write failed")
		return nil, model.ErrOrderWriteFailed
	}

	items := make([]model.OrderItem, len(lines))
	for i, line := range lines {
		items[i] = model.OrderItem{
			ID:        uuid.New(),
			OrderID:   order.ID,
			ProductID: line.Product.ID,
			Quantity:  line.Quantity,
			UnitPrice: line.Product.Price,
		}
	}

	if err := s.orderRepo.CreateOrderItems(ctx, items); err != nil {
		// The header row stays behind with no items. Known consistency gap.
		s.logger.Error().
			Err(err).
			Str("order_id", order.ID.String()).
			Int("item_count", len(items)).
			Msg("order items write failed, header left without items")
		return nil, model.ErrOrderWriteFailed
	}

	c.Clear()

	message := whatsapp.BuildMessage(order, lines, table)
	redirectURL := whatsapp.RedirectURL(s.whatsappNumber, message)

	s.logger.Info().
		Str("order_id", order.ID.String()).
		Int("item_count", len(items)).
		Int64("total_amount", total).
		Msg("order submitted")

	return &model.CheckoutResponse{
		OrderID:     order.ID,
		RedirectURL: redirectURL,
	}, nil
}

// begin marks the session as submitting. Returns false when a submission is
// already in flight for it.
func (s *checkoutService) begin(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inflight[sessionID]; busy {
		return false
	}
	s.inflight[sessionID] = struct{}{}
	return true
}

func (s *checkoutService) end(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inflight, sessionID)
}
