package cart

import "sync"

// Store holds the carts of all active sessions. It is the injectable cart
// dependency: services receive a Store so tests can swap in a fresh one.
type Store struct {
	mu    sync.RWMutex
	carts map[string]*Cart
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		carts: make(map[string]*Cart),
	}
}

// Get returns the cart for the session, creating an empty one on first use.
func (s *Store) Get(sessionID string) *Cart {
	s.mu.RLock()
	c, ok := s.carts[sessionID]
	s.mu.RUnlock()
	if ok {
		return c
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.carts[sessionID]; ok {
		return c
	}
	c = New()
	s.carts[sessionID] = c
	return c
}

// Len returns the number of sessions with a cart.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.carts)
}
