package cart

import (
	"sync"

	"grill-master/internal/model"
)

// Line is one product-and-quantity pair pending order.
type Line struct {
	Product  model.Product `json:"product"`
	Quantity int           `json:"quantity"`
}

// Subtotal returns unit price times quantity for this line.
func (l Line) Subtotal() int64 {
	return l.Product.Price * int64(l.Quantity)
}

// Cart is the single source of truth for one session's pending selection.
// Lines are keyed by product ID; insertion order affects display order only.
// A line never holds a quantity below 1 — dropping to zero removes it.
type Cart struct {
	mu    sync.Mutex
	order []string        // product IDs in insertion order
	lines map[string]Line // keyed by product ID
}

// New creates an empty cart.
func New() *Cart {
	return &Cart{
		lines: make(map[string]Line),
	}
}

// Add puts one unit of the product in the cart. If the product is already
// present its quantity is incremented; otherwise a new line with quantity 1
// is appended. Add always succeeds.
func (c *Cart) Add(product model.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if line, ok := c.lines[product.ID]; ok {
		line.Quantity++
		c.lines[product.ID] = line
		return
	}

	c.order = append(c.order, product.ID)
	c.lines[product.ID] = Line{Product: product, Quantity: 1}
}

// UpdateQuantity sets the line's quantity. A quantity of zero or less removes
// the line entirely. Updating an absent product is a silent no-op. The store
// enforces no upper bound; any cap is a presentation concern.
func (c *Cart) UpdateQuantity(productID string, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	line, ok := c.lines[productID]
	if !ok {
		return
	}

	if quantity <= 0 {
		c.removeLocked(productID)
		return
	}

	line.Quantity = quantity
	c.lines[productID] = line
}

// Remove removes the line unconditionally. Absent IDs are a silent no-op.
func (c *Cart) Remove(productID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.removeLocked(productID)
}

func (c *Cart) removeLocked(productID string) {
	if _, ok := c.lines[productID]; !ok {
		return
	}

	delete(c.lines, productID)
	for i, id := range c.order {
		if id == productID {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

// TotalAmount returns the sum of unit price times quantity over all lines,
// recomputed from current state on every call.
func (c *Cart) TotalAmount() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	var total int64
	for _, line := range c.lines {
		total += line.Subtotal()
	}
	return total
}

// ItemCount returns the sum of quantities over all lines.
func (c *Cart) ItemCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	count := 0
	for _, line := range c.lines {
		count += line.Quantity
	}
	return count
}

// Lines returns a snapshot of the cart lines in insertion order.
func (c *Cart) Lines() []Line {
	c.mu.Lock()
	defer c.mu.Unlock()

	lines := make([]Line, 0, len(c.order))
	for _, id := range c.order {
		lines = append(lines, c.lines[id])
	}
	return lines
}

// IsEmpty reports whether the cart holds no lines.
func (c *Cart) IsEmpty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.lines) == 0
}

// Clear empties the cart. Used after a successful order submission.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.order = nil
	c.lines = make(map[string]Line)
}
