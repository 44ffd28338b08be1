package cart

import (
	"fmt"
	"sync"
	"testing"

	"grill-master/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProduct(id string, price int64) model.Product {
	return model.Product{
		ID:        id,
		Name:      "Product " + id,
		Category:  "Grillades",
		Price:     price,
		Available: true,
	}
}

func TestCart_Add(t *testing.T) {
	c := New()

	c.Add(testProduct("P001", 1000))
	c.Add(testProduct("P002", 500))

	lines := c.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "P001", lines[0].Product.ID)
	assert.Equal(t, 1, lines[0].Quantity)
	assert.Equal(t, "P002", lines[1].Product.ID)
}

func TestCart_Add_SameProductTwice(t *testing.T) {
	c := New()

	// Adding the same product twice yields one line with quantity 2
	c.Add(testProduct("P001", 1000))
	c.Add(testProduct("P001", 1000))

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, int64(2000), c.TotalAmount())
}

func TestCart_UpdateQuantity(t *testing.T) {
	tests := []struct {
		name          string
		quantity      int
		expectLines   int
		expectedQty   int
		expectedTotal int64
	}{
		{name: "Set quantity", quantity: 5, expectLines: 1, expectedQty: 5, expectedTotal: 5000},
		{name: "Zero removes line", quantity: 0, expectLines: 0, expectedTotal: 0},
		{name: "Negative removes line", quantity: -3, expectLines: 0, expectedTotal: 0},
		{name: "No upper bound", quantity: 250, expectLines: 1, expectedQty: 250, expectedTotal: 250000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			c.Add(testProduct("P001", 1000))

			c.UpdateQuantity("P001", tt.quantity)

			lines := c.Lines()
			assert.Len(t, lines, tt.expectLines)
			if tt.expectLines > 0 {
				assert.Equal(t, tt.expectedQty, lines[0].Quantity)
			}
			assert.Equal(t, tt.expectedTotal, c.TotalAmount())
		})
	}
}

func TestCart_UpdateQuantity_AbsentProduct(t *testing.T) {
	c := New()
	c.Add(testProduct("P001", 1000))

	c.UpdateQuantity("P999", 5)

	require.Len(t, c.Lines(), 1)
	assert.Equal(t, 1, c.Lines()[0].Quantity)
}

func TestCart_Remove(t *testing.T) {
	c := New()
	c.Add(testProduct("P001", 1000))
	c.Add(testProduct("P002", 500))

	c.Remove("P001")

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "P002", lines[0].Product.ID)

	// Absent IDs are a silent no-op
	c.Remove("P999")
	assert.Len(t, c.Lines(), 1)
}

func TestCart_TotalAmountAndItemCount(t *testing.T) {
	c := New()

	// cart = [{price:1000, qty:2}, {price:500, qty:1}] -> total 2500, count 3
	c.Add(testProduct("P001", 1000))
	c.Add(testProduct("P001", 1000))
	c.Add(testProduct("P002", 500))

	assert.Equal(t, int64(2500), c.TotalAmount())
	assert.Equal(t, 3, c.ItemCount())
}

func TestCart_TotalAmount_RecomputedEachCall(t *testing.T) {
	c := New()
	c.Add(testProduct("P001", 1000))

	assert.Equal(t, int64(1000), c.TotalAmount())

	c.UpdateQuantity("P001", 4)
	assert.Equal(t, int64(4000), c.TotalAmount())

	c.Remove("P001")
	assert.Equal(t, int64(0), c.TotalAmount())
}

func TestCart_Clear(t *testing.T) {
	c := New()
	c.Add(testProduct("P001", 1000))
	c.Add(testProduct("P002", 500))

	c.Clear()

	assert.Equal(t, int64(0), c.TotalAmount())
	assert.Empty(t, c.Lines())
	assert.True(t, c.IsEmpty())

	// The cart remains usable after clearing
	c.Add(testProduct("P003", 700))
	assert.Equal(t, int64(700), c.TotalAmount())
}

func TestCart_NoLineEverBelowOne(t *testing.T) {
	// Arbitrary operation sequences never leave a line with quantity < 1.
	c := New()

	ops := []func(){
		func() { c.Add(testProduct("P001", 100)) },
		func() { c.Add(testProduct("P002", 200)) },
		func() { c.UpdateQuantity("P001", 0) },
		func() { c.UpdateQuantity("P002", -7) },
		func() { c.Add(testProduct("P001", 100)) },
		func() { c.UpdateQuantity("P001", 3) },
		func() { c.Remove("P002") },
		func() { c.Add(testProduct("P003", 300)) },
		func() { c.UpdateQuantity("P003", -1) },
	}

	for i, op := range ops {
		op()
		for _, line := range c.Lines() {
			assert.GreaterOrEqual(t, line.Quantity, 1, "after op %d", i)
		}
	}
}

func TestCart_InsertionOrderPreserved(t *testing.T) {
	c := New()
	for i := 1; i <= 5; i++ {
		c.Add(testProduct(fmt.Sprintf("P%03d", i), int64(i*100)))
	}

	c.Remove("P003")
	c.Add(testProduct("P003", 300))

	var got []string
	for _, line := range c.Lines() {
		got = append(got, line.Product.ID)
	}
	assert.Equal(t, []string{"P001", "P002", "P004", "P005", "P003"}, got)
}

func TestStore_SessionIsolation(t *testing.T) {
	store := NewStore()

	store.Get("session-a").Add(testProduct("P001", 1000))
	store.Get("session-b").Add(testProduct("P002", 500))

	assert.Equal(t, int64(1000), store.Get("session-a").TotalAmount())
	assert.Equal(t, int64(500), store.Get("session-b").TotalAmount())
	assert.Equal(t, 2, store.Len())
}

func TestStore_GetReturnsSameCart(t *testing.T) {
	store := NewStore()

	c1 := store.Get("session-a")
	c1.Add(testProduct("P001", 1000))
	c2 := store.Get("session-a")

	assert.Same(t, c1, c2)
	assert.Equal(t, 1, c2.ItemCount())
}

func TestStore_ConcurrentAccess(t *testing.T) {
	store := NewStore()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sessionID := fmt.Sprintf("session-%d", i%4)
			c := store.Get(sessionID)
			c.Add(testProduct("P001", 100))
			c.TotalAmount()
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 4, store.Len())
	var total int
	for i := 0; i < 4; i++ {
		total += store.Get(fmt.Sprintf("session-%d", i)).ItemCount()
	}
	assert.Equal(t, 20, total)
}
