package cart

// Summary is a point-in-time view of a cart with its derived totals.
type Summary struct {
	Lines       []Line `json:"lines"`
	TotalAmount int64  `json:"totalAmount"`
	ItemCount   int    `json:"itemCount"`
}

// Summarize snapshots the cart.
func Summarize(c *Cart) Summary {
	return Summary{
		Lines:       c.Lines(),
		TotalAmount: c.TotalAmount(),
		ItemCount:   c.ItemCount(),
	}
}
