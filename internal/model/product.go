package model

import "time"

// Product represents an item on the restaurant menu.
// Prices are integer FCFA; the currency has no minor unit.
type Product struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Category  string    `json:"category" db:"category"`
	Price     int64     `json:"price" db:"price"`
	ImageURL  string    `json:"imageUrl" db:"image_url"`
	Available bool      `json:"available" db:"available"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
