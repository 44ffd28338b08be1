package model

import "github.com/google/uuid"

// Zone values for restaurant tables.
const (
	ZoneInterior = "interieur"
	ZoneTerrace  = "terrasse"
	ZoneVIP      = "vip"
)

// RestaurantTable represents one physical table in the dining room.
// Read-only reference data; selecting a table only annotates an order.
type RestaurantTable struct {
	ID          uuid.UUID `json:"id" db:"id"`
	TableNumber int       `json:"tableNumber" db:"table_number"`
	Zone        string    `json:"zone" db:"zone"`
	Capacity    int       `json:"capacity" db:"capacity"`
	PositionX   float64   `json:"positionX" db:"position_x"`
	PositionY   float64   `json:"positionY" db:"position_y"`
	IsAvailable bool      `json:"isAvailable" db:"is_available"`
}

// ZoneLabel returns the display label for a zone, falling back to the raw
// zone string for anything unrecognised.
func ZoneLabel(zone string) string {
	switch zone {
	case ZoneInterior:
		return "Intérieur"
	case ZoneTerrace:
		return "Terrasse"
	case ZoneVIP:
		return "VIP"
	default:
		return zone
	}
}
