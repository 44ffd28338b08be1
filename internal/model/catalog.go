package model

// CategoryGroup is one named catalog bucket with its display metadata.
type CategoryGroup struct {
	Category string    `json:"category"`
	Icon     string    `json:"icon"`
	Color    string    `json:"color"`
	Products []Product `json:"products"`
}
