package models

// Product is one catalog entry. Records are owned by the JSON catalog
// store and are read-only from the API's point of view; Price is a
// whole-rupee amount, no minor units.
type Product struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Price       int    `json:"price"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Stock       int    `json:"stock"`
}
