package entities

import "time"

// Product is a stocked catalog entry.
//
// Stock has a single writer: order fulfillment decrements it. Catalog edits
// never touch it after creation.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Stock       int       `json:"stock"`
	MinStock    int       `json:"min_stock"`
	Cost        float64   `json:"cost"`
	Price       float64   `json:"price"`
	Supplier    string    `json:"supplier"`
	Batch       string    `json:"batch,omitempty"`
	ExpiryDate  string    `json:"expiry_date,omitempty"`
	EntryDate   string    `json:"entry_date,omitempty"`
	Image       string    `json:"image,omitempty"`
	Observation string    `json:"observation,omitempty"`
	LastUpdated time.Time `json:"last_updated"`
}

// IsLowStock reports whether stock reached the alert threshold.
func (p Product) IsLowStock() bool {
	return p.Stock <= p.MinStock
}

// Margin is (price - cost) / price, or 0 for a free product.
func (p Product) Margin() float64 {
	return margin(p.Price, p.Cost)
}

func margin(price, cost float64) float64 {
	if price == 0 {
		return 0
	}
	return (price - cost) / price
}
