package entities

import "time"

type PriceHistoryItem struct {
	Date  time.Time `json:"date"`
	Price float64   `json:"price"`
}

// Service is a billable labor entry in the catalog.
type Service struct {
	ID             string             `json:"id"`
	Name           string             `json:"name"`
	Category       string             `json:"category"`
	Price          float64            `json:"price"`
	Cost           float64            `json:"cost"`
	Description    string             `json:"description,omitempty"`
	EstimatedHours float64            `json:"estimated_hours"`
	Active         bool               `json:"active"`
	PriceHistory   []PriceHistoryItem `json:"price_history,omitempty"`
}

func (s Service) Margin() float64 {
	return margin(s.Price, s.Cost)
}

// WithPrice returns a copy carrying the new price. The history is append-only:
// when it is empty the previous price is recorded first.
func (s Service) WithPrice(price float64, now time.Time) Service {
	if price == s.Price {
		return s
	}
	history := make([]PriceHistoryItem, 0, len(s.PriceHistory)+2)
	history = append(history, s.PriceHistory...)
	if len(history) == 0 {
		history = append(history, PriceHistoryItem{Date: now, Price: s.Price})
	}
	history = append(history, PriceHistoryItem{Date: now, Price: price})
	s.PriceHistory = history
	s.Price = price
	return s
}
