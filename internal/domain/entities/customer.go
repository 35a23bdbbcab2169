package entities

import "time"

// Customer owns its orders, newest first.
type Customer struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Company   string    `json:"company,omitempty"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Document  string    `json:"document,omitempty"`
	Address   string    `json:"address,omitempty"`
	Orders    []Order   `json:"orders"`
	CreatedAt time.Time `json:"created_at"`
}
