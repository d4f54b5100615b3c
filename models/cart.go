package models

import "time"

// LineItem is one purchasable configuration in a cart. Two additions are the
// same line item iff Name, Size and Color all match; ID exists only so a
// specific row can be targeted for removal.
type LineItem struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Image    string  `json:"img"`
	Size     string  `json:"size"`
	Color    string  `json:"color"`
	Quantity int     `json:"quantity"`
}

// OrderCreatedEvent is published after a successful checkout.
type OrderCreatedEvent struct {
	Event     string     `json:"event"`
	OrderID   string     `json:"order_id"`
	SessionID string     `json:"session_id"`
	Items     []LineItem `json:"items"`
	Total     float64    `json:"total"`
	Timestamp time.Time  `json:"timestamp"`
}
