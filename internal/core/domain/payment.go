package domain

import "time"

// Payment records a completed checkout. CartItemIDs are the cart entries the
// payment consumed; recording a payment deletes them in the same transaction,
// so a payment's existence implies its source cart items are gone.
// MenuItemIDs reference the purchased catalog entries and drive the
// per-category order statistics join.
type Payment struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	Price         float64   `json:"price"`
	TransactionID string    `json:"transaction_id,omitempty"`
	Date          time.Time `json:"date"`
	CartItemIDs   []string  `json:"cart_item_ids"`
	MenuItemIDs   []string  `json:"menu_item_ids"`
	Status        string    `json:"status,omitempty"`
}

// CategoryStat is one row of the order statistics aggregation: the number of
// purchased line items and the revenue attributed to a menu category.
type CategoryStat struct {
	Category   string  `json:"category" bson:"category"`
	Count      int64   `json:"count" bson:"count"`
	TotalPrice float64 `json:"totalPrice" bson:"totalPrice"`
}

// AdminStats is the dashboard summary: collection counts plus total revenue
// summed over all recorded payments.
type AdminStats struct {
	Customers int64   `json:"customers"`
	Products  int64   `json:"products"`
	Orders    int64   `json:"orders"`
	Revenue   float64 `json:"revenue"`
}
