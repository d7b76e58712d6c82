package domain

// CartItem is a pending order line owned by Email. Items are removed one at a
// time by their owner or in bulk when a payment referencing them is recorded.
type CartItem struct {
	ID         string  `json:"id"`
	MenuItemID string  `json:"menu_item_id"`
	Name       string  `json:"name"`
	Image      string  `json:"image,omitempty"`
	Price      float64 `json:"price"`
	Email      string  `json:"email"`
}
