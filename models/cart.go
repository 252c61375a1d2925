package models

// CartItem is one line of a session cart. ItemID references the catalog for
// stock items and is zero for custom rolls.
type CartItem struct {
	ID          string   `json:"id"`
	ItemID      int      `json:"item_id,omitempty"`
	Name        string   `json:"name"`
	Price       int64    `json:"price"`
	Quantity    int      `json:"quantity"`
	Type        string   `json:"type"`
	Image       string   `json:"image,omitempty"`
	Ingredients []string `json:"ingredients,omitempty"`
	Custom      bool     `json:"custom,omitempty"`
}

// Cart is the session-scoped line item list. Total is derived: it always
// equals the sum of Price*Quantity over Items and is recomputed after every
// mutation, never adjusted in place.
type Cart struct {
	Items []CartItem `json:"items"`
	Total int64      `json:"total"`
}
