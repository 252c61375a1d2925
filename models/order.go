package models

import "time"

// GeoPoint is the static delivery coordinate stub attached to listed orders.
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Order is an immutable snapshot of a checked-out cart.
type Order struct {
	OrderID           string     `json:"order_id"`
	UserEmail         string     `json:"user_email,omitempty"`
	UserName          string     `json:"user_name"`
	Items             []CartItem `json:"items"`
	Total             int64      `json:"total"`
	Status            string     `json:"status"`
	OrderDate         time.Time  `json:"order_date"`
	EstimatedDelivery time.Time  `json:"estimated_delivery"`
	Location          *GeoPoint  `json:"location,omitempty"`
}
