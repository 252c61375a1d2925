package models

import "time"

// User is a persisted account. The password hash never leaves the account
// service.
type User struct {
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	FullName  string    `json:"full_name"`
	CreatedAt time.Time `json:"created_at"`
}
