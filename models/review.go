package models

import "time"

// Review is a persisted customer review. Reviews are auto-approved.
type Review struct {
	UserEmail     string    `json:"user_email,omitempty"`
	UserName      string    `json:"user_name"`
	UserAvatar    string    `json:"user_avatar"`
	CustomerTitle string    `json:"customer_title,omitempty"`
	Rating        int       `json:"rating"`
	Title         string    `json:"title,omitempty"`
	Text          string    `json:"text"`
	Date          time.Time `json:"date"`
	Approved      bool      `json:"approved"`
}

// ContactMessage is a persisted contact form submission. Sender fields come
// from the form, the user fields from the submitter's session.
type ContactMessage struct {
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	UserEmail string    `json:"user_email"`
	UserName  string    `json:"user_name"`
	Date      time.Time `json:"date"`
	Status    string    `json:"status"`
}
