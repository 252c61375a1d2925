package services

import "errors"

// ErrorKind classifies a failure for the request boundary. The boundary maps
// kinds to HTTP statuses; everything unclassified is treated as an integrity
// failure.
type ErrorKind int

const (
	KindValidation ErrorKind = iota + 1
	KindNotFound
	KindConflict
	KindAuth
	KindIntegrity
)

// Error is a failure with a customer-facing message. Sentinels below cover
// every expected failure of the storefront operations.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string { return e.Message }

var (
	ErrMissingFields      = &Error{KindValidation, "All fields are required"}
	ErrDuplicateEmail     = &Error{KindConflict, "Email already exists"}
	ErrDuplicatePhone     = &Error{KindConflict, "Phone number already exists"}
	ErrUnknownEmail       = &Error{KindAuth, "Email not found"}
	ErrInvalidCredentials = &Error{KindAuth, "Incorrect password"}
	ErrInvalidPhone       = &Error{KindValidation, "Please enter a valid 10-digit phone number"}
	ErrPhoneTaken         = &Error{KindConflict, "This phone number is already registered by another user"}
	ErrItemNotFound       = &Error{KindNotFound, "Item not found"}
	ErrIngredientNotFound = &Error{KindNotFound, "Ingredient not found"}
	ErrCartItemNotFound   = &Error{KindNotFound, "Item not found in cart"}
	ErrEmptyCart          = &Error{KindValidation, "Cart is empty"}
	ErrIncompleteProfile  = &Error{KindValidation, "User info incomplete"}
	ErrOrderNotFound      = &Error{KindNotFound, "Order not found"}
	ErrInvalidRating      = &Error{KindValidation, "Rating must be between 1 and 5"}
)

// KindOf returns the kind of err, or KindIntegrity for unclassified errors.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindIntegrity
}
