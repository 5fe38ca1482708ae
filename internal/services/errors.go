package services

import "errors"

var (
	// ErrEmailTaken is returned by signup when the email is already registered.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials is returned on any login failure. It deliberately
	// does not distinguish unknown email from wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrInvalidStatus is returned when a status transition targets an unknown
	// order status.
	ErrInvalidStatus = errors.New("invalid order status")
	// ErrNoChanges is returned when a partial update carries no fields.
	ErrNoChanges = errors.New("no changes made")
)
