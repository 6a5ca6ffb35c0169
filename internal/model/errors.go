package model

import "errors"

var (
	// ErrNotFound is returned by stores when the requested entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrEmailTaken is returned on signup when a user with the email already exists.
	ErrEmailTaken = errors.New("user already exists with this email")
	// ErrInvalidCredentials is returned on login for both an unknown email and a
	// wrong password, so callers cannot enumerate registered users.
	ErrInvalidCredentials = errors.New("invalid email or password")
)
