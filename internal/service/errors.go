package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrUnauthenticated covers both an unknown username and a wrong
	// password, so a login failure never reveals whether the account exists.
	ErrUnauthenticated = errors.New("invalid username or password")
)
