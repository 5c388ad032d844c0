package entities

import "errors"

var (
	// ErrNotFound is returned when a referenced record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidState is returned when a precondition on a record's status
	// fails, e.g. deploying a chaincode that is not approved.
	ErrInvalidState = errors.New("invalid state")
)
