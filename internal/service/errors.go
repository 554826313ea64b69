package service

import "errors"

// Sentinel errors mapped to HTTP statuses by the handlers. Guards and
// services return these before any store mutation happens, so a
// rejected request never leaves partial side effects.
var (
	ErrNotFound     = errors.New("resource not found")
	ErrForbidden    = errors.New("forbidden access")
	ErrInvalidID    = errors.New("invalid id")
	ErrInvalidPrice = errors.New("price must be a positive number")
	ErrUpstream     = errors.New("upstream failure")
)
