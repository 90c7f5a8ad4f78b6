package booking

import "errors"

var (
	ErrUnauthenticated     = errors.New("unauthenticated")
	ErrBookingNotFound     = errors.New("booking not found")
	ErrNotAuthorized       = errors.New("not authorized")
	ErrInvalidTransition   = errors.New("invalid booking status transition")
	ErrOfferingUnavailable = errors.New("offering is not available for booking")
)
