package address

import "errors"

var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrAddressNotFound = errors.New("address not found")
	ErrNotAuthorized   = errors.New("not authorized")
)
