package notification

import "errors"

var (
	ErrUnauthenticated      = errors.New("unauthenticated")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrNotAuthorized        = errors.New("not authorized")
)
