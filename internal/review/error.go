package review

import "errors"

var (
	ErrUnauthenticated     = errors.New("unauthenticated")
	ErrReviewNotFound      = errors.New("review not found")
	ErrReviewExists        = errors.New("booking already reviewed")
	ErrNotAuthorized       = errors.New("not authorized")
	ErrBookingNotCompleted = errors.New("only completed bookings can be reviewed")
)
