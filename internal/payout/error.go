package payout

import "errors"

var (
	ErrUnauthenticated   = errors.New("unauthenticated")
	ErrPayoutNotFound    = errors.New("payout not found")
	ErrNothingToSettle   = errors.New("no completed bookings awaiting payout")
	ErrInvalidTransition = errors.New("payout is not pending")
)
