package notification

import (
	"time"

	"github.com/google/uuid"
)

type Kind string

const (
	KindBookingCreated Kind = "booking_created"
	KindBookingStatus  Kind = "booking_status"
	KindVendorStatus   Kind = "vendor_status"
	KindPayoutStatus   Kind = "payout_status"
)

type Notification struct {
	ID        uuid.UUID
	UserID    uint
	Kind      Kind
	Title     string
	Body      string
	IsRead    bool
	CreatedAt time.Time
}
