package review

import (
	"time"

	"github.com/google/uuid"
)

type Review struct {
	ID         uuid.UUID
	BookingID  uuid.UUID
	VendorID   uuid.UUID
	CustomerID uint
	Rating     int
	Comment    string
	CreatedAt  time.Time
}

type Summary struct {
	Count   int64
	Average float64
}

type CreateInput struct {
	BookingID uuid.UUID
	Rating    int
	Comment   string
}
