package booking

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// allowedFrom lists, per target status, the statuses a booking may leave
// to enter it.
var allowedFrom = map[Status][]Status{
	StatusConfirmed: {StatusPending},
	StatusCompleted: {StatusConfirmed},
	StatusCancelled: {StatusPending, StatusConfirmed},
}

func canTransition(from, to Status) bool {
	for _, s := range allowedFrom[to] {
		if s == from {
			return true
		}
	}
	return false
}

type Booking struct {
	ID          uuid.UUID
	Reference   string
	CustomerID  uint
	VendorID    uuid.UUID
	OfferingID  uuid.UUID
	AddressID   *uuid.UUID
	ScheduledAt time.Time
	Status      Status
	AmountMinor int64
	Notes       string
	PayoutID    *uuid.UUID
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type CreateInput struct {
	OfferingID  uuid.UUID
	ScheduledAt time.Time
	AddressID   *uuid.UUID
	Notes       string
}

type ListFilter struct {
	CustomerID *uint
	VendorID   *uuid.UUID
	Status     Status
	Limit      int
	Page       int
}
