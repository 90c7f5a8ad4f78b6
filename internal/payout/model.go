package payout

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
	StatusFailed  Status = "failed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusPaid, StatusFailed:
		return true
	}
	return false
}

type Payout struct {
	ID              uuid.UUID
	Reference       string
	VendorID        uuid.UUID
	GrossMinor      int64
	CommissionMinor int64
	NetMinor        int64
	CommissionBps   int
	BookingCount    int
	Status          Status
	ExternalRef     string
	FailureReason   string
	CreatedAt       time.Time
	ProcessedAt     *time.Time
}

type ListFilter struct {
	Status   Status
	VendorID *uuid.UUID
	Limit    int
	Page     int
}
