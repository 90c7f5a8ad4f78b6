package analytics

import (
	"time"

	"github.com/google/uuid"
)

type Dashboard struct {
	TotalUsers            int64
	VendorsByStatus       map[string]int64
	BookingsByStatus      map[string]int64
	GrossRevenueMinor     int64
	CommissionEarnedMinor int64
	PendingPayoutMinor    int64
}

// Period is the bucket width of a revenue series.
type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
	PeriodYearly  Period = "yearly"
)

type RevenuePoint struct {
	Bucket     time.Time
	GrossMinor int64
	Bookings   int64
}

type TopVendor struct {
	VendorID     uuid.UUID
	BusinessName string
	GrossMinor   int64
	Bookings     int64
}
