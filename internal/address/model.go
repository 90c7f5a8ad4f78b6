package address

import (
	"time"

	"github.com/google/uuid"
)

// GeoPoint is a WGS84 position.
type GeoPoint struct {
	Lng float64
	Lat float64
}

type Address struct {
	ID     uuid.UUID
	UserID uint

	Label        string
	AddressLine1 string
	AddressLine2 string

	City    string
	State   string
	Pincode string

	IsDefault bool
	Geo       *GeoPoint

	CreatedAt time.Time
	UpdatedAt time.Time
}

type CreateAddressInput struct {
	Label        string
	AddressLine1 string
	AddressLine2 string
	City         string
	State        string
	Pincode      string
	IsDefault    *bool
	Geo          *GeoPoint
}

// UpdateAddressInput carries a partial update; nil fields are left as is.
type UpdateAddressInput struct {
	Label        *string
	AddressLine1 *string
	AddressLine2 *string
	City         *string
	State        *string
	Pincode      *string
	IsDefault    *bool
	Geo          *GeoPoint
	// ClearGeo drops the stored point; Geo is ignored when set.
	ClearGeo bool
}
