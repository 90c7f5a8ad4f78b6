package address

import (
	"time"

	"glowdesk-be/internal/validation"
)

// GeoJSON is the wire form of a GeoPoint: {"type":"Point","coordinates":[lng,lat]}.
type GeoJSON struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

type Response struct {
	ID           string    `json:"id"`
	User         uint      `json:"user"`
	Label        string    `json:"label"`
	AddressLine1 string    `json:"addressLine1"`
	AddressLine2 string    `json:"addressLine2"`
	City         string    `json:"city"`
	State        string    `json:"state"`
	Pincode      string    `json:"pincode"`
	IsDefault    bool      `json:"isDefault"`
	Geo          *GeoJSON  `json:"geo,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func ToResponse(a *Address) Response {
	res := Response{
		ID:           a.ID.String(),
		User:         a.UserID,
		Label:        a.Label,
		AddressLine1: a.AddressLine1,
		AddressLine2: a.AddressLine2,
		City:         a.City,
		State:        a.State,
		Pincode:      a.Pincode,
		IsDefault:    a.IsDefault,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
	if a.Geo != nil {
		res.Geo = &GeoJSON{Type: "Point", Coordinates: []float64{a.Geo.Lng, a.Geo.Lat}}
	}
	return res
}

func ToResponses(list []*Address) []Response {
	out := make([]Response, 0, len(list))
	for _, a := range list {
		out = append(out, ToResponse(a))
	}
	return out
}

// ToGeoPoint converts the wire form; nil stays nil. Only a Point with a
// [lng, lat] pair is accepted.
func (g *GeoJSON) ToGeoPoint() (*GeoPoint, error) {
	if g == nil {
		return nil, nil
	}

	var v validation.Errors
	if g.Type != "Point" {
		v.Add("geo", `geo type must be "Point"`)
	}
	if len(g.Coordinates) != 2 {
		v.Add("geo", "geo coordinates must be [longitude, latitude]")
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	return &GeoPoint{Lng: g.Coordinates[0], Lat: g.Coordinates[1]}, nil
}
