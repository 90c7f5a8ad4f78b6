package address

import (
	"strings"

	"glowdesk-be/internal/validation"
)

const defaultLabel = "Home"

func normalize(a *Address) {
	a.Label = strings.TrimSpace(a.Label)
	if a.Label == "" {
		a.Label = defaultLabel
	}
	a.AddressLine1 = strings.TrimSpace(a.AddressLine1)
	a.AddressLine2 = strings.TrimSpace(a.AddressLine2)
	a.City = strings.TrimSpace(a.City)
	a.State = strings.TrimSpace(a.State)
	a.Pincode = strings.TrimSpace(a.Pincode)
}

func validate(a *Address) error {
	var v validation.Errors

	v.MaxLen("label", a.Label, 50)
	v.Required("addressLine1", a.AddressLine1, 150)
	v.MaxLen("addressLine2", a.AddressLine2, 150)
	v.Required("city", a.City, 100)
	v.Required("state", a.State, 100)

	if !validation.IsPincode(a.Pincode) {
		v.Add("pincode", "pincode must be a valid 6-digit PIN")
	}

	if g := a.Geo; g != nil {
		if g.Lng < -180 || g.Lng > 180 {
			v.Add("geo", "longitude must be between -180 and 180")
		}
		if g.Lat < -90 || g.Lat > 90 {
			v.Add("geo", "latitude must be between -90 and 90")
		}
	}

	return v.Err()
}
