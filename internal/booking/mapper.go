package booking

import "time"

type Response struct {
	ID          string     `json:"id"`
	Reference   string     `json:"reference"`
	Customer    uint       `json:"customer"`
	VendorID    string     `json:"vendorId"`
	OfferingID  string     `json:"offeringId"`
	AddressID   *string    `json:"addressId,omitempty"`
	ScheduledAt time.Time  `json:"scheduledAt"`
	Status      string     `json:"status"`
	AmountMinor int64      `json:"amountMinor"`
	Notes       string     `json:"notes,omitempty"`
	PayoutID    *string    `json:"payoutId,omitempty"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func ToResponse(b *Booking) Response {
	res := Response{
		ID:          b.ID.String(),
		Reference:   b.Reference,
		Customer:    b.CustomerID,
		VendorID:    b.VendorID.String(),
		OfferingID:  b.OfferingID.String(),
		ScheduledAt: b.ScheduledAt,
		Status:      string(b.Status),
		AmountMinor: b.AmountMinor,
		Notes:       b.Notes,
		CompletedAt: b.CompletedAt,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
	if b.AddressID != nil {
		s := b.AddressID.String()
		res.AddressID = &s
	}
	if b.PayoutID != nil {
		s := b.PayoutID.String()
		res.PayoutID = &s
	}
	return res
}

func ToResponses(list []*Booking) []Response {
	out := make([]Response, 0, len(list))
	for _, b := range list {
		out = append(out, ToResponse(b))
	}
	return out
}
