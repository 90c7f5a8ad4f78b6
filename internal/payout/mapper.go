package payout

import "time"

type Response struct {
	ID              string     `json:"id"`
	Reference       string     `json:"reference"`
	VendorID        string     `json:"vendorId"`
	GrossMinor      int64      `json:"grossMinor"`
	CommissionMinor int64      `json:"commissionMinor"`
	NetMinor        int64      `json:"netMinor"`
	CommissionBps   int        `json:"commissionBps"`
	BookingCount    int        `json:"bookingCount"`
	Status          string     `json:"status"`
	ExternalRef     string     `json:"externalRef,omitempty"`
	FailureReason   string     `json:"failureReason,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	ProcessedAt     *time.Time `json:"processedAt,omitempty"`
}

func ToResponse(p *Payout) Response {
	return Response{
		ID:              p.ID.String(),
		Reference:       p.Reference,
		VendorID:        p.VendorID.String(),
		GrossMinor:      p.GrossMinor,
		CommissionMinor: p.CommissionMinor,
		NetMinor:        p.NetMinor,
		CommissionBps:   p.CommissionBps,
		BookingCount:    p.BookingCount,
		Status:          string(p.Status),
		ExternalRef:     p.ExternalRef,
		FailureReason:   p.FailureReason,
		CreatedAt:       p.CreatedAt,
		ProcessedAt:     p.ProcessedAt,
	}
}

func ToResponses(list []*Payout) []Response {
	out := make([]Response, 0, len(list))
	for _, p := range list {
		out = append(out, ToResponse(p))
	}
	return out
}
