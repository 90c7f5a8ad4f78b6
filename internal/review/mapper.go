package review

import (
	"math"
	"time"
)

type Response struct {
	ID        string    `json:"id"`
	BookingID string    `json:"bookingId"`
	VendorID  string    `json:"vendorId"`
	Customer  uint      `json:"customer"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

type SummaryResponse struct {
	Count   int64   `json:"count"`
	Average float64 `json:"average"`
}

type ListResponse struct {
	Items   []Response      `json:"items"`
	Summary SummaryResponse `json:"summary"`
}

func ToResponse(r *Review) Response {
	return Response{
		ID:        r.ID.String(),
		BookingID: r.BookingID.String(),
		VendorID:  r.VendorID.String(),
		Customer:  r.CustomerID,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
	}
}

// ToListResponse rounds the average to one decimal place.
func ToListResponse(list []*Review, s Summary) ListResponse {
	items := make([]Response, 0, len(list))
	for _, r := range list {
		items = append(items, ToResponse(r))
	}
	return ListResponse{
		Items: items,
		Summary: SummaryResponse{
			Count:   s.Count,
			Average: math.Round(s.Average*10) / 10,
		},
	}
}
