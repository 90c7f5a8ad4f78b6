package notification

import "time"

type Response struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}

func ToResponse(n *Notification) Response {
	return Response{
		ID:        n.ID.String(),
		Kind:      string(n.Kind),
		Title:     n.Title,
		Body:      n.Body,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
}

func ToResponses(list []*Notification) []Response {
	out := make([]Response, 0, len(list))
	for _, n := range list {
		out = append(out, ToResponse(n))
	}
	return out
}
