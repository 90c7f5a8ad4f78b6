package category

import "time"

type Response struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
}

type ListResponse struct {
	Items []Response `json:"items"`
	Total int64      `json:"total"`
}

func ToResponse(c *Category) Response {
	return Response{
		ID:          c.ID.String(),
		Name:        c.Name,
		Description: c.Description,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
	}
}

func ToListResponse(list []*Category, total int64) ListResponse {
	items := make([]Response, 0, len(list))
	for _, c := range list {
		items = append(items, ToResponse(c))
	}
	return ListResponse{Items: items, Total: total}
}
