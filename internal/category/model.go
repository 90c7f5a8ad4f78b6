package category

import (
	"time"

	"github.com/google/uuid"
)

// Category groups vendor offerings (hair, nails, spa, ...).
type Category struct {
	ID          uuid.UUID
	Name        string
	Description string
	IsActive    bool
	CreatedAt   time.Time
}

type ListFilter struct {
	Search     string
	ActiveOnly bool
	Limit      int
	Page       int
}

type CreateCategoryInput struct {
	Name        string
	Description string
}

type UpdateCategoryInput struct {
	Name        *string
	Description *string
	IsActive    *bool
}
