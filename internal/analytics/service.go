package analytics

import (
	"context"
	"time"
)

const (
	defaultTopVendors = 10
	maxTopVendors     = 50
)

type Service interface {
	Dashboard(ctx context.Context) (*Dashboard, error)
	Revenue(ctx context.Context, period Period) ([]RevenuePoint, error)
	TopVendors(ctx context.Context, limit int) ([]TopVendor, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

func (s *service) Dashboard(ctx context.Context) (*Dashboard, error) {
	return s.repo.Dashboard(ctx)
}

// Revenue returns completed-booking revenue bucketed by period over a
// window sized to the period.
func (s *service) Revenue(ctx context.Context, period Period) ([]RevenuePoint, error) {
	if period == "" {
		period = PeriodMonthly
	}

	now := s.now()
	var trunc string
	var since time.Time

	switch period {
	case PeriodDaily:
		trunc, since = "day", now.AddDate(0, 0, -30)
	case PeriodWeekly:
		trunc, since = "week", now.AddDate(0, 0, -12*7)
	case PeriodMonthly:
		trunc, since = "month", now.AddDate(0, -12, 0)
	case PeriodYearly:
		trunc, since = "year", now.AddDate(-5, 0, 0)
	default:
		return nil, ErrInvalidPeriod
	}

	return s.repo.Revenue(ctx, trunc, since)
}

func (s *service) TopVendors(ctx context.Context, limit int) ([]TopVendor, error) {
	if limit <= 0 {
		limit = defaultTopVendors
	}
	if limit > maxTopVendors {
		limit = maxTopVendors
	}
	return s.repo.TopVendors(ctx, limit)
}
