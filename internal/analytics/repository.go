package analytics

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"glowdesk-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	Dashboard(ctx context.Context) (*Dashboard, error)
	Revenue(ctx context.Context, trunc string, since time.Time) ([]RevenuePoint, error)
	TopVendors(ctx context.Context, limit int) ([]TopVendor, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Dashboard(ctx context.Context) (*Dashboard, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("repo", "Analytics"),
		zap.String("method", "Dashboard"),
	)

	d := &Dashboard{}

	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM users`,
	).Scan(&d.TotalUsers); err != nil {
		log.Error("failed to count users", zap.Error(err))
		return nil, err
	}

	var err error
	if d.VendorsByStatus, err = r.countByStatus(ctx, "vendors"); err != nil {
		log.Error("failed to count vendors", zap.Error(err))
		return nil, err
	}
	if d.BookingsByStatus, err = r.countByStatus(ctx, "bookings"); err != nil {
		log.Error("failed to count bookings", zap.Error(err))
		return nil, err
	}

	if err := r.db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(amount_minor), 0)
		FROM bookings
		WHERE status = 'completed'
	`).Scan(&d.GrossRevenueMinor); err != nil {
		log.Error("failed to sum revenue", zap.Error(err))
		return nil, err
	}

	if err := r.db.QueryRowContext(ctx, `
		SELECT
			COALESCE(SUM(commission_minor), 0),
			COALESCE(SUM(net_minor) FILTER (WHERE status = 'pending'), 0)
		FROM payouts
		WHERE status <> 'failed'
	`).Scan(&d.CommissionEarnedMinor, &d.PendingPayoutMinor); err != nil {
		log.Error("failed to sum payouts", zap.Error(err))
		return nil, err
	}

	return d, nil
}

// countByStatus only ever receives one of the fixed table names above.
func (r *repository) countByStatus(ctx context.Context, table string) (map[string]int64, error) {
	rows, err := r.db.QueryContext(ctx,
		fmt.Sprintf(`SELECT status, COUNT(*) FROM %s GROUP BY status`, table))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[string]int64{}
	for rows.Next() {
		var status string
		var n int64
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		out[status] = n
	}
	return out, rows.Err()
}

func (r *repository) Revenue(ctx context.Context, trunc string, since time.Time) ([]RevenuePoint, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT DATE_TRUNC($1, completed_at) AS bucket,
			COALESCE(SUM(amount_minor), 0),
			COUNT(*)
		FROM bookings
		WHERE status = 'completed' AND completed_at >= $2
		GROUP BY bucket
		ORDER BY bucket ASC
	`, trunc, since)
	if err != nil {
		logger.FromCtx(ctx).Error("revenue query failed", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	out := []RevenuePoint{}
	for rows.Next() {
		var p RevenuePoint
		if err := rows.Scan(&p.Bucket, &p.GrossMinor, &p.Bookings); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *repository) TopVendors(ctx context.Context, limit int) ([]TopVendor, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT v.id, v.business_name, COALESCE(SUM(b.amount_minor), 0) AS gross, COUNT(b.id)
		FROM vendors v
		JOIN bookings b ON b.vendor_id = v.id AND b.status = 'completed'
		GROUP BY v.id, v.business_name
		ORDER BY gross DESC
		LIMIT $1
	`, limit)
	if err != nil {
		logger.FromCtx(ctx).Error("top vendors query failed", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	out := []TopVendor{}
	for rows.Next() {
		var tv TopVendor
		if err := rows.Scan(&tv.VendorID, &tv.BusinessName, &tv.GrossMinor, &tv.Bookings); err != nil {
			return nil, err
		}
		out = append(out, tv)
	}
	return out, rows.Err()
}
