package payout

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"glowdesk-be/internal/db"
	"glowdesk-be/internal/logger"
	"glowdesk-be/internal/utils"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	// Settle locks the vendor's completed, unsettled bookings, fills in the
	// payout's amounts and attaches the bookings to it in one transaction.
	// It returns ErrNothingToSettle when no booking qualifies.
	Settle(ctx context.Context, p *Payout) error
	GetByID(ctx context.Context, id uuid.UUID) (*Payout, error)
	List(ctx context.Context, filter ListFilter) ([]*Payout, error)
	MarkPaid(ctx context.Context, id uuid.UUID, externalRef string) (*Payout, error)

	// MarkFailed also detaches the payout's bookings so a later payout can
	// settle them again.
	MarkFailed(ctx context.Context, id uuid.UUID, reason string) (*Payout, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const payoutColumns = `id, reference, vendor_id, gross_minor, commission_minor, net_minor,
	commission_bps, booking_count, status, external_ref, failure_reason,
	created_at, processed_at`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPayout(row rowScanner) (*Payout, error) {
	var (
		p           Payout
		status      string
		processedAt sql.NullTime
	)
	err := row.Scan(
		&p.ID, &p.Reference, &p.VendorID, &p.GrossMinor, &p.CommissionMinor, &p.NetMinor,
		&p.CommissionBps, &p.BookingCount, &status, &p.ExternalRef, &p.FailureReason,
		&p.CreatedAt, &processedAt,
	)
	if err != nil {
		return nil, err
	}
	p.Status = Status(status)
	if processedAt.Valid {
		p.ProcessedAt = &processedAt.Time
	}
	return &p, nil
}

func (r *repository) Settle(ctx context.Context, p *Payout) error {
	log := logger.FromCtx(ctx).With(
		zap.String("repo", "Payout"),
		zap.String("method", "Settle"),
		zap.String("vendor_id", p.VendorID.String()),
	)

	return db.RunInTx(ctx, r.db, func(tx *sql.Tx) error {
		rows, err := tx.QueryContext(ctx, `
			SELECT id, amount_minor
			FROM bookings
			WHERE vendor_id = $1 AND status = 'completed' AND payout_id IS NULL
			ORDER BY completed_at ASC
			FOR UPDATE
		`, p.VendorID)
		if err != nil {
			log.Error("failed to lock bookings", zap.Error(err))
			return err
		}

		var (
			ids   []string
			gross int64
		)
		for rows.Next() {
			var id uuid.UUID
			var amount int64
			if err := rows.Scan(&id, &amount); err != nil {
				rows.Close()
				return err
			}
			ids = append(ids, id.String())
			gross += amount
		}
		if err := rows.Err(); err != nil {
			rows.Close()
			return err
		}
		rows.Close()

		if len(ids) == 0 {
			return ErrNothingToSettle
		}

		p.GrossMinor = gross
		p.CommissionMinor, p.NetMinor = CalculateCommission(gross, p.CommissionBps)
		p.BookingCount = len(ids)
		p.Status = StatusPending

		err = tx.QueryRowContext(ctx, `
			INSERT INTO payouts (
				id, reference, vendor_id, gross_minor, commission_minor, net_minor,
				commission_bps, booking_count, status
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING created_at
		`,
			p.ID, p.Reference, p.VendorID, p.GrossMinor, p.CommissionMinor, p.NetMinor,
			p.CommissionBps, p.BookingCount, string(p.Status),
		).Scan(&p.CreatedAt)
		if err != nil {
			log.Error("failed to insert payout", zap.Error(err))
			return err
		}

		if _, err := tx.ExecContext(ctx,
			`UPDATE bookings SET payout_id = $1, updated_at = NOW() WHERE id = ANY($2::uuid[])`,
			p.ID, pq.Array(ids),
		); err != nil {
			log.Error("failed to attach bookings", zap.Error(err))
			return err
		}

		log.Info("payout settled",
			zap.String("payout_id", p.ID.String()),
			zap.Int("booking_count", p.BookingCount),
			zap.Int64("gross_minor", p.GrossMinor),
		)
		return nil
	})
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Payout, error) {
	p, err := scanPayout(r.db.QueryRowContext(ctx,
		`SELECT `+payoutColumns+` FROM payouts WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPayoutNotFound
	}
	return p, err
}

func (r *repository) List(ctx context.Context, filter ListFilter) ([]*Payout, error) {
	limit, offset := utils.Paginate(filter.Limit, filter.Page)

	query := `SELECT ` + payoutColumns + ` FROM payouts`
	where := []string{}
	args := []interface{}{}

	if filter.Status != "" {
		where = append(where, fmt.Sprintf("status = $%d", len(args)+1))
		args = append(args, string(filter.Status))
	}
	if filter.VendorID != nil {
		where = append(where, fmt.Sprintf("vendor_id = $%d", len(args)+1))
		args = append(args, *filter.VendorID)
	}

	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY created_at DESC"
	query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromCtx(ctx).Error("payout list query failed", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	out := []*Payout{}
	for rows.Next() {
		p, err := scanPayout(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *repository) MarkPaid(ctx context.Context, id uuid.UUID, externalRef string) (*Payout, error) {
	p, err := scanPayout(r.db.QueryRowContext(ctx, `
		UPDATE payouts
		SET status = 'paid', external_ref = $2, processed_at = NOW()
		WHERE id = $1 AND status = 'pending'
		RETURNING `+payoutColumns,
		id, externalRef,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrInvalidTransition
	}
	return p, err
}

func (r *repository) MarkFailed(ctx context.Context, id uuid.UUID, reason string) (*Payout, error) {
	var out *Payout
	err := db.RunInTx(ctx, r.db, func(tx *sql.Tx) error {
		p, err := scanPayout(tx.QueryRowContext(ctx, `
			UPDATE payouts
			SET status = 'failed', failure_reason = $2, processed_at = NOW()
			WHERE id = $1 AND status = 'pending'
			RETURNING `+payoutColumns,
			id, reason,
		))
		if errors.Is(err, sql.ErrNoRows) {
			return ErrInvalidTransition
		}
		if err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx,
			`UPDATE bookings SET payout_id = NULL, updated_at = NOW() WHERE payout_id = $1`,
			id,
		); err != nil {
			return err
		}

		out = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
