package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"glowdesk-be/internal/logger"
	"glowdesk-be/internal/utils"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	Create(ctx context.Context, b *Booking) error
	GetByID(ctx context.Context, id uuid.UUID) (*Booking, error)
	List(ctx context.Context, filter ListFilter) ([]*Booking, error)

	// UpdateStatus applies the transition only while the booking is still
	// in one of from; otherwise it returns ErrInvalidTransition.
	UpdateStatus(ctx context.Context, id uuid.UUID, from []Status, to Status) (*Booking, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const bookingColumns = `id, reference, customer_id, vendor_id, offering_id, address_id,
	scheduled_at, status, amount_minor, notes, payout_id, completed_at,
	created_at, updated_at`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*Booking, error) {
	var (
		b           Booking
		status      string
		addressID   uuid.NullUUID
		payoutID    uuid.NullUUID
		completedAt sql.NullTime
	)
	err := row.Scan(
		&b.ID, &b.Reference, &b.CustomerID, &b.VendorID, &b.OfferingID, &addressID,
		&b.ScheduledAt, &status, &b.AmountMinor, &b.Notes, &payoutID, &completedAt,
		&b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	b.Status = Status(status)
	if addressID.Valid {
		b.AddressID = &addressID.UUID
	}
	if payoutID.Valid {
		b.PayoutID = &payoutID.UUID
	}
	if completedAt.Valid {
		b.CompletedAt = &completedAt.Time
	}
	return &b, nil
}

func nullUUID(id *uuid.UUID) uuid.NullUUID {
	if id == nil {
		return uuid.NullUUID{}
	}
	return uuid.NullUUID{UUID: *id, Valid: true}
}

func (r *repository) Create(ctx context.Context, b *Booking) error {
	log := logger.FromCtx(ctx).With(
		zap.String("repo", "Booking"),
		zap.String("method", "Create"),
		zap.String("reference", b.Reference),
	)

	err := r.db.QueryRowContext(ctx, `
		INSERT INTO bookings (
			id, reference, customer_id, vendor_id, offering_id, address_id,
			scheduled_at, status, amount_minor, notes
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at, updated_at
	`,
		b.ID, b.Reference, b.CustomerID, b.VendorID, b.OfferingID, nullUUID(b.AddressID),
		b.ScheduledAt, string(b.Status), b.AmountMinor, b.Notes,
	).Scan(&b.CreatedAt, &b.UpdatedAt)

	if err != nil {
		log.Error("failed to insert booking", zap.Error(err))
		return err
	}
	return nil
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Booking, error) {
	b, err := scanBooking(r.db.QueryRowContext(ctx,
		`SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	return b, err
}

func (r *repository) List(ctx context.Context, filter ListFilter) ([]*Booking, error) {
	limit, offset := utils.Paginate(filter.Limit, filter.Page)

	log := logger.FromCtx(ctx).With(
		zap.String("repo", "Booking"),
		zap.String("method", "List"),
	)

	query := `SELECT ` + bookingColumns + ` FROM bookings`
	where := []string{}
	args := []interface{}{}

	if filter.CustomerID != nil {
		where = append(where, fmt.Sprintf("customer_id = $%d", len(args)+1))
		args = append(args, *filter.CustomerID)
	}
	if filter.VendorID != nil {
		where = append(where, fmt.Sprintf("vendor_id = $%d", len(args)+1))
		args = append(args, *filter.VendorID)
	}
	if filter.Status != "" {
		where = append(where, fmt.Sprintf("status = $%d", len(args)+1))
		args = append(args, string(filter.Status))
	}

	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY scheduled_at DESC"
	query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("DB query failed", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	out := []*Booking{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			log.Error("row scan failed", zap.Error(err))
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *repository) UpdateStatus(
	ctx context.Context,
	id uuid.UUID,
	from []Status,
	to Status,
) (*Booking, error) {

	allowed := make([]string, 0, len(from))
	for _, s := range from {
		allowed = append(allowed, string(s))
	}

	b, err := scanBooking(r.db.QueryRowContext(ctx, `
		UPDATE bookings
		SET status = $2,
			completed_at = CASE WHEN $2::text = 'completed' THEN NOW() ELSE completed_at END,
			updated_at = NOW()
		WHERE id = $1 AND status = ANY($3)
		RETURNING `+bookingColumns,
		id, string(to), pq.Array(allowed),
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrInvalidTransition
	}
	return b, err
}
