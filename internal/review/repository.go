package review

import (
	"context"
	"database/sql"

	"glowdesk-be/internal/db"
	"glowdesk-be/internal/logger"
	"glowdesk-be/internal/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Repository interface {
	Create(ctx context.Context, r *Review) error
	ListByVendor(ctx context.Context, vendorID uuid.UUID, limit, page int) ([]*Review, error)
	Summary(ctx context.Context, vendorID uuid.UUID) (Summary, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, rv *Review) error {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO reviews (id, booking_id, vendor_id, customer_id, rating, comment)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`, rv.ID, rv.BookingID, rv.VendorID, rv.CustomerID, rv.Rating, rv.Comment).Scan(&rv.CreatedAt)

	if err != nil {
		if db.IsUniqueViolation(err) {
			return ErrReviewExists
		}
		logger.FromCtx(ctx).Error("failed to insert review",
			zap.String("booking_id", rv.BookingID.String()), zap.Error(err))
		return err
	}
	return nil
}

func (r *repository) ListByVendor(
	ctx context.Context,
	vendorID uuid.UUID,
	limit, page int,
) ([]*Review, error) {

	limit, offset := utils.Paginate(limit, page)

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, booking_id, vendor_id, customer_id, rating, comment, created_at
		FROM reviews
		WHERE vendor_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`, vendorID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*Review{}
	for rows.Next() {
		var rv Review
		if err := rows.Scan(&rv.ID, &rv.BookingID, &rv.VendorID, &rv.CustomerID, &rv.Rating, &rv.Comment, &rv.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, &rv)
	}
	return out, rows.Err()
}

func (r *repository) Summary(ctx context.Context, vendorID uuid.UUID) (Summary, error) {
	var s Summary
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*), COALESCE(AVG(rating), 0)
		FROM reviews
		WHERE vendor_id = $1
	`, vendorID).Scan(&s.Count, &s.Average)
	return s, err
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrReviewNotFound
	}
	return nil
}
