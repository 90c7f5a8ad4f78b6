package address

import (
	"context"
	"database/sql"
	"errors"

	"glowdesk-be/internal/db"
	"glowdesk-be/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Repository interface {
	GetByUserID(ctx context.Context, userID uint) ([]*Address, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Address, error)

	Create(ctx context.Context, addr *Address) error
	// Update writes the editable columns. is_default is written only when
	// isDefault is non-nil; the stored flag is read back into addr.
	Update(ctx context.Context, addr *Address, isDefault *bool) error
	Delete(ctx context.Context, id uuid.UUID) error

	ClearDefault(ctx context.Context, userID uint) error
	SetDefault(ctx context.Context, userID uint, addressID uuid.UUID) (*Address, error)

	// WithUserLock runs fn in one transaction holding a per-user lock, so
	// default-flag changes for the same user are serialized.
	WithUserLock(ctx context.Context, userID uint, fn func(repo Repository) error) error
}

type repository struct {
	conn *sql.DB // nil inside a transaction
	db   db.DBTX
}

func NewRepository(conn *sql.DB) Repository {
	return &repository{conn: conn, db: conn}
}

const selectColumns = `
	id, user_id,
	label, address_line1, address_line2,
	city, state, pincode,
	is_default, geo_lng, geo_lat,
	created_at, updated_at
`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAddress(row rowScanner) (*Address, error) {
	var (
		a        Address
		lng, lat sql.NullFloat64
	)
	err := row.Scan(
		&a.ID, &a.UserID,
		&a.Label, &a.AddressLine1, &a.AddressLine2,
		&a.City, &a.State, &a.Pincode,
		&a.IsDefault, &lng, &lat,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if lng.Valid && lat.Valid {
		a.Geo = &GeoPoint{Lng: lng.Float64, Lat: lat.Float64}
	}
	return &a, nil
}

func geoArgs(g *GeoPoint) (sql.NullFloat64, sql.NullFloat64) {
	if g == nil {
		return sql.NullFloat64{}, sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: g.Lng, Valid: true}, sql.NullFloat64{Float64: g.Lat, Valid: true}
}

func (r *repository) GetByUserID(
	ctx context.Context,
	userID uint,
) ([]*Address, error) {

	log := logger.FromCtx(ctx).With(
		zap.String("repo", "Address"),
		zap.String("method", "GetByUserID"),
		zap.Uint("user_id", userID),
	)

	q := `SELECT ` + selectColumns + `
		FROM addresses
		WHERE user_id = $1
		ORDER BY created_at ASC, id ASC
	`

	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		log.Error("query failed", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	res := make([]*Address, 0)
	for rows.Next() {
		a, err := scanAddress(rows)
		if err != nil {
			log.Error("scan failed", zap.Error(err))
			return nil, err
		}
		res = append(res, a)
	}

	if err := rows.Err(); err != nil {
		log.Error("rows iteration failed", zap.Error(err))
		return nil, err
	}

	return res, nil
}

func (r *repository) GetByID(
	ctx context.Context,
	id uuid.UUID,
) (*Address, error) {

	log := logger.FromCtx(ctx).With(
		zap.String("repo", "Address"),
		zap.String("method", "GetByID"),
		zap.String("address_id", id.String()),
	)

	q := `SELECT ` + selectColumns + `
		FROM addresses
		WHERE id = $1
		LIMIT 1
	`

	a, err := scanAddress(r.db.QueryRowContext(ctx, q, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAddressNotFound
	}
	if err != nil {
		log.Error("query failed", zap.Error(err))
		return nil, err
	}

	return a, nil
}

func (r *repository) Create(
	ctx context.Context,
	addr *Address,
) error {

	log := logger.FromCtx(ctx).With(
		zap.String("repo", "Address"),
		zap.String("method", "Create"),
		zap.String("address_id", addr.ID.String()),
	)

	const q = `
		INSERT INTO addresses (
			id, user_id,
			label, address_line1, address_line2,
			city, state, pincode,
			is_default, geo_lng, geo_lat
		) VALUES (
			$1, $2,
			$3, $4, $5,
			$6, $7, $8,
			$9, $10, $11
		)
		RETURNING created_at, updated_at
	`

	lng, lat := geoArgs(addr.Geo)
	err := r.db.QueryRowContext(
		ctx, q,
		addr.ID, addr.UserID,
		addr.Label, addr.AddressLine1, addr.AddressLine2,
		addr.City, addr.State, addr.Pincode,
		addr.IsDefault, lng, lat,
	).Scan(&addr.CreatedAt, &addr.UpdatedAt)

	if err != nil {
		log.Error("insert failed", zap.Error(err))
		return err
	}

	return nil
}

func (r *repository) Update(
	ctx context.Context,
	addr *Address,
	isDefault *bool,
) error {

	log := logger.FromCtx(ctx).With(
		zap.String("repo", "Address"),
		zap.String("method", "Update"),
		zap.String("address_id", addr.ID.String()),
	)

	const q = `
		UPDATE addresses
		SET label = $2,
		    address_line1 = $3,
		    address_line2 = $4,
		    city = $5,
		    state = $6,
		    pincode = $7,
		    is_default = COALESCE($8, is_default),
		    geo_lng = $9,
		    geo_lat = $10,
		    updated_at = NOW()
		WHERE id = $1
		RETURNING is_default, updated_at
	`

	lng, lat := geoArgs(addr.Geo)
	err := r.db.QueryRowContext(
		ctx, q,
		addr.ID,
		addr.Label, addr.AddressLine1, addr.AddressLine2,
		addr.City, addr.State, addr.Pincode,
		isDefault, lng, lat,
	).Scan(&addr.IsDefault, &addr.UpdatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return ErrAddressNotFound
	}
	if err != nil {
		log.Error("update failed", zap.Error(err))
		return err
	}

	return nil
}

func (r *repository) Delete(
	ctx context.Context,
	id uuid.UUID,
) error {

	log := logger.FromCtx(ctx).With(
		zap.String("repo", "Address"),
		zap.String("method", "Delete"),
		zap.String("address_id", id.String()),
	)

	res, err := r.db.ExecContext(ctx, `DELETE FROM addresses WHERE id = $1`, id)
	if err != nil {
		log.Error("delete failed", zap.Error(err))
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrAddressNotFound
	}

	return nil
}

func (r *repository) ClearDefault(
	ctx context.Context,
	userID uint,
) error {

	log := logger.FromCtx(ctx).With(
		zap.String("repo", "Address"),
		zap.String("method", "ClearDefault"),
		zap.Uint("user_id", userID),
	)
	log.Debug("start clearing default address")

	const q = `
		UPDATE addresses
		SET is_default = false,
		    updated_at = NOW()
		WHERE user_id = $1
		  AND is_default = true
	`

	if _, err := r.db.ExecContext(ctx, q, userID); err != nil {
		log.Error("clear default failed", zap.Error(err))
		return err
	}
	return nil
}

func (r *repository) SetDefault(
	ctx context.Context,
	userID uint,
	addressID uuid.UUID,
) (*Address, error) {

	log := logger.FromCtx(ctx).With(
		zap.String("repo", "Address"),
		zap.String("method", "SetDefault"),
		zap.Uint("user_id", userID),
		zap.String("address_id", addressID.String()),
	)
	log.Debug("start setting default address")

	q := `
		UPDATE addresses
		SET is_default = true,
		    updated_at = NOW()
		WHERE user_id = $1
		  AND id = $2
		RETURNING ` + selectColumns

	a, err := scanAddress(r.db.QueryRowContext(ctx, q, userID, addressID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAddressNotFound
	}
	if err != nil {
		log.Error("set default failed", zap.Error(err))
		return nil, err
	}

	return a, nil
}

func (r *repository) WithUserLock(
	ctx context.Context,
	userID uint,
	fn func(repo Repository) error,
) error {
	if r.conn == nil {
		return fn(r)
	}

	return db.RunInTx(ctx, r.conn, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock($1)`, int64(userID)); err != nil {
			logger.FromCtx(ctx).Error("advisory lock failed",
				zap.String("repo", "Address"),
				zap.Uint("user_id", userID),
				zap.Error(err),
			)
			return err
		}
		return fn(&repository{db: tx})
	})
}
