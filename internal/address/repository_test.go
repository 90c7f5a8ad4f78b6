package address

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var addressColumns = []string{
	"id", "user_id", "label", "address_line1", "address_line2",
	"city", "state", "pincode", "is_default", "geo_lng", "geo_lat",
	"created_at", "updated_at",
}

func addressRow(rows *sqlmock.Rows, id uuid.UUID, userID int64, label string, isDefault bool) *sqlmock.Rows {
	now := time.Now()
	return rows.AddRow(
		id.String(), userID, label, "12 MG Road", "",
		"Bengaluru", "Karnataka", "560001", isDefault, nil, nil,
		now, now,
	)
}

func TestRepository_GetByUserID(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()

	repo := NewRepository(conn)
	userID := uint(1)

	t.Run("Success", func(t *testing.T) {
		first, second := uuid.New(), uuid.New()
		rows := sqlmock.NewRows(addressColumns)
		addressRow(rows, first, 1, "Home", false)
		addressRow(rows, second, 1, "Work", true)

		mock.ExpectQuery("SELECT .* FROM addresses WHERE user_id = \\$1 ORDER BY created_at ASC").
			WithArgs(userID).
			WillReturnRows(rows)

		res, err := repo.GetByUserID(context.Background(), userID)
		assert.NoError(t, err)
		if assert.Len(t, res, 2) {
			assert.Equal(t, first, res[0].ID)
			assert.Equal(t, "Home", res[0].Label)
			assert.Nil(t, res[0].Geo)
			assert.True(t, res[1].IsDefault)
		}
	})

	t.Run("Empty", func(t *testing.T) {
		mock.ExpectQuery("SELECT .* FROM addresses").
			WithArgs(userID).
			WillReturnRows(sqlmock.NewRows(addressColumns))

		res, err := repo.GetByUserID(context.Background(), userID)
		assert.NoError(t, err)
		assert.NotNil(t, res)
		assert.Empty(t, res)
	})

	t.Run("QueryError", func(t *testing.T) {
		mock.ExpectQuery("SELECT .* FROM addresses").
			WithArgs(userID).
			WillReturnError(errors.New("db error"))

		res, err := repo.GetByUserID(context.Background(), userID)
		assert.Error(t, err)
		assert.Nil(t, res)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()

	repo := NewRepository(conn)
	id := uuid.New()

	t.Run("Success with geo", func(t *testing.T) {
		now := time.Now()
		rows := sqlmock.NewRows(addressColumns).AddRow(
			id.String(), int64(1), "Home", "12 MG Road", "Flat 3",
			"Bengaluru", "Karnataka", "560001", true, 77.59, 12.97,
			now, now,
		)

		mock.ExpectQuery("SELECT .* FROM addresses WHERE id = \\$1").
			WithArgs(id).
			WillReturnRows(rows)

		res, err := repo.GetByID(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, id, res.ID)
		assert.Equal(t, uint(1), res.UserID)
		if assert.NotNil(t, res.Geo) {
			assert.Equal(t, 77.59, res.Geo.Lng)
			assert.Equal(t, 12.97, res.Geo.Lat)
		}
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT .* FROM addresses WHERE id = \\$1").
			WithArgs(id).
			WillReturnError(sql.ErrNoRows)

		res, err := repo.GetByID(context.Background(), id)
		assert.ErrorIs(t, err, ErrAddressNotFound)
		assert.Nil(t, res)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()

	repo := NewRepository(conn)
	addr := &Address{
		ID:           uuid.New(),
		UserID:       1,
		Label:        "Office",
		AddressLine1: "4th Floor, Prestige Tower",
		City:         "Mumbai",
		State:        "Maharashtra",
		Pincode:      "400001",
		Geo:          &GeoPoint{Lng: 72.83, Lat: 18.94},
	}

	t.Run("Success", func(t *testing.T) {
		now := time.Now()
		mock.ExpectQuery("INSERT INTO addresses").
			WithArgs(
				addr.ID, addr.UserID,
				addr.Label, addr.AddressLine1, addr.AddressLine2,
				addr.City, addr.State, addr.Pincode,
				addr.IsDefault, 72.83, 18.94,
			).
			WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

		err := repo.Create(context.Background(), addr)
		assert.NoError(t, err)
		assert.Equal(t, now, addr.CreatedAt)
	})

	t.Run("Error", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO addresses").
			WillReturnError(errors.New("insert failed"))

		err := repo.Create(context.Background(), addr)
		assert.Error(t, err)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Update(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()

	repo := NewRepository(conn)
	addr := &Address{ID: uuid.New(), UserID: 1, Label: "Home", IsDefault: true}

	t.Run("Success", func(t *testing.T) {
		now := time.Now()
		isDefault := true
		mock.ExpectQuery("UPDATE addresses SET label = \\$2").
			WithArgs(
				addr.ID, addr.Label, addr.AddressLine1, addr.AddressLine2,
				addr.City, addr.State, addr.Pincode, true, nil, nil,
			).
			WillReturnRows(sqlmock.NewRows([]string{"is_default", "updated_at"}).AddRow(true, now))

		assert.NoError(t, repo.Update(context.Background(), addr, &isDefault))
		assert.Equal(t, now, addr.UpdatedAt)
		assert.True(t, addr.IsDefault)
	})

	t.Run("Flag left alone keeps the stored value", func(t *testing.T) {
		now := time.Now()
		stale := &Address{ID: uuid.New(), UserID: 1, Label: "Work", IsDefault: true}
		mock.ExpectQuery("is_default = COALESCE\\(\\$8, is_default\\)").
			WithArgs(
				stale.ID, stale.Label, stale.AddressLine1, stale.AddressLine2,
				stale.City, stale.State, stale.Pincode, nil, nil, nil,
			).
			WillReturnRows(sqlmock.NewRows([]string{"is_default", "updated_at"}).AddRow(false, now))

		assert.NoError(t, repo.Update(context.Background(), stale, nil))
		assert.False(t, stale.IsDefault)
	})

	t.Run("Vanished", func(t *testing.T) {
		mock.ExpectQuery("UPDATE addresses SET label").
			WillReturnError(sql.ErrNoRows)

		assert.ErrorIs(t, repo.Update(context.Background(), addr, nil), ErrAddressNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Delete(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()

	repo := NewRepository(conn)
	id := uuid.New()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM addresses WHERE id = \\$1").
			WithArgs(id).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(context.Background(), id))
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM addresses").
			WithArgs(id).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Delete(context.Background(), id), ErrAddressNotFound)
	})

	t.Run("Error", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM addresses").
			WithArgs(id).
			WillReturnError(errors.New("db error"))

		assert.Error(t, repo.Delete(context.Background(), id))
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ClearDefault(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()

	repo := NewRepository(conn)
	userID := uint(1)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("UPDATE addresses SET is_default = false").
			WithArgs(userID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.ClearDefault(context.Background(), userID))
	})

	t.Run("Error", func(t *testing.T) {
		mock.ExpectExec("UPDATE addresses SET is_default = false").
			WithArgs(userID).
			WillReturnError(errors.New("db error"))

		assert.Error(t, repo.ClearDefault(context.Background(), userID))
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_SetDefault(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()

	repo := NewRepository(conn)
	userID := uint(1)
	addrID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		rows := addressRow(sqlmock.NewRows(addressColumns), addrID, 1, "Home", true)
		mock.ExpectQuery("UPDATE addresses SET is_default = true").
			WithArgs(userID, addrID).
			WillReturnRows(rows)

		res, err := repo.SetDefault(context.Background(), userID, addrID)
		require.NoError(t, err)
		assert.True(t, res.IsDefault)
		assert.Equal(t, addrID, res.ID)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("UPDATE addresses SET is_default = true").
			WithArgs(userID, addrID).
			WillReturnError(sql.ErrNoRows)

		_, err := repo.SetDefault(context.Background(), userID, addrID)
		assert.ErrorIs(t, err, ErrAddressNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_WithUserLock(t *testing.T) {
	userID := uint(42)
	addrID := uuid.New()

	t.Run("Clear and set commit together", func(t *testing.T) {
		conn, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer conn.Close()
		repo := NewRepository(conn)

		mock.ExpectBegin()
		mock.ExpectExec("SELECT pg_advisory_xact_lock\\(\\$1\\)").
			WithArgs(int64(userID)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec("UPDATE addresses SET is_default = false").
			WithArgs(userID).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery("UPDATE addresses SET is_default = true").
			WithArgs(userID, addrID).
			WillReturnRows(addressRow(sqlmock.NewRows(addressColumns), addrID, 42, "Home", true))
		mock.ExpectCommit()

		err = repo.WithUserLock(context.Background(), userID, func(tx Repository) error {
			if err := tx.ClearDefault(context.Background(), userID); err != nil {
				return err
			}
			_, err := tx.SetDefault(context.Background(), userID, addrID)
			return err
		})

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failed set rolls back the clear", func(t *testing.T) {
		conn, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer conn.Close()
		repo := NewRepository(conn)

		mock.ExpectBegin()
		mock.ExpectExec("SELECT pg_advisory_xact_lock").
			WithArgs(int64(userID)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec("UPDATE addresses SET is_default = false").
			WithArgs(userID).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery("UPDATE addresses SET is_default = true").
			WithArgs(userID, addrID).
			WillReturnError(sql.ErrNoRows)
		mock.ExpectRollback()

		err = repo.WithUserLock(context.Background(), userID, func(tx Repository) error {
			if err := tx.ClearDefault(context.Background(), userID); err != nil {
				return err
			}
			_, err := tx.SetDefault(context.Background(), userID, addrID)
			return err
		})

		assert.ErrorIs(t, err, ErrAddressNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Lock failure aborts", func(t *testing.T) {
		conn, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer conn.Close()
		repo := NewRepository(conn)

		mock.ExpectBegin()
		mock.ExpectExec("SELECT pg_advisory_xact_lock").
			WillReturnError(errors.New("lock timeout"))
		mock.ExpectRollback()

		called := false
		err = repo.WithUserLock(context.Background(), userID, func(tx Repository) error {
			called = true
			return nil
		})

		assert.Error(t, err)
		assert.False(t, called)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
