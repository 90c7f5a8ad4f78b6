package user

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userCols = []string{"id", "name", "email", "password", "role", "created_at"}

func TestRepository_Create(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()

	repo := NewRepository(conn)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO users").
			WithArgs("Asha", "asha@example.com", "hash", "USER").
			WillReturnRows(sqlmock.NewRows(userCols).
				AddRow(1, "Asha", "asha@example.com", "hash", "USER", time.Now()))

		u, err := repo.Create(ctx, "Asha", "asha@example.com", "hash", "USER")
		require.NoError(t, err)
		assert.Equal(t, uint(1), u.ID)
		assert.Equal(t, "USER", u.Role)
	})

	t.Run("Duplicate email", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO users").
			WillReturnError(&pq.Error{Code: "23505", Constraint: "users_email_key"})

		_, err := repo.Create(ctx, "Asha", "asha@example.com", "hash", "USER")
		assert.ErrorIs(t, err, ErrEmailExists)
	})

	t.Run("Other error", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO users").
			WillReturnError(errors.New("connection reset"))

		_, err := repo.Create(ctx, "Asha", "asha@example.com", "hash", "USER")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrEmailExists)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Find(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()

	repo := NewRepository(conn)
	ctx := context.Background()

	t.Run("ByEmail", func(t *testing.T) {
		mock.ExpectQuery("SELECT .* FROM users WHERE email = \\$1").
			WithArgs("asha@example.com").
			WillReturnRows(sqlmock.NewRows(userCols).
				AddRow(3, "Asha", "asha@example.com", "hash", "ADMIN", time.Now()))

		u, err := repo.FindByEmail(ctx, "asha@example.com")
		require.NoError(t, err)
		assert.Equal(t, uint(3), u.ID)
	})

	t.Run("ByID missing", func(t *testing.T) {
		mock.ExpectQuery("SELECT .* FROM users WHERE id = \\$1").
			WithArgs(uint(9)).
			WillReturnError(sql.ErrNoRows)

		_, err := repo.FindByID(ctx, 9)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateRole(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()

	repo := NewRepository(conn)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("UPDATE users SET role = \\$2 WHERE id = \\$1").
			WithArgs(uint(5), "VENDOR").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.UpdateRole(ctx, 5, "VENDOR"))
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectExec("UPDATE users SET role").
			WithArgs(uint(5), "VENDOR").
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.UpdateRole(ctx, 5, "VENDOR"), ErrUserNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
