package category

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
	"go.uber.org/zap"
)

type Repository interface {
	List(ctx context.Context, filter ListFilter) ([]*Category, int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Category, error)
	Create(ctx context.Context, c *Category) error
	Update(ctx context.Context, c *Category) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) List(
	ctx context.Context,
	filter ListFilter,
) ([]*Category, int64, error) {

	limit, offset := utils.Paginate(filter.Limit, filter.Page)

	log := logger.FromCtx(ctx).With(
		zap.String("repo", "Category"),
		zap.String("method", "List"),
		zap.String("search", filter.Search),
		zap.Int("limit", limit),
		zap.Int("offset", offset),
	)

	// ---------- BASE QUERY ----------
	query := `
		SELECT
			c.id,
			c.name,
			c.description,
			c.is_active,
			c.created_at,
			COUNT(*) OVER() AS total
		FROM categories c
	`

	where := []string{}
	args := []interface{}{}

	// ---------- FILTER ----------
	if s := strings.TrimSpace(filter.Search); s != "" {
		where = append(where, fmt.Sprintf("c.name ILIKE $%d", len(args)+1))
		args = append(args, "%"+s+"%")
	}
	if filter.ActiveOnly {
		where = append(where, "c.is_active = true")
	}

	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}

	query += " ORDER BY c.name ASC"
	query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	log.Debug("executing query", zap.String("query", query))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("DB query failed", zap.Error(err))
		return nil, 0, err
	}
	defer rows.Close()

	var (
		categories = make([]*Category, 0, limit)
		total      int64
	)
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.IsActive, &c.CreatedAt, &total); err != nil {
			log.Error("row scan failed", zap.Error(err))
			return nil, 0, err
		}
		categories = append(categories, &c)
	}

	if err := rows.Err(); err != nil {
		log.Error("rows iteration failed", zap.Error(err))
		return nil, 0, err
	}

	return categories, total, nil
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Category, error) {
	var c Category
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, description, is_active, created_at
		FROM categories
		WHERE id = $1
	`, id).Scan(&c.ID, &c.Name, &c.Description, &c.IsActive, &c.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *repository) Create(ctx context.Context, c *Category) error {
	log := logger.FromCtx(ctx).With(
		zap.String("repo", "Category"),
		zap.String("method", "Create"),
		zap.String("name", c.Name),
	)

	err := r.db.QueryRowContext(ctx, `
		INSERT INTO categories (id, name, description, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`, c.ID, c.Name, c.Description, c.IsActive).Scan(&c.CreatedAt)

	if err != nil {
		if db.IsUniqueViolation(err) {
			return ErrCategoryExists
		}
		log.Error("insert failed", zap.Error(err))
		return fmt.Errorf("add category failed: %w", err)
	}

	log.Info("category created", zap.String("category_id", c.ID.String()))
	return nil
}

func (r *repository) Update(ctx context.Context, c *Category) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE categories
		SET name = $2, description = $3, is_active = $4
		WHERE id = $1
	`, c.ID, c.Name, c.Description, c.IsActive)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return ErrCategoryExists
		}
		return fmt.Errorf("update category failed: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		if db.IsForeignKeyViolation(err) {
			return ErrCategoryInUse
		}
		return fmt.Errorf("delete category failed: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrCategoryNotFound
	}
	return nil
}
