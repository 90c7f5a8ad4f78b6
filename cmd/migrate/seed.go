package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"strings"

	"glowdesk-be/internal/user"
	"glowdesk-be/internal/utils"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

type Catalog struct {
	Categories []CatalogCategory `yaml:"categories"`
	Admin      *CatalogAdmin     `yaml:"admin"`
}

type CatalogCategory struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

type CatalogAdmin struct {
	Name     string `yaml:"name"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
}

func loadCatalog(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	return parseCatalog(raw)
}

func parseCatalog(raw []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	for i, cat := range c.Categories {
		if strings.TrimSpace(cat.Name) == "" {
			return nil, fmt.Errorf("categories[%d]: name is required", i)
		}
	}
	if a := c.Admin; a != nil {
		if utils.NormalizeEmail(a.Email) == "" || len(a.Password) < 8 {
			return nil, fmt.Errorf("admin: email and a password of at least 8 characters are required")
		}
	}
	return &c, nil
}

// seedCatalog is idempotent: existing categories are left untouched and an
// existing admin email is promoted rather than duplicated.
func seedCatalog(ctx context.Context, db *sql.DB, c *Catalog, out io.Writer) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, cat := range c.Categories {
		res, err := tx.ExecContext(ctx, `
			INSERT INTO categories (id, name, description, is_active)
			VALUES ($1, $2, $3, TRUE)
			ON CONFLICT (name) DO NOTHING
		`, uuid.New(), strings.TrimSpace(cat.Name), strings.TrimSpace(cat.Description))
		if err != nil {
			return fmt.Errorf("seed category %q: %w", cat.Name, err)
		}
		if n, _ := res.RowsAffected(); n > 0 {
			fmt.Fprintf(out, "category  %s\n", cat.Name)
		}
	}

	if a := c.Admin; a != nil {
		hash, err := user.HashPassword(a.Password)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO users (name, email, password, role)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (email) DO UPDATE SET role = EXCLUDED.role
		`, strings.TrimSpace(a.Name), utils.NormalizeEmail(a.Email), hash, utils.RoleAdmin); err != nil {
			return fmt.Errorf("seed admin: %w", err)
		}
		fmt.Fprintf(out, "admin     %s\n", utils.NormalizeEmail(a.Email))
	}

	return tx.Commit()
}
