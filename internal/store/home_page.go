// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"

	"gallerycms/internal/models"
	"gallerycms/internal/slug"
)

// HomePageStore handles home page records. Bodies are sanitized on every
// write so stored markup is always safe to serve as-is.
type HomePageStore struct {
	db     *sql.DB
	policy *bluemonday.Policy
}

// NewHomePageStore creates a new HomePageStore.
func NewHomePageStore(db *sql.DB) *HomePageStore {
	return &HomePageStore{db: db, policy: bluemonday.UGCPolicy()}
}

const homePageColumns = `id, title, slug, body, created_at, updated_at`

func scanHomePage(row scanner) (*models.HomePage, error) {
	var p models.HomePage
	if err := row.Scan(&p.ID, &p.Title, &p.Slug, &p.Body, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

// ErrEmptySlug is returned when neither the slug nor the title yields a
// usable URL segment.
var ErrEmptySlug = errors.New("page slug is empty")

// PageSlug normalizes a submitted slug, deriving it from title when blank.
// The result is empty when neither holds a letter or digit.
func PageSlug(submitted, title string) string {
	if s := slug.Generate(submitted); s != "" {
		return s
	}
	if submitted != "" {
		return ""
	}
	return slug.Generate(title)
}

// prepare normalizes the slug and sanitizes the body.
func (s *HomePageStore) prepare(p *models.HomePage) error {
	p.Slug = PageSlug(p.Slug, p.Title)
	if p.Slug == "" {
		return ErrEmptySlug
	}
	p.Body = s.policy.Sanitize(p.Body)
	return nil
}

// Create inserts a new page.
func (s *HomePageStore) Create(ctx context.Context, p *models.HomePage) error {
	if err := s.prepare(p); err != nil {
		return fmt.Errorf("create home page: %w", err)
	}
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO home_pages (title, slug, body)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`, p.Title, p.Slug, p.Body).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create home page: %w", err)
	}
	return nil
}

// Update writes an existing page.
func (s *HomePageStore) Update(ctx context.Context, p *models.HomePage) error {
	if err := s.prepare(p); err != nil {
		return fmt.Errorf("update home page: %w", err)
	}
	err := s.db.QueryRowContext(ctx, `
		UPDATE home_pages SET title = $1, slug = $2, body = $3, updated_at = now()
		WHERE id = $4
		RETURNING created_at, updated_at
	`, p.Title, p.Slug, p.Body, p.ID).Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update home page: %w", err)
	}
	return nil
}

// FindByID retrieves a page by its UUID.
func (s *HomePageStore) FindByID(ctx context.Context, id uuid.UUID) (*models.HomePage, error) {
	p, err := scanHomePage(s.db.QueryRowContext(ctx,
		`SELECT `+homePageColumns+` FROM home_pages WHERE id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find home page by id: %w", err)
	}
	return p, nil
}

// FindBySlug retrieves a page by its slug.
func (s *HomePageStore) FindBySlug(ctx context.Context, slug string) (*models.HomePage, error) {
	p, err := scanHomePage(s.db.QueryRowContext(ctx,
		`SELECT `+homePageColumns+` FROM home_pages WHERE slug = $1`, slug))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find home page by slug: %w", err)
	}
	return p, nil
}

// List returns all pages ordered by title.
func (s *HomePageStore) List(ctx context.Context) ([]models.HomePage, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+homePageColumns+` FROM home_pages ORDER BY title`)
	if err != nil {
		return nil, fmt.Errorf("list home pages: %w", err)
	}
	defer rows.Close()

	var items []models.HomePage
	for rows.Next() {
		p, err := scanHomePage(rows)
		if err != nil {
			return nil, fmt.Errorf("scan home page: %w", err)
		}
		items = append(items, *p)
	}
	return items, rows.Err()
}

// Delete removes a page. Related links pointing at it are removed with it.
func (s *HomePageStore) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM home_pages WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete home page: %w", err)
	}
	if err := requireAffected(res); err != nil {
		return fmt.Errorf("delete home page: %w", err)
	}
	return nil
}
