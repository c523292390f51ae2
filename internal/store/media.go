// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"gallerycms/internal/models"
)

// ImageStore handles image records. The files themselves live in object
// storage; rows only carry the bucket and key.
type ImageStore struct {
	db *sql.DB
	sb sq.StatementBuilderType
}

// NewImageStore creates a new ImageStore with the given database connection.
func NewImageStore(db *sql.DB) *ImageStore {
	return &ImageStore{db: db, sb: builder()}
}

const imageColumns = `id, title, photo_credit, caption, bucket, s3_key, created_at`

var imageSearchColumns = map[string]string{
	"title":        "title",
	"photo_credit": "photo_credit",
	"caption":      "caption",
}

func scanImage(row scanner) (*models.Image, error) {
	var img models.Image
	err := row.Scan(&img.ID, &img.Title, &img.PhotoCredit, &img.Caption, &img.Bucket, &img.S3Key, &img.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &img, nil
}

// Create inserts an image record and fills in its ID and creation time.
func (s *ImageStore) Create(ctx context.Context, img *models.Image) error {
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO images (title, photo_credit, caption, bucket, s3_key)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`, img.Title, img.PhotoCredit, img.Caption, img.Bucket, img.S3Key).Scan(&img.ID, &img.CreatedAt)
	if err != nil {
		return fmt.Errorf("create image: %w", err)
	}
	return nil
}

// Update writes the editable metadata of an existing image.
func (s *ImageStore) Update(ctx context.Context, img *models.Image) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE images SET title = $1, photo_credit = $2, caption = $3
		WHERE id = $4
	`, img.Title, img.PhotoCredit, img.Caption, img.ID)
	if err != nil {
		return fmt.Errorf("update image: %w", err)
	}
	if err := requireAffected(res); err != nil {
		return fmt.Errorf("update image: %w", err)
	}
	return nil
}

// FindByID retrieves a single image by its UUID.
func (s *ImageStore) FindByID(ctx context.Context, id uuid.UUID) (*models.Image, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+imageColumns+` FROM images WHERE id = $1`, id)
	img, err := scanImage(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find image by id: %w", err)
	}
	return img, nil
}

// List returns images newest first, optionally filtered by a search over
// the given fields.
func (s *ImageStore) List(ctx context.Context, query string, fields []string, page Page) ([]models.Image, error) {
	q := s.sb.Select(imageColumns).From("images").OrderBy("created_at DESC")
	if clause := searchClause(query, fields, imageSearchColumns); clause != nil {
		q = q.Where(clause)
	}
	sqlStr, args, err := page.apply(q).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list images: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("list images: %w", err)
	}
	defer rows.Close()

	var items []models.Image
	for rows.Next() {
		img, err := scanImage(rows)
		if err != nil {
			return nil, fmt.Errorf("scan image: %w", err)
		}
		items = append(items, *img)
	}
	return items, rows.Err()
}

// Delete removes an image record and returns it so the caller can clean
// up the stored object. Gallery photos and simple photos referencing the
// image are removed with it.
func (s *ImageStore) Delete(ctx context.Context, id uuid.UUID) (*models.Image, error) {
	row := s.db.QueryRowContext(ctx, `DELETE FROM images WHERE id = $1 RETURNING `+imageColumns, id)
	img, err := scanImage(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("delete image: %w", err)
	}
	return img, nil
}

// DocumentStore handles document records.
type DocumentStore struct {
	db *sql.DB
	sb sq.StatementBuilderType
}

// NewDocumentStore creates a new DocumentStore.
func NewDocumentStore(db *sql.DB) *DocumentStore {
	return &DocumentStore{db: db, sb: builder()}
}

const documentColumns = `id, title, bucket, s3_key, created_at`

func scanDocument(row scanner) (*models.Document, error) {
	var d models.Document
	if err := row.Scan(&d.ID, &d.Title, &d.Bucket, &d.S3Key, &d.CreatedAt); err != nil {
		return nil, err
	}
	return &d, nil
}

// Create inserts a document record.
func (s *DocumentStore) Create(ctx context.Context, d *models.Document) error {
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO documents (title, bucket, s3_key)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, d.Title, d.Bucket, d.S3Key).Scan(&d.ID, &d.CreatedAt)
	if err != nil {
		return fmt.Errorf("create document: %w", err)
	}
	return nil
}

// FindByID retrieves a single document by its UUID.
func (s *DocumentStore) FindByID(ctx context.Context, id uuid.UUID) (*models.Document, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+documentColumns+` FROM documents WHERE id = $1`, id)
	d, err := scanDocument(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find document by id: %w", err)
	}
	return d, nil
}

// List returns documents newest first, optionally filtered by title.
func (s *DocumentStore) List(ctx context.Context, query string, page Page) ([]models.Document, error) {
	q := s.sb.Select(documentColumns).From("documents").OrderBy("created_at DESC")
	if clause := searchClause(query, []string{"title"}, map[string]string{"title": "title"}); clause != nil {
		q = q.Where(clause)
	}
	sqlStr, args, err := page.apply(q).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list documents: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	var items []models.Document
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		items = append(items, *d)
	}
	return items, rows.Err()
}

// Delete removes a document record and returns it.
func (s *DocumentStore) Delete(ctx context.Context, id uuid.UUID) (*models.Document, error) {
	row := s.db.QueryRowContext(ctx, `DELETE FROM documents WHERE id = $1 RETURNING `+documentColumns, id)
	d, err := scanDocument(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("delete document: %w", err)
	}
	return d, nil
}
