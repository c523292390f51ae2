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
	"github.com/lib/pq"

	"gallerycms/internal/models"
	"gallerycms/internal/publish"
)

// GalleryPhotoStore persists gallery photos. Every write goes through
// publish.StampOnSave first, so a live photo always leaves Save with its
// publish timestamps set.
type GalleryPhotoStore struct {
	db    *sql.DB
	sb    sq.StatementBuilderType
	clock publish.Clock
}

// NewGalleryPhotoStore creates a GalleryPhotoStore. A nil clock uses the
// system clock.
func NewGalleryPhotoStore(db *sql.DB, clock publish.Clock) *GalleryPhotoStore {
	if clock == nil {
		clock = publish.SystemClock
	}
	return &GalleryPhotoStore{db: db, sb: builder(), clock: clock}
}

var galleryPhotoColumns = []string{
	"g.id", "g.image_id", "g.live", "g.go_live_at", "g.expire_at",
	"g.first_published_at", "g.last_published_at", "g.display_locations",
	"g.created_at", "g.updated_at",
	"i.id", "i.title", "i.photo_credit", "i.caption", "i.bucket", "i.s3_key", "i.created_at",
}

// gallerySearchColumns maps admin search field names onto columns of the
// joined image row.
var gallerySearchColumns = map[string]string{
	"image__title":        "i.title",
	"image__photo_credit": "i.photo_credit",
	"image__caption":      "i.caption",
}

func scanGalleryPhoto(row scanner) (*models.GalleryPhoto, error) {
	var (
		p   models.GalleryPhoto
		img models.Image
	)
	err := row.Scan(
		&p.ID, &p.ImageID, &p.Live, &p.GoLiveAt, &p.ExpireAt,
		&p.FirstPublishedAt, &p.LastPublishedAt, pq.Array(&p.DisplayLocations),
		&p.CreatedAt, &p.UpdatedAt,
		&img.ID, &img.Title, &img.PhotoCredit, &img.Caption, &img.Bucket, &img.S3Key, &img.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if p.DisplayLocations == nil {
		p.DisplayLocations = []string{}
	}
	p.Image = &img
	return &p, nil
}

func (s *GalleryPhotoStore) selectPhotos() sq.SelectBuilder {
	return s.sb.Select(galleryPhotoColumns...).
		From("gallery_photos g").
		Join("images i ON i.id = g.image_id")
}

// FindByID retrieves a gallery photo with its image.
func (s *GalleryPhotoStore) FindByID(ctx context.Context, id uuid.UUID) (*models.GalleryPhoto, error) {
	query, args, err := s.selectPhotos().Where(sq.Eq{"g.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build find gallery photo: %w", err)
	}

	p, err := scanGalleryPhoto(s.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find gallery photo by id: %w", err)
	}
	return p, nil
}

// Save stamps p's publish timestamps and writes it. A zero ID inserts a new
// row; otherwise the existing row is updated. On success p holds the stored
// values, including the generated ID and audit timestamps. On failure p is
// left untouched.
func (s *GalleryPhotoStore) Save(ctx context.Context, p *models.GalleryPhoto) error {
	stamped := publish.StampOnSave(*p, s.clock())
	if stamped.DisplayLocations == nil {
		stamped.DisplayLocations = []string{}
	}

	var err error
	if stamped.ID == uuid.Nil {
		err = s.insert(ctx, &stamped)
	} else {
		err = s.update(ctx, &stamped)
	}
	if err != nil {
		return err
	}
	*p = stamped
	return nil
}

func (s *GalleryPhotoStore) insert(ctx context.Context, p *models.GalleryPhoto) error {
	query, args, err := s.sb.Insert("gallery_photos").
		Columns(
			"image_id", "live", "go_live_at", "expire_at",
			"first_published_at", "last_published_at", "display_locations",
		).
		Values(
			p.ImageID, p.Live, p.GoLiveAt, p.ExpireAt,
			p.FirstPublishedAt, p.LastPublishedAt, pq.Array(p.DisplayLocations),
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create gallery photo: %w", err)
	}

	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return fmt.Errorf("create gallery photo: %w", err)
	}
	return nil
}

func (s *GalleryPhotoStore) update(ctx context.Context, p *models.GalleryPhoto) error {
	query, args, err := s.sb.Update("gallery_photos").
		Set("image_id", p.ImageID).
		Set("live", p.Live).
		Set("go_live_at", p.GoLiveAt).
		Set("expire_at", p.ExpireAt).
		Set("first_published_at", p.FirstPublishedAt).
		Set("last_published_at", p.LastPublishedAt).
		Set("display_locations", pq.Array(p.DisplayLocations)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": p.ID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build update gallery photo: %w", err)
	}

	err = s.db.QueryRowContext(ctx, query, args...).Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update gallery photo: %w", err)
	}
	return nil
}

// Delete removes a gallery photo.
func (s *GalleryPhotoStore) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM gallery_photos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete gallery photo: %w", err)
	}
	if err := requireAffected(res); err != nil {
		return fmt.Errorf("delete gallery photo: %w", err)
	}
	return nil
}

// GalleryPhotoFilter narrows List and Count.
type GalleryPhotoFilter struct {
	// Query is matched case-insensitively against SearchFields.
	Query        string
	SearchFields []string
	Live         *bool
	// DisplayLocation keeps photos placed at this location.
	DisplayLocation string
	Page
}

func (f GalleryPhotoFilter) apply(q sq.SelectBuilder) sq.SelectBuilder {
	if f.Live != nil {
		q = q.Where(sq.Eq{"g.live": *f.Live})
	}
	if f.DisplayLocation != "" {
		q = q.Where(sq.Expr("? = ANY(g.display_locations)", f.DisplayLocation))
	}
	if clause := searchClause(f.Query, f.SearchFields, gallerySearchColumns); clause != nil {
		q = q.Where(clause)
	}
	return q
}

// List returns gallery photos matching f, most recently first-published
// first. Never-published photos come last.
func (s *GalleryPhotoStore) List(ctx context.Context, f GalleryPhotoFilter) ([]models.GalleryPhoto, error) {
	q := f.apply(s.selectPhotos()).
		OrderBy("g.first_published_at DESC NULLS LAST", "g.created_at DESC")
	query, args, err := f.Page.apply(q).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list gallery photos: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list gallery photos: %w", err)
	}
	defer rows.Close()

	var items []models.GalleryPhoto
	for rows.Next() {
		p, err := scanGalleryPhoto(rows)
		if err != nil {
			return nil, fmt.Errorf("scan gallery photo: %w", err)
		}
		items = append(items, *p)
	}
	return items, rows.Err()
}

// Count returns the number of gallery photos matching f. Paging is ignored.
func (s *GalleryPhotoStore) Count(ctx context.Context, f GalleryPhotoFilter) (int, error) {
	q := f.apply(s.sb.Select("COUNT(*)").
		From("gallery_photos g").
		Join("images i ON i.id = g.image_id"))
	query, args, err := q.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count gallery photos: %w", err)
	}

	var count int
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count gallery photos: %w", err)
	}
	return count, nil
}
