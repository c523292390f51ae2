// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers contains the HTTP handlers of the gallery CMS: a JSON
// admin API that accepts form submissions, and the public read endpoints.
// Handlers receive their dependencies through the handler structs, as
// interfaces so tests can substitute them.
package handlers

import (
	"context"
	"time"

	"github.com/google/uuid"

	"gallerycms/internal/models"
	"gallerycms/internal/store"
)

// GalleryPhotoStore is the persistence the gallery handlers need.
type GalleryPhotoStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.GalleryPhoto, error)
	Save(ctx context.Context, p *models.GalleryPhoto) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, f store.GalleryPhotoFilter) ([]models.GalleryPhoto, error)
	Count(ctx context.Context, f store.GalleryPhotoFilter) (int, error)
}

// ImageStore is the persistence the image handlers need.
type ImageStore interface {
	Create(ctx context.Context, img *models.Image) error
	Update(ctx context.Context, img *models.Image) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Image, error)
	List(ctx context.Context, query string, fields []string, page store.Page) ([]models.Image, error)
	Delete(ctx context.Context, id uuid.UUID) (*models.Image, error)
}

// DocumentStore is the persistence the document handlers need.
type DocumentStore interface {
	Create(ctx context.Context, d *models.Document) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Document, error)
	List(ctx context.Context, query string, page store.Page) ([]models.Document, error)
	Delete(ctx context.Context, id uuid.UUID) (*models.Document, error)
}

// HomePageStore is the persistence the page handlers need.
type HomePageStore interface {
	Create(ctx context.Context, p *models.HomePage) error
	Update(ctx context.Context, p *models.HomePage) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.HomePage, error)
	FindBySlug(ctx context.Context, slug string) (*models.HomePage, error)
	List(ctx context.Context) ([]models.HomePage, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// SnippetStore is the persistence shared by the small admin records.
type SnippetStore[T any] interface {
	Save(ctx context.Context, v *T) error
	FindByID(ctx context.Context, id uuid.UUID) (*T, error)
	List(ctx context.Context, query string, page store.Page) ([]T, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// LinkStore lists related links for public pages.
type LinkStore interface {
	ListLinks(ctx context.Context) ([]store.PageLink, error)
}

// DocumentLinkStore lists related documents for public pages.
type DocumentLinkStore interface {
	ListDocuments(ctx context.Context) ([]store.DocumentLink, error)
}

// CacheLogger records cache invalidations and lists the latest ones.
type CacheLogger interface {
	Log(ctx context.Context, entityType string, entityID uuid.UUID, action string)
	RecentEntries(ctx context.Context, limit int) ([]store.CacheLogEntry, error)
}

// FeedCache caches encoded public responses.
type FeedCache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration)
	Invalidate(ctx context.Context, keys ...string)
	InvalidatePrefix(ctx context.Context, prefix string)
}

// ObjectLinker turns stored object locations into URLs and removes objects.
type ObjectLinker interface {
	URL(ctx context.Context, bucket, key string) (string, error)
	Delete(ctx context.Context, bucket, key string) error
}

// Recorder receives domain metrics.
type Recorder interface {
	PhotoSaved(live bool)
	ValidationFailed(model, field string)
	CacheLookup(hit bool)
}
