// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"gallerycms/internal/cache"
	"gallerycms/internal/middleware"
	"gallerycms/internal/models"
	"gallerycms/internal/publish"
	"gallerycms/internal/store"
)

// cacheHeader reports whether a public response came from the feed cache.
const cacheHeader = "X-Cache"

// PublicDeps lists what the public handlers are built from.
type PublicDeps struct {
	Photos    GalleryPhotoStore
	Pages     HomePageStore
	Links     LinkStore
	Documents DocumentLinkStore
	Cache     FeedCache
	Linker    ObjectLinker
	Metrics   Recorder
	Clock     publish.Clock
	// FeedTTL bounds how long a public response is cached.
	FeedTTL time.Duration
}

// Public groups the read-only site endpoints.
type Public struct {
	PublicDeps
}

// NewPublic creates the public handler group.
func NewPublic(deps PublicDeps) *Public {
	if deps.Clock == nil {
		deps.Clock = publish.SystemClock
	}
	if deps.FeedTTL <= 0 {
		deps.FeedTTL = cache.DefaultFeedTTL
	}
	return &Public{PublicDeps: deps}
}

type galleryItem struct {
	ID               uuid.UUID  `json:"id"`
	Title            string     `json:"title"`
	PhotoCredit      string     `json:"photo_credit,omitempty"`
	Caption          string     `json:"caption,omitempty"`
	URL              string     `json:"url"`
	FirstPublishedAt *time.Time `json:"first_published_at,omitempty"`
	DisplayLocations []string   `json:"display_locations"`
}

type galleryResponse struct {
	Items []galleryItem `json:"items"`
}

type linkItem struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

type pageResponse struct {
	Title            string     `json:"title"`
	Slug             string     `json:"slug"`
	Body             string     `json:"body"`
	UpdatedAt        time.Time  `json:"updated_at"`
	RelatedLinks     []linkItem `json:"related_links"`
	RelatedDocuments []linkItem `json:"related_documents"`
}

// maxLocationLen bounds ?location= so callers cannot mint arbitrary cache keys.
const maxLocationLen = 64

// Gallery serves the photos currently visible, newest first, optionally
// narrowed with ?location=. Responses are cached until the next go-live or
// expiry instant at the latest. A location no live photo uses is never cached.
func (p *Public) Gallery(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	location := r.URL.Query().Get("location")
	if len(location) > maxLocationLen {
		writeError(w, http.StatusBadRequest, "location is too long")
		return
	}
	key := cache.GalleryKey(location)

	if p.serveCached(w, r, key) {
		return
	}

	live := true
	photos, err := p.Photos.List(ctx, store.GalleryPhotoFilter{
		Live:            &live,
		DisplayLocation: location,
	})
	if err != nil {
		writeStoreError(w, r, "list gallery", err)
		return
	}

	now := p.Clock()
	resp := galleryResponse{Items: make([]galleryItem, 0, len(photos))}
	for i := range photos {
		photo := &photos[i]
		if !publish.IsVisible(photo, now) {
			continue
		}
		resp.Items = append(resp.Items, p.galleryItem(ctx, photo))
	}

	ttl := p.FeedTTL
	if next, ok := publish.NextTransition(photos, now); ok && next.Sub(now) < ttl {
		ttl = next.Sub(now)
	}
	if location != "" && len(photos) == 0 {
		ttl = 0
	}
	p.respond(w, r, key, resp, ttl)
}

func (p *Public) galleryItem(ctx context.Context, photo *models.GalleryPhoto) galleryItem {
	item := galleryItem{
		ID:               photo.ID,
		FirstPublishedAt: photo.FirstPublishedAt,
		DisplayLocations: photo.DisplayLocations,
	}
	if item.DisplayLocations == nil {
		item.DisplayLocations = []string{}
	}
	if img := photo.Image; img != nil {
		item.Title = img.Title
		if img.PhotoCredit != nil {
			item.PhotoCredit = *img.PhotoCredit
		}
		if img.Caption != nil {
			item.Caption = *img.Caption
		}
		item.URL = p.url(ctx, img.Bucket, img.S3Key)
	}
	return item
}

// Home serves the root page.
func (p *Public) Home(w http.ResponseWriter, r *http.Request) {
	p.page(w, r, models.HomeSlug)
}

// Page serves the page with the {slug} URL parameter.
func (p *Public) Page(w http.ResponseWriter, r *http.Request) {
	p.page(w, r, chi.URLParam(r, "slug"))
}

func (p *Public) page(w http.ResponseWriter, r *http.Request, slug string) {
	ctx := r.Context()
	key := cache.PageKey(slug)

	if p.serveCached(w, r, key) {
		return
	}

	page, err := p.Pages.FindBySlug(ctx, slug)
	if err != nil {
		writeStoreError(w, r, "find page", err)
		return
	}
	if page == nil {
		writeError(w, http.StatusNotFound, "Not Found")
		return
	}

	links, err := p.Links.ListLinks(ctx)
	if err != nil {
		writeStoreError(w, r, "list related links", err)
		return
	}
	docs, err := p.Documents.ListDocuments(ctx)
	if err != nil {
		writeStoreError(w, r, "list related documents", err)
		return
	}

	resp := pageResponse{
		Title:            page.Title,
		Slug:             page.Slug,
		Body:             page.Body,
		UpdatedAt:        page.UpdatedAt,
		RelatedLinks:     make([]linkItem, 0, len(links)),
		RelatedDocuments: make([]linkItem, 0, len(docs)),
	}
	for _, l := range links {
		resp.RelatedLinks = append(resp.RelatedLinks, linkItem{Title: l.Title, URL: pageURL(l.Slug)})
	}
	for _, d := range docs {
		resp.RelatedDocuments = append(resp.RelatedDocuments, linkItem{
			Title: d.Title,
			URL:   p.url(ctx, d.Document.Bucket, d.Document.S3Key),
		})
	}

	p.respond(w, r, key, resp, p.FeedTTL)
}

func pageURL(slug string) string {
	if slug == models.HomeSlug {
		return "/"
	}
	return "/pages/" + slug
}

// url resolves an object location, logging and returning "" when it
// cannot be resolved.
func (p *Public) url(ctx context.Context, bucket, key string) string {
	if p.Linker == nil {
		return ""
	}
	u, err := p.Linker.URL(ctx, bucket, key)
	if err != nil {
		slog.Warn("resolve object url failed",
			"request_id", middleware.GetRequestID(ctx),
			"bucket", bucket,
			"key", key,
			"error", err,
		)
		return ""
	}
	return u
}

func (p *Public) serveCached(w http.ResponseWriter, r *http.Request, key string) bool {
	data, ok := p.Cache.Get(r.Context(), key)
	p.Metrics.CacheLookup(ok)
	if !ok {
		w.Header().Set(cacheHeader, "MISS")
		return false
	}
	w.Header().Set(cacheHeader, "HIT")
	writeRawJSON(w, data)
	return true
}

func (p *Public) respond(w http.ResponseWriter, r *http.Request, key string, v any, ttl time.Duration) {
	data, err := json.Marshal(v)
	if err != nil {
		slog.Error("encode response failed", "request_id", middleware.GetRequestID(r.Context()), "error", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if ttl > 0 {
		p.Cache.Set(r.Context(), key, data, ttl)
	}
	writeRawJSON(w, data)
}
