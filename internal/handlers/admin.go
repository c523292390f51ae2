// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"gallerycms/internal/admin"
	"gallerycms/internal/cache"
	"gallerycms/internal/models"
	"gallerycms/internal/publish"
	"gallerycms/internal/store"
)

// AdminDeps lists what the admin handlers are built from. Linker may be a
// nil *storage.Client when object storage is not configured.
type AdminDeps struct {
	Registry         *admin.Registry
	Photos           GalleryPhotoStore
	Images           ImageStore
	Documents        DocumentStore
	Pages            HomePageStore
	SimplePhotos     SnippetStore[models.SimplePhoto]
	SimpleThings     SnippetStore[models.SimpleThing]
	RelatedLinks     SnippetStore[models.RelatedLink]
	RelatedDocuments SnippetStore[models.RelatedDocument]
	CacheLog         CacheLogger
	Cache            FeedCache
	Linker           ObjectLinker
	Metrics          Recorder
	Clock            publish.Clock
	// Location is used for submitted date/times without a zone.
	Location *time.Location
}

// Admin groups the admin API handlers and their dependencies.
type Admin struct {
	AdminDeps
	validate *validator.Validate
}

// NewAdmin creates the admin handler group.
func NewAdmin(deps AdminDeps) *Admin {
	if deps.Clock == nil {
		deps.Clock = publish.SystemClock
	}
	if deps.Location == nil {
		deps.Location = time.UTC
	}
	return &Admin{AdminDeps: deps, validate: newValidator()}
}

type menuResponse struct {
	Menu     []admin.ModelAdmin `json:"menu"`
	Settings []admin.ModelAdmin `json:"settings"`
}

// Menu lists the registered models for the admin navigation.
func (a *Admin) Menu(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, menuResponse{
		Menu:     a.Registry.Menu(),
		Settings: a.Registry.SettingsMenu(),
	})
}

// cacheLogLimit bounds the cache log view.
const cacheLogLimit = 100

// CacheLogList lists the most recent cache invalidations.
func (a *Admin) CacheLogList(w http.ResponseWriter, r *http.Request) {
	entries, err := a.CacheLog.RecentEntries(r.Context(), cacheLogLimit)
	if err != nil {
		writeStoreError(w, r, "list cache log", err)
		return
	}
	if entries == nil {
		entries = []store.CacheLogEntry{}
	}
	writeJSON(w, http.StatusOK, entries)
}

// rejected records metrics for a rejected submission and writes the 422.
func (a *Admin) rejected(w http.ResponseWriter, model string, verr *publish.ValidationError) {
	for _, fe := range verr.Errors {
		a.Metrics.ValidationFailed(model, fe.Field)
	}
	writeValidation(w, verr)
}

// invalidateGallery drops every cached gallery feed after a change to a
// photo or an image shown in one.
func (a *Admin) invalidateGallery(ctx context.Context, model string, id uuid.UUID, action string) {
	a.Cache.InvalidatePrefix(ctx, cache.GalleryKey(""))
	a.CacheLog.Log(ctx, model, id, action)
}

// invalidatePages drops every cached public page. Related links and
// documents are shown on all pages, so any change touches every entry.
func (a *Admin) invalidatePages(ctx context.Context, model string, id uuid.UUID, action string) {
	a.Cache.InvalidatePrefix(ctx, cache.PageKey(""))
	a.CacheLog.Log(ctx, model, id, action)
}

// invalidatePage drops the cached copies of the given pages only.
func (a *Admin) invalidatePage(ctx context.Context, id uuid.UUID, action string, keys ...string) {
	a.Cache.Invalidate(ctx, keys...)
	a.CacheLog.Log(ctx, admin.ModelHomePage, id, action)
}

// listView projects items through the model's registration.
func listView[T any, PT interface {
	*T
	admin.Lister
}](ma admin.ModelAdmin, items []T, id func(*T) uuid.UUID) *admin.ListView {
	view := ma.NewListView()
	for i := range items {
		item := &items[i]
		view.Rows = append(view.Rows, ma.Project(id(item).String(), PT(item)))
	}
	return view
}
