// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides the shared fakes for handler tests. Stores are
// testify mocks; the cache, linker, recorder and cache log are small
// in-memory fakes that record what they were asked to do.
package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"gallerycms/internal/admin"
	"gallerycms/internal/models"
	"gallerycms/internal/publish"
	"gallerycms/internal/store"
)

type mockPhotoStore struct{ mock.Mock }

func (m *mockPhotoStore) FindByID(ctx context.Context, id uuid.UUID) (*models.GalleryPhoto, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*models.GalleryPhoto)
	return p, args.Error(1)
}

func (m *mockPhotoStore) Save(ctx context.Context, p *models.GalleryPhoto) error {
	return m.Called(ctx, p).Error(0)
}

func (m *mockPhotoStore) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockPhotoStore) List(ctx context.Context, f store.GalleryPhotoFilter) ([]models.GalleryPhoto, error) {
	args := m.Called(ctx, f)
	photos, _ := args.Get(0).([]models.GalleryPhoto)
	return photos, args.Error(1)
}

func (m *mockPhotoStore) Count(ctx context.Context, f store.GalleryPhotoFilter) (int, error) {
	args := m.Called(ctx, f)
	return args.Int(0), args.Error(1)
}

type mockPageStore struct{ mock.Mock }

func (m *mockPageStore) Create(ctx context.Context, p *models.HomePage) error {
	return m.Called(ctx, p).Error(0)
}

func (m *mockPageStore) Update(ctx context.Context, p *models.HomePage) error {
	return m.Called(ctx, p).Error(0)
}

func (m *mockPageStore) FindByID(ctx context.Context, id uuid.UUID) (*models.HomePage, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*models.HomePage)
	return p, args.Error(1)
}

func (m *mockPageStore) FindBySlug(ctx context.Context, slug string) (*models.HomePage, error) {
	args := m.Called(ctx, slug)
	p, _ := args.Get(0).(*models.HomePage)
	return p, args.Error(1)
}

func (m *mockPageStore) List(ctx context.Context) ([]models.HomePage, error) {
	args := m.Called(ctx)
	pages, _ := args.Get(0).([]models.HomePage)
	return pages, args.Error(1)
}

func (m *mockPageStore) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type mockSnippetStore[T any] struct{ mock.Mock }

func (m *mockSnippetStore[T]) Save(ctx context.Context, v *T) error {
	return m.Called(ctx, v).Error(0)
}

func (m *mockSnippetStore[T]) FindByID(ctx context.Context, id uuid.UUID) (*T, error) {
	args := m.Called(ctx, id)
	v, _ := args.Get(0).(*T)
	return v, args.Error(1)
}

func (m *mockSnippetStore[T]) List(ctx context.Context, query string, page store.Page) ([]T, error) {
	args := m.Called(ctx, query, page)
	items, _ := args.Get(0).([]T)
	return items, args.Error(1)
}

func (m *mockSnippetStore[T]) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type stubLinks []store.PageLink

func (s stubLinks) ListLinks(context.Context) ([]store.PageLink, error) { return s, nil }

type stubDocuments []store.DocumentLink

func (s stubDocuments) ListDocuments(context.Context) ([]store.DocumentLink, error) { return s, nil }

// fakeCache is an in-memory FeedCache that remembers TTLs and prefix
// invalidations.
type fakeCache struct {
	mu       sync.Mutex
	data     map[string][]byte
	ttls     map[string]time.Duration
	prefixes []string
	dropped  []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: make(map[string][]byte), ttls: make(map[string]time.Duration)}
}

func (c *fakeCache) Get(_ context.Context, key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	d, ok := c.data[key]
	return d, ok
}

func (c *fakeCache) Set(_ context.Context, key string, data []byte, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = data
	c.ttls[key] = ttl
}

func (c *fakeCache) Invalidate(_ context.Context, keys ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dropped = append(c.dropped, keys...)
	for _, k := range keys {
		delete(c.data, k)
	}
}

func (c *fakeCache) InvalidatePrefix(_ context.Context, prefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.prefixes = append(c.prefixes, prefix)
	for k := range c.data {
		if strings.HasPrefix(k, prefix) {
			delete(c.data, k)
		}
	}
}

type fakeLinker struct {
	deleted []string
}

func (l *fakeLinker) URL(_ context.Context, bucket, key string) (string, error) {
	return "https://files.test/" + bucket + "/" + key, nil
}

func (l *fakeLinker) Delete(_ context.Context, bucket, key string) error {
	l.deleted = append(l.deleted, bucket+"/"+key)
	return nil
}

type fakeRecorder struct {
	saves    []bool
	failures []string
	hits     int
	misses   int
}

func (r *fakeRecorder) PhotoSaved(live bool) { r.saves = append(r.saves, live) }

func (r *fakeRecorder) ValidationFailed(model, field string) {
	r.failures = append(r.failures, model+"."+field)
}

func (r *fakeRecorder) CacheLookup(hit bool) {
	if hit {
		r.hits++
		return
	}
	r.misses++
}

type logEntry struct {
	entity string
	id     uuid.UUID
	action string
}

type fakeCacheLog struct {
	entries []logEntry
}

func (l *fakeCacheLog) RecentEntries(_ context.Context, limit int) ([]store.CacheLogEntry, error) {
	var out []store.CacheLogEntry
	for i := len(l.entries) - 1; i >= 0 && len(out) < limit; i-- {
		e := l.entries[i]
		out = append(out, store.CacheLogEntry{ID: int64(i + 1), EntityType: e.entity, EntityID: e.id, Action: e.action})
	}
	return out, nil
}

func (l *fakeCacheLog) Log(_ context.Context, entityType string, id uuid.UUID, action string) {
	l.entries = append(l.entries, logEntry{entity: entityType, id: id, action: action})
}

// testNow is the fixed clock of every handler test.
var testNow = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

type adminFixture struct {
	admin    *Admin
	photos   *mockPhotoStore
	pages    *mockPageStore
	things   *mockSnippetStore[models.SimpleThing]
	links    *mockSnippetStore[models.RelatedLink]
	docs     *mockSnippetStore[models.RelatedDocument]
	cache    *fakeCache
	linker   *fakeLinker
	recorder *fakeRecorder
	log      *fakeCacheLog
}

func newAdminFixture(t *testing.T) *adminFixture {
	t.Helper()
	fx := &adminFixture{
		photos:   &mockPhotoStore{},
		pages:    &mockPageStore{},
		things:   &mockSnippetStore[models.SimpleThing]{},
		links:    &mockSnippetStore[models.RelatedLink]{},
		docs:     &mockSnippetStore[models.RelatedDocument]{},
		cache:    newFakeCache(),
		linker:   &fakeLinker{},
		recorder: &fakeRecorder{},
		log:      &fakeCacheLog{},
	}
	fx.admin = NewAdmin(AdminDeps{
		Registry:         admin.Default(),
		Photos:           fx.photos,
		Pages:            fx.pages,
		SimplePhotos:     &mockSnippetStore[models.SimplePhoto]{},
		SimpleThings:     fx.things,
		RelatedLinks:     fx.links,
		RelatedDocuments: fx.docs,
		CacheLog:         fx.log,
		Cache:            fx.cache,
		Linker:           fx.linker,
		Metrics:          fx.recorder,
		Clock:            publish.Fixed(testNow),
	})
	t.Cleanup(func() {
		fx.photos.AssertExpectations(t)
		fx.pages.AssertExpectations(t)
		fx.things.AssertExpectations(t)
		fx.links.AssertExpectations(t)
		fx.docs.AssertExpectations(t)
	})
	return fx
}

// postForm builds a form submission request.
func postForm(method, target string, values url.Values) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// withParam sets a chi URL parameter as the router would.
func withParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}
