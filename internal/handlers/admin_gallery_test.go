// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gallerycms/internal/admin"
	"gallerycms/internal/models"
	"gallerycms/internal/publish"
	"gallerycms/internal/store"
)

func decodeErrors(t *testing.T, rec *httptest.ResponseRecorder) map[string][]string {
	t.Helper()
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code, rec.Body.String())
	var body validationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Errors
}

func TestGalleryPhotoCreate(t *testing.T) {
	fx := newAdminFixture(t)
	imageID := uuid.New()
	newID := uuid.New()

	fx.photos.On("Save", mock.Anything, mock.MatchedBy(func(p *models.GalleryPhoto) bool {
		return p.ImageID == imageID && p.Live && p.ID == uuid.Nil
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*models.GalleryPhoto).ID = newID
	}).Return(nil).Once()

	rec := httptest.NewRecorder()
	fx.admin.GalleryPhotoCreate(rec, postForm(http.MethodPost, "/admin/gallery-photos", url.Values{
		"image":             {imageID.String()},
		"live":              {"on"},
		"display_locations": {"homepage, news", "homepage"},
	}))

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var got models.GalleryPhoto
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, newID, got.ID)
	assert.Equal(t, []string{"homepage", "news"}, got.DisplayLocations)

	assert.Equal(t, []bool{true}, fx.recorder.saves)
	assert.Equal(t, []string{"gallery"}, fx.cache.prefixes)
	require.Len(t, fx.log.entries, 1)
	assert.Equal(t, logEntry{entity: admin.ModelGalleryPhoto, id: newID, action: store.ActionSave}, fx.log.entries[0])
}

func TestGalleryPhotoCreateRejectsSchedule(t *testing.T) {
	imageID := uuid.New().String()

	tests := []struct {
		name   string
		values url.Values
		want   map[string][]string
	}{
		{
			name: "go live after expiry",
			values: url.Values{
				"image":      {imageID},
				"go_live_at": {"2025-01-10T00:00"},
				"expire_at":  {"2025-01-05T00:00"},
			},
			want: map[string][]string{
				"go_live_at": {publish.MsgGoLiveAfterExpiry},
				"expire_at":  {publish.MsgGoLiveAfterExpiry},
			},
		},
		{
			name: "expiry in the past",
			values: url.Values{
				"image":     {imageID},
				"expire_at": {"2024-12-31 09:00"},
			},
			want: map[string][]string{
				"expire_at": {publish.MsgExpiryInPast},
			},
		},
		{
			name: "both rules",
			values: url.Values{
				"image":      {imageID},
				"go_live_at": {"2024-12-31T12:00:00Z"},
				"expire_at":  {"2024-12-30T00:00:00Z"},
			},
			want: map[string][]string{
				"go_live_at": {publish.MsgGoLiveAfterExpiry},
				"expire_at":  {publish.MsgGoLiveAfterExpiry, publish.MsgExpiryInPast},
			},
		},
		{
			name:   "missing image",
			values: url.Values{"live": {"on"}},
			want: map[string][]string{
				"image": {publish.MsgRequired},
			},
		},
		{
			name: "unparseable values",
			values: url.Values{
				"image":     {"not-a-uuid"},
				"expire_at": {"next tuesday"},
			},
			want: map[string][]string{
				"image":     {MsgInvalidChoice},
				"expire_at": {MsgInvalidDateTime},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := newAdminFixture(t)
			rec := httptest.NewRecorder()
			fx.admin.GalleryPhotoCreate(rec, postForm(http.MethodPost, "/admin/gallery-photos", tt.values))

			assert.Equal(t, tt.want, decodeErrors(t, rec))
			fx.photos.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
			assert.Empty(t, fx.cache.prefixes)
			assert.NotEmpty(t, fx.recorder.failures)
		})
	}
}

func TestGalleryPhotoCreateUnknownImage(t *testing.T) {
	fx := newAdminFixture(t)
	fkErr := fmt.Errorf("insert gallery photo: %w", &pgconn.PgError{Code: "23503"})
	fx.photos.On("Save", mock.Anything, mock.Anything).Return(fkErr).Once()

	rec := httptest.NewRecorder()
	fx.admin.GalleryPhotoCreate(rec, postForm(http.MethodPost, "/admin/gallery-photos", url.Values{
		"image": {uuid.New().String()},
	}))

	assert.Equal(t, map[string][]string{"image": {MsgInvalidChoice}}, decodeErrors(t, rec))
	assert.Equal(t, []string{admin.ModelGalleryPhoto + ".image"}, fx.recorder.failures)
}

func TestGalleryPhotoUpdateKeepsAbsentFields(t *testing.T) {
	fx := newAdminFixture(t)
	id := uuid.New()
	goLive := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	firstPublished := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	prev := &models.GalleryPhoto{
		ID:               id,
		ImageID:          uuid.New(),
		GoLiveAt:         &goLive,
		FirstPublishedAt: &firstPublished,
		DisplayLocations: []string{"homepage"},
	}
	fx.photos.On("FindByID", mock.Anything, id).Return(prev, nil).Once()
	fx.photos.On("Save", mock.Anything, mock.MatchedBy(func(p *models.GalleryPhoto) bool {
		return p.ID == id &&
			p.Live &&
			p.ImageID == prev.ImageID &&
			p.GoLiveAt != nil && p.GoLiveAt.Equal(goLive) &&
			p.FirstPublishedAt != nil && p.FirstPublishedAt.Equal(firstPublished) &&
			len(p.DisplayLocations) == 1
	})).Return(nil).Once()

	req := postForm(http.MethodPut, "/admin/gallery-photos/"+id.String(), url.Values{
		"live":               {"true"},
		"first_published_at": {""},
	})
	rec := httptest.NewRecorder()
	fx.admin.GalleryPhotoUpdate(rec, withParam(req, "id", id.String()))

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, []bool{true}, fx.recorder.saves)
}

func TestGalleryPhotoUpdateChecksStoredWindow(t *testing.T) {
	fx := newAdminFixture(t)
	id := uuid.New()
	expire := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	prev := &models.GalleryPhoto{ID: id, ImageID: uuid.New(), ExpireAt: &expire}
	fx.photos.On("FindByID", mock.Anything, id).Return(prev, nil).Once()

	req := postForm(http.MethodPut, "/", url.Values{"go_live_at": {"2025-04-01"}})
	rec := httptest.NewRecorder()
	fx.admin.GalleryPhotoUpdate(rec, withParam(req, "id", id.String()))

	assert.Equal(t, map[string][]string{
		"go_live_at": {publish.MsgGoLiveAfterExpiry},
		"expire_at":  {publish.MsgGoLiveAfterExpiry},
	}, decodeErrors(t, rec))
}

func TestGalleryPhotoUpdateNotFound(t *testing.T) {
	fx := newAdminFixture(t)
	id := uuid.New()
	fx.photos.On("FindByID", mock.Anything, id).Return(nil, nil).Once()

	rec := httptest.NewRecorder()
	fx.admin.GalleryPhotoUpdate(rec, withParam(postForm(http.MethodPut, "/", url.Values{}), "id", id.String()))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	fx.admin.GalleryPhotoUpdate(rec, withParam(postForm(http.MethodPut, "/", url.Values{}), "id", "nope"))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGalleryPhotoDelete(t *testing.T) {
	fx := newAdminFixture(t)
	id := uuid.New()
	fx.photos.On("Delete", mock.Anything, id).Return(nil).Once()

	rec := httptest.NewRecorder()
	fx.admin.GalleryPhotoDelete(rec, withParam(httptest.NewRequest(http.MethodDelete, "/", nil), "id", id.String()))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, []string{"gallery"}, fx.cache.prefixes)
	require.Len(t, fx.log.entries, 1)
	assert.Equal(t, store.ActionDelete, fx.log.entries[0].action)
}

func TestGalleryPhotoDeleteMissing(t *testing.T) {
	fx := newAdminFixture(t)
	id := uuid.New()
	fx.photos.On("Delete", mock.Anything, id).Return(fmt.Errorf("delete gallery photo: %w", sql.ErrNoRows)).Once()

	rec := httptest.NewRecorder()
	fx.admin.GalleryPhotoDelete(rec, withParam(httptest.NewRequest(http.MethodDelete, "/", nil), "id", id.String()))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, fx.cache.prefixes)
}

func TestGalleryPhotosList(t *testing.T) {
	fx := newAdminFixture(t)
	published := time.Date(2024, 12, 24, 18, 30, 0, 0, time.UTC)
	photo := models.GalleryPhoto{
		ID:               uuid.New(),
		Image:            &models.Image{Title: "Winter Solstice"},
		Live:             true,
		FirstPublishedAt: &published,
		DisplayLocations: []string{"homepage", "news"},
	}

	live := true
	want := store.GalleryPhotoFilter{
		Query:        "winter",
		SearchFields: []string{"image__title", "image__photo_credit", "image__caption"},
		Live:         &live,
		Page:         store.Page{Limit: defaultPerPage, Offset: defaultPerPage},
	}
	fx.photos.On("List", mock.Anything, want).Return([]models.GalleryPhoto{photo}, nil).Once()
	fx.photos.On("Count", mock.Anything, want).Return(51, nil).Once()

	rec := httptest.NewRecorder()
	fx.admin.GalleryPhotosList(rec, httptest.NewRequest(http.MethodGet, "/admin/gallery-photos?q=winter&live=true&page=2", nil))

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var body struct {
		Title   string   `json:"title"`
		Headers []string `json:"headers"`
		Rows    []struct {
			ID      string   `json:"id"`
			Label   string   `json:"label"`
			Columns []string `json:"columns"`
		} `json:"rows"`
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 51, body.Total)
	require.Len(t, body.Rows, 1)
	assert.Equal(t, photo.ID.String(), body.Rows[0].ID)
	assert.Equal(t, "Gallery Photo for Winter Solstice", body.Rows[0].Label)
	assert.Equal(t, []string{"image", "live", "first_published_at", "display_location_names"}, body.Headers)
	assert.Equal(t, []string{"Winter Solstice", "yes", "2024-12-24 18:30", "homepage, news"}, body.Rows[0].Columns)
}

func TestGalleryPhotosListBadLive(t *testing.T) {
	fx := newAdminFixture(t)
	rec := httptest.NewRecorder()
	fx.admin.GalleryPhotosList(rec, httptest.NewRequest(http.MethodGet, "/admin/gallery-photos?live=maybe", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
