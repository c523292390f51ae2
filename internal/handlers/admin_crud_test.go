// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

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

func TestSnippetsCoverRegisteredModels(t *testing.T) {
	fx := newAdminFixture(t)
	snippets := fx.admin.Snippets()

	for _, seg := range []string{"simple-photos", "simple-things", "related-links", "related-documents"} {
		assert.Contains(t, snippets, seg)
	}
}

func TestSimpleThingCreateRequiresTitle(t *testing.T) {
	fx := newAdminFixture(t)
	rec := httptest.NewRecorder()
	fx.admin.Snippets()["simple-things"].Create(rec, postForm(http.MethodPost, "/", url.Values{"featured": {"on"}}))

	assert.Equal(t, map[string][]string{"title": {publish.MsgRequired}}, decodeErrors(t, rec))
	assert.Equal(t, []string{admin.ModelSimpleThing + ".title"}, fx.recorder.failures)
}

func TestSimpleThingCreate(t *testing.T) {
	fx := newAdminFixture(t)
	fx.things.On("Save", mock.Anything, &models.SimpleThing{Title: "Lamp", Featured: true}).Return(nil).Once()

	rec := httptest.NewRecorder()
	fx.admin.Snippets()["simple-things"].Create(rec, postForm(http.MethodPost, "/", url.Values{
		"title":    {" Lamp "},
		"featured": {"on"},
	}))

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Empty(t, fx.cache.prefixes)
	assert.Empty(t, fx.log.entries)
}

func TestSimpleThingUpdateKeepsAbsentFields(t *testing.T) {
	fx := newAdminFixture(t)
	id := uuid.New()
	fx.things.On("FindByID", mock.Anything, id).Return(&models.SimpleThing{ID: id, Title: "Lamp", Featured: true}, nil).Once()
	fx.things.On("Save", mock.Anything, &models.SimpleThing{ID: id, Title: "Desk lamp", Featured: true}).Return(nil).Once()

	req := withParam(postForm(http.MethodPut, "/", url.Values{"title": {"Desk lamp"}}), "id", id.String())
	rec := httptest.NewRecorder()
	fx.admin.Snippets()["simple-things"].Update(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestRelatedLinkCreateInvalidatesPages(t *testing.T) {
	fx := newAdminFixture(t)
	pageID := uuid.New()
	linkID := uuid.New()
	fx.links.On("Save", mock.Anything, mock.AnythingOfType("*models.RelatedLink")).Run(func(args mock.Arguments) {
		args.Get(1).(*models.RelatedLink).ID = linkID
	}).Return(nil).Once()

	rec := httptest.NewRecorder()
	fx.admin.Snippets()["related-links"].Create(rec, postForm(http.MethodPost, "/", url.Values{
		"title":   {"About us"},
		"page_id": {pageID.String()},
	}))

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var got models.RelatedLink
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, linkID, got.ID)
	assert.Equal(t, pageID, got.PageID)
	assert.Equal(t, []string{"page:"}, fx.cache.prefixes)
	assert.Equal(t, []logEntry{{entity: admin.ModelRelatedLink, id: linkID, action: store.ActionSave}}, fx.log.entries)
}

func TestRelatedDocumentUnknownDocument(t *testing.T) {
	fx := newAdminFixture(t)
	fkErr := fmt.Errorf("insert related document: %w", &pgconn.PgError{Code: "23503"})
	fx.docs.On("Save", mock.Anything, mock.Anything).Return(fkErr).Once()

	rec := httptest.NewRecorder()
	fx.admin.Snippets()["related-documents"].Create(rec, postForm(http.MethodPost, "/", url.Values{
		"title":       {"Annual report"},
		"document_id": {uuid.New().String()},
	}))

	assert.Equal(t, map[string][]string{"document_id": {MsgInvalidChoice}}, decodeErrors(t, rec))
	assert.Empty(t, fx.cache.prefixes)
}

func TestRelatedLinkDelete(t *testing.T) {
	fx := newAdminFixture(t)
	id := uuid.New()
	fx.links.On("Delete", mock.Anything, id).Return(nil).Once()

	rec := httptest.NewRecorder()
	fx.admin.Snippets()["related-links"].Delete(rec, withParam(httptest.NewRequest(http.MethodDelete, "/", nil), "id", id.String()))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, []string{"page:"}, fx.cache.prefixes)
}

func TestSimpleThingsList(t *testing.T) {
	fx := newAdminFixture(t)
	items := []models.SimpleThing{{ID: uuid.New(), Title: "Lamp", Featured: true}}
	fx.things.On("List", mock.Anything, "lam", store.Page{Limit: defaultPerPage}).Return(items, nil).Once()

	rec := httptest.NewRecorder()
	fx.admin.Snippets()["simple-things"].List(rec, httptest.NewRequest(http.MethodGet, "/?q=lam", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var view admin.ListView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Equal(t, admin.ModelSimpleThing, view.Model)
	require.Len(t, view.Rows, 1)
	assert.Equal(t, "Lamp", view.Rows[0].Label)
}

func TestSnippetGetMissing(t *testing.T) {
	fx := newAdminFixture(t)
	id := uuid.New()
	fx.things.On("FindByID", mock.Anything, id).Return(nil, nil).Once()

	rec := httptest.NewRecorder()
	fx.admin.Snippets()["simple-things"].Get(rec, withParam(httptest.NewRequest(http.MethodGet, "/", nil), "id", id.String()))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPageCreateDuplicateSlug(t *testing.T) {
	fx := newAdminFixture(t)
	dupErr := fmt.Errorf("insert home page: %w", &pgconn.PgError{Code: "23505"})
	fx.pages.On("Create", mock.Anything, mock.Anything).Return(dupErr).Once()

	rec := httptest.NewRecorder()
	fx.admin.PageCreate(rec, postForm(http.MethodPost, "/", url.Values{"title": {"About"}, "slug": {"about"}}))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Empty(t, fx.cache.prefixes)
}

func TestPageUpdate(t *testing.T) {
	fx := newAdminFixture(t)
	id := uuid.New()
	fx.pages.On("FindByID", mock.Anything, id).Return(&models.HomePage{ID: id, Title: "About", Slug: "about", Body: "<p>Old</p>"}, nil).Once()
	fx.pages.On("Update", mock.Anything, &models.HomePage{ID: id, Title: "About", Slug: "about", Body: "<p>New</p>"}).Return(nil).Once()

	req := withParam(postForm(http.MethodPut, "/", url.Values{"body": {"<p>New</p>"}}), "id", id.String())
	rec := httptest.NewRecorder()
	fx.admin.PageUpdate(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, []string{"page:about"}, fx.cache.dropped)
	assert.Empty(t, fx.cache.prefixes)
}

func TestPageUpdateSlugChangeInvalidatesAllPages(t *testing.T) {
	fx := newAdminFixture(t)
	id := uuid.New()
	fx.pages.On("FindByID", mock.Anything, id).Return(&models.HomePage{ID: id, Title: "About", Slug: "about"}, nil).Once()
	fx.pages.On("Update", mock.Anything, &models.HomePage{ID: id, Title: "About", Slug: "about-us"}).Return(nil).Once()

	req := withParam(postForm(http.MethodPut, "/", url.Values{"slug": {"About Us!"}}), "id", id.String())
	rec := httptest.NewRecorder()
	fx.admin.PageUpdate(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, []string{"page:"}, fx.cache.prefixes)
}

func TestPageCreateNormalizesSlug(t *testing.T) {
	fx := newAdminFixture(t)
	fx.pages.On("Create", mock.Anything, &models.HomePage{Title: "Contact", Slug: "a-bc"}).Return(nil).Once()

	rec := httptest.NewRecorder()
	fx.admin.PageCreate(rec, postForm(http.MethodPost, "/", url.Values{"title": {"Contact"}, "slug": {"a b/c"}}))

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, []string{"page:a-bc"}, fx.cache.dropped)
}

func TestPageCreateRejectsEmptySlug(t *testing.T) {
	tests := []struct {
		name   string
		values url.Values
	}{
		{"title without letters or digits", url.Values{"title": {"日本語のページ"}}},
		{"punctuation slug", url.Values{"title": {"About"}, "slug": {"!!!"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := newAdminFixture(t)
			rec := httptest.NewRecorder()
			fx.admin.PageCreate(rec, postForm(http.MethodPost, "/", tt.values))

			assert.Equal(t, map[string][]string{"slug": {MsgInvalidSlug}}, decodeErrors(t, rec))
			fx.pages.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestMenu(t *testing.T) {
	fx := newAdminFixture(t)
	rec := httptest.NewRecorder()
	fx.admin.Menu(rec, httptest.NewRequest(http.MethodGet, "/admin/menu", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body menuResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	var labels []string
	for _, m := range body.Menu {
		labels = append(labels, m.MenuLabel)
	}
	assert.Contains(t, labels, "Gallery Photos")
	for _, m := range body.Settings {
		assert.True(t, m.AddToSettingsMenu)
	}
}

func TestCacheLogList(t *testing.T) {
	fx := newAdminFixture(t)
	rec := httptest.NewRecorder()
	fx.admin.CacheLogList(rec, httptest.NewRequest(http.MethodGet, "/admin/cache-log", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())

	id := uuid.New()
	fx.log.Log(t.Context(), admin.ModelGalleryPhoto, id, store.ActionSave)
	fx.log.Log(t.Context(), admin.ModelGalleryPhoto, id, store.ActionDelete)

	rec = httptest.NewRecorder()
	fx.admin.CacheLogList(rec, httptest.NewRequest(http.MethodGet, "/admin/cache-log", nil))
	var entries []store.CacheLogEntry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, store.ActionDelete, entries[0].Action)
	assert.Equal(t, id, entries[0].EntityID)
}
