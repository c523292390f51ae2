// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"gallerycms/internal/admin"
	"gallerycms/internal/models"
	"gallerycms/internal/store"
)

// CRUD is the handler set of a plainly edited model.
type CRUD interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

// snippet serves one of the small admin records. They have no publishing
// state: submissions pass struct tag validation only.
type snippet[T any, PT interface {
	*T
	admin.Lister
}] struct {
	a     *Admin
	model string
	store SnippetStore[T]
	id    func(*T) uuid.UUID
	// bind copies the fields present in f onto v.
	bind func(f *form, v *T)
	// refField names the form field holding a foreign key, if any.
	refField string
	// changed runs after a successful write; may be nil.
	changed func(ctx context.Context, id uuid.UUID, action string)
}

// Snippets returns the snippet handler sets keyed by URL segment.
func (a *Admin) Snippets() map[string]CRUD {
	return map[string]CRUD{
		"simple-photos": &snippet[models.SimplePhoto, *models.SimplePhoto]{
			a: a, model: admin.ModelSimplePhoto, store: a.SimplePhotos,
			id: func(v *models.SimplePhoto) uuid.UUID { return v.ID },
			bind: func(f *form, v *models.SimplePhoto) {
				if f.has("title") {
					v.Title = f.str("title")
				}
				if f.has("image_id") {
					v.ImageID = f.id("image_id")
				}
			},
			refField: "image_id",
		},
		"simple-things": &snippet[models.SimpleThing, *models.SimpleThing]{
			a: a, model: admin.ModelSimpleThing, store: a.SimpleThings,
			id: func(v *models.SimpleThing) uuid.UUID { return v.ID },
			bind: func(f *form, v *models.SimpleThing) {
				if f.has("title") {
					v.Title = f.str("title")
				}
				if f.has("featured") {
					v.Featured = f.boolean("featured")
				}
			},
		},
		"related-links": &snippet[models.RelatedLink, *models.RelatedLink]{
			a: a, model: admin.ModelRelatedLink, store: a.RelatedLinks,
			id: func(v *models.RelatedLink) uuid.UUID { return v.ID },
			bind: func(f *form, v *models.RelatedLink) {
				if f.has("title") {
					v.Title = f.str("title")
				}
				if f.has("page_id") {
					v.PageID = f.id("page_id")
				}
			},
			refField: "page_id",
			changed: func(ctx context.Context, id uuid.UUID, action string) {
				a.invalidatePages(ctx, admin.ModelRelatedLink, id, action)
			},
		},
		"related-documents": &snippet[models.RelatedDocument, *models.RelatedDocument]{
			a: a, model: admin.ModelRelatedDocument, store: a.RelatedDocuments,
			id: func(v *models.RelatedDocument) uuid.UUID { return v.ID },
			bind: func(f *form, v *models.RelatedDocument) {
				if f.has("title") {
					v.Title = f.str("title")
				}
				if f.has("document_id") {
					v.DocumentID = f.id("document_id")
				}
			},
			refField: "document_id",
			changed: func(ctx context.Context, id uuid.UUID, action string) {
				a.invalidatePages(ctx, admin.ModelRelatedDocument, id, action)
			},
		},
	}
}

func (s *snippet[T, PT]) List(w http.ResponseWriter, r *http.Request) {
	ma, _ := s.a.Registry.Lookup(s.model)
	items, err := s.store.List(r.Context(), r.URL.Query().Get("q"), pageFromQuery(r))
	if err != nil {
		writeStoreError(w, r, "list "+s.model, err)
		return
	}
	writeJSON(w, http.StatusOK, listView[T, PT](ma, items, s.id))
}

func (s *snippet[T, PT]) Get(w http.ResponseWriter, r *http.Request) {
	v, ok := s.find(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (s *snippet[T, PT]) Create(w http.ResponseWriter, r *http.Request) {
	s.save(w, r, new(T), http.StatusCreated)
}

func (s *snippet[T, PT]) Update(w http.ResponseWriter, r *http.Request) {
	v, ok := s.find(w, r)
	if !ok {
		return
	}
	s.save(w, r, v, http.StatusOK)
}

func (s *snippet[T, PT]) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := s.store.Delete(r.Context(), id); err != nil {
		writeStoreError(w, r, "delete "+s.model, err)
		return
	}
	if s.changed != nil {
		s.changed(r.Context(), id, store.ActionDelete)
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *snippet[T, PT]) find(w http.ResponseWriter, r *http.Request) (*T, bool) {
	id, ok := pathID(w, r)
	if !ok {
		return nil, false
	}
	v, err := s.store.FindByID(r.Context(), id)
	if err != nil {
		writeStoreError(w, r, "find "+s.model, err)
		return nil, false
	}
	if v == nil {
		writeError(w, http.StatusNotFound, "Not Found")
		return nil, false
	}
	return v, true
}

func (s *snippet[T, PT]) save(w http.ResponseWriter, r *http.Request, v *T, status int) {
	f, err := parseForm(w, r, s.a.Location)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Malformed form body")
		return
	}
	s.bind(f, v)
	if !s.a.check(w, s.model, f, v) {
		return
	}

	if err := s.store.Save(r.Context(), v); err != nil {
		if s.refField != "" && store.IsForeignKeyViolation(err) {
			f.errs.Add(s.refField, MsgInvalidChoice)
			s.a.rejected(w, s.model, f.errs)
			return
		}
		writeStoreError(w, r, "save "+s.model, err)
		return
	}
	if s.changed != nil {
		s.changed(r.Context(), s.id(v), store.ActionSave)
	}
	writeJSON(w, status, v)
}
