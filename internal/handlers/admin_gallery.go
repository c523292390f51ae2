// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"gallerycms/internal/admin"
	"gallerycms/internal/models"
	"gallerycms/internal/publish"
	"gallerycms/internal/store"
)

type galleryListResponse struct {
	*admin.ListView
	Total int `json:"total"`
}

// GalleryPhotosList returns the admin list view of gallery photos. It
// accepts ?q= (searched over the registered search fields), ?live=,
// ?location= and ?page=.
func (a *Admin) GalleryPhotosList(w http.ResponseWriter, r *http.Request) {
	ma, _ := a.Registry.Lookup(admin.ModelGalleryPhoto)
	q := r.URL.Query()

	f := store.GalleryPhotoFilter{
		Query:           q.Get("q"),
		SearchFields:    ma.SearchFields,
		DisplayLocation: q.Get("location"),
		Page:            pageFromQuery(r),
	}
	if v := q.Get("live"); v != "" {
		live, err := strconv.ParseBool(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "live must be true or false")
			return
		}
		f.Live = &live
	}

	photos, err := a.Photos.List(r.Context(), f)
	if err != nil {
		writeStoreError(w, r, "list gallery photos", err)
		return
	}
	total, err := a.Photos.Count(r.Context(), f)
	if err != nil {
		writeStoreError(w, r, "count gallery photos", err)
		return
	}

	writeJSON(w, http.StatusOK, galleryListResponse{
		ListView: listView(ma, photos, func(p *models.GalleryPhoto) uuid.UUID { return p.ID }),
		Total:    total,
	})
}

// GalleryPhotoGet returns one gallery photo.
func (a *Admin) GalleryPhotoGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	p, err := a.Photos.FindByID(r.Context(), id)
	if err != nil {
		writeStoreError(w, r, "find gallery photo", err)
		return
	}
	if p == nil {
		writeError(w, http.StatusNotFound, "Not Found")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// GalleryPhotoCreate validates a submitted gallery photo and stores it.
func (a *Admin) GalleryPhotoCreate(w http.ResponseWriter, r *http.Request) {
	a.saveGalleryPhoto(w, r, nil)
}

// GalleryPhotoUpdate validates a submission against the stored photo and
// writes the merged result. Fields absent from the form keep their stored
// values.
func (a *Admin) GalleryPhotoUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	prev, err := a.Photos.FindByID(r.Context(), id)
	if err != nil {
		writeStoreError(w, r, "find gallery photo", err)
		return
	}
	if prev == nil {
		writeError(w, http.StatusNotFound, "Not Found")
		return
	}
	a.saveGalleryPhoto(w, r, prev)
}

func (a *Admin) saveGalleryPhoto(w http.ResponseWriter, r *http.Request, prev *models.GalleryPhoto) {
	ctx := r.Context()
	f, err := parseForm(w, r, a.Location)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Malformed form body")
		return
	}

	sub := gallerySubmission(f)
	verr := f.errs
	cleaned, err := publish.Validate(sub, prev, a.Clock())
	if err != nil {
		schedErr, ok := publish.AsValidationError(err)
		if !ok {
			writeStoreError(w, r, "validate gallery photo", err)
			return
		}
		// A field that failed to parse already carries its error.
		parsed := f.errs.ByField()
		for _, fe := range schedErr.Errors {
			if _, bad := parsed[fe.Field]; !bad {
				verr.Add(fe.Field, fe.Message)
			}
		}
	}
	if verr.HasErrors() {
		a.rejected(w, admin.ModelGalleryPhoto, verr)
		return
	}

	var photo models.GalleryPhoto
	if prev != nil {
		photo = *prev
	}
	cleaned.Apply(&photo)

	if err := a.Photos.Save(ctx, &photo); err != nil {
		if store.IsForeignKeyViolation(err) {
			verr.Add(publish.FieldImage, MsgInvalidChoice)
			a.rejected(w, admin.ModelGalleryPhoto, verr)
			return
		}
		writeStoreError(w, r, "save gallery photo", err)
		return
	}

	a.Metrics.PhotoSaved(photo.Live)
	a.invalidateGallery(ctx, admin.ModelGalleryPhoto, photo.ID, store.ActionSave)

	status := http.StatusOK
	if prev == nil {
		status = http.StatusCreated
	}
	writeJSON(w, status, &photo)
}

// GalleryPhotoDelete removes a gallery photo.
func (a *Admin) GalleryPhotoDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := a.Photos.Delete(r.Context(), id); err != nil {
		writeStoreError(w, r, "delete gallery photo", err)
		return
	}
	a.invalidateGallery(r.Context(), admin.ModelGalleryPhoto, id, store.ActionDelete)
	w.WriteHeader(http.StatusNoContent)
}
