// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"gallerycms/internal/admin"
	"gallerycms/internal/models"
	"gallerycms/internal/store"
)

// ImagesList returns the admin list view of images, searched with ?q=.
func (a *Admin) ImagesList(w http.ResponseWriter, r *http.Request) {
	ma, _ := a.Registry.Lookup(admin.ModelImage)
	images, err := a.Images.List(r.Context(), r.URL.Query().Get("q"), ma.SearchFields, pageFromQuery(r))
	if err != nil {
		writeStoreError(w, r, "list images", err)
		return
	}
	writeJSON(w, http.StatusOK, listView(ma, images, func(i *models.Image) uuid.UUID { return i.ID }))
}

// ImageGet returns one image record.
func (a *Admin) ImageGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	img, err := a.Images.FindByID(r.Context(), id)
	if err != nil {
		writeStoreError(w, r, "find image", err)
		return
	}
	if img == nil {
		writeError(w, http.StatusNotFound, "Not Found")
		return
	}
	writeJSON(w, http.StatusOK, img)
}

// ImageCreate registers an image already present in object storage.
func (a *Admin) ImageCreate(w http.ResponseWriter, r *http.Request) {
	f, err := parseForm(w, r, a.Location)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Malformed form body")
		return
	}
	img := &models.Image{
		Title:       f.str("title"),
		PhotoCredit: f.optional("photo_credit"),
		Caption:     f.optional("caption"),
		Bucket:      f.str("bucket"),
		S3Key:       f.str("s3_key"),
	}
	if !a.check(w, admin.ModelImage, f, img) {
		return
	}
	if err := a.Images.Create(r.Context(), img); err != nil {
		writeStoreError(w, r, "create image", err)
		return
	}
	writeJSON(w, http.StatusCreated, img)
}

// ImageUpdate edits an image's title, credit and caption.
func (a *Admin) ImageUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	img, err := a.Images.FindByID(r.Context(), id)
	if err != nil {
		writeStoreError(w, r, "find image", err)
		return
	}
	if img == nil {
		writeError(w, http.StatusNotFound, "Not Found")
		return
	}

	f, err := parseForm(w, r, a.Location)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Malformed form body")
		return
	}
	if f.has("title") {
		img.Title = f.str("title")
	}
	if f.has("photo_credit") {
		img.PhotoCredit = f.optional("photo_credit")
	}
	if f.has("caption") {
		img.Caption = f.optional("caption")
	}
	if !a.check(w, admin.ModelImage, f, img) {
		return
	}

	if err := a.Images.Update(r.Context(), img); err != nil {
		writeStoreError(w, r, "update image", err)
		return
	}
	// Gallery feeds carry image titles and credits.
	a.invalidateGallery(r.Context(), admin.ModelImage, img.ID, store.ActionSave)
	writeJSON(w, http.StatusOK, img)
}

// ImageDelete removes an image record, the photos using it, and the stored
// object.
func (a *Admin) ImageDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	img, err := a.Images.Delete(r.Context(), id)
	if err != nil {
		writeStoreError(w, r, "delete image", err)
		return
	}
	if img == nil {
		writeError(w, http.StatusNotFound, "Not Found")
		return
	}
	if err := a.Linker.Delete(r.Context(), img.Bucket, img.S3Key); err != nil {
		slog.Warn("delete image object failed", "image_id", img.ID, "key", img.S3Key, "error", err)
	}
	a.invalidateGallery(r.Context(), admin.ModelImage, img.ID, store.ActionDelete)
	w.WriteHeader(http.StatusNoContent)
}

// DocumentsList returns the admin list view of documents.
func (a *Admin) DocumentsList(w http.ResponseWriter, r *http.Request) {
	ma, _ := a.Registry.Lookup(admin.ModelDocument)
	docs, err := a.Documents.List(r.Context(), r.URL.Query().Get("q"), pageFromQuery(r))
	if err != nil {
		writeStoreError(w, r, "list documents", err)
		return
	}
	writeJSON(w, http.StatusOK, listView(ma, docs, func(d *models.Document) uuid.UUID { return d.ID }))
}

// DocumentGet returns one document record.
func (a *Admin) DocumentGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	doc, err := a.Documents.FindByID(r.Context(), id)
	if err != nil {
		writeStoreError(w, r, "find document", err)
		return
	}
	if doc == nil {
		writeError(w, http.StatusNotFound, "Not Found")
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

// DocumentCreate registers a document already present in object storage.
func (a *Admin) DocumentCreate(w http.ResponseWriter, r *http.Request) {
	f, err := parseForm(w, r, a.Location)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Malformed form body")
		return
	}
	doc := &models.Document{
		Title:  f.str("title"),
		Bucket: f.str("bucket"),
		S3Key:  f.str("s3_key"),
	}
	if !a.check(w, admin.ModelDocument, f, doc) {
		return
	}
	if err := a.Documents.Create(r.Context(), doc); err != nil {
		writeStoreError(w, r, "create document", err)
		return
	}
	writeJSON(w, http.StatusCreated, doc)
}

// DocumentDelete removes a document record, the related documents using
// it, and the stored object.
func (a *Admin) DocumentDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	doc, err := a.Documents.Delete(r.Context(), id)
	if err != nil {
		writeStoreError(w, r, "delete document", err)
		return
	}
	if doc == nil {
		writeError(w, http.StatusNotFound, "Not Found")
		return
	}
	if err := a.Linker.Delete(r.Context(), doc.Bucket, doc.S3Key); err != nil {
		slog.Warn("delete document object failed", "document_id", doc.ID, "key", doc.S3Key, "error", err)
	}
	a.invalidatePages(r.Context(), admin.ModelDocument, doc.ID, store.ActionDelete)
	w.WriteHeader(http.StatusNoContent)
}

// check merges form parse errors with struct tag failures on v. It writes
// the response and returns false when the submission is rejected.
func (a *Admin) check(w http.ResponseWriter, model string, f *form, v any) bool {
	verr := f.errs
	tagErrs, err := checkStruct(a.validate, v)
	if err != nil {
		slog.Error("struct validation failed", "model", model, "error", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return false
	}
	verr.Merge(tagErrs)
	if verr.HasErrors() {
		a.rejected(w, model, verr)
		return false
	}
	return true
}
