// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"github.com/google/uuid"

	"gallerycms/internal/admin"
	"gallerycms/internal/cache"
	"gallerycms/internal/models"
	"gallerycms/internal/store"
)

// PagesList returns the admin list view of home pages.
func (a *Admin) PagesList(w http.ResponseWriter, r *http.Request) {
	ma, _ := a.Registry.Lookup(admin.ModelHomePage)
	pages, err := a.Pages.List(r.Context())
	if err != nil {
		writeStoreError(w, r, "list pages", err)
		return
	}
	writeJSON(w, http.StatusOK, listView(ma, pages, func(p *models.HomePage) uuid.UUID { return p.ID }))
}

// PageGet returns one page.
func (a *Admin) PageGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	p, err := a.Pages.FindByID(r.Context(), id)
	if err != nil {
		writeStoreError(w, r, "find page", err)
		return
	}
	if p == nil {
		writeError(w, http.StatusNotFound, "Not Found")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// PageCreate stores a new page. A blank slug is derived from the title.
func (a *Admin) PageCreate(w http.ResponseWriter, r *http.Request) {
	f, err := parseForm(w, r, a.Location)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Malformed form body")
		return
	}
	p := &models.HomePage{
		Title: f.str("title"),
		Body:  f.values.Get("body"),
	}
	setSlug(f, p, f.str("slug"))
	if !a.check(w, admin.ModelHomePage, f, p) {
		return
	}
	if err := a.Pages.Create(r.Context(), p); err != nil {
		writeStoreError(w, r, "create page", err)
		return
	}
	// No other page links to a page that did not exist yet.
	a.invalidatePage(r.Context(), p.ID, store.ActionSave, cache.PageKey(p.Slug))
	writeJSON(w, http.StatusCreated, p)
}

// PageUpdate edits a page. Fields absent from the form are kept.
func (a *Admin) PageUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	p, err := a.Pages.FindByID(r.Context(), id)
	if err != nil {
		writeStoreError(w, r, "find page", err)
		return
	}
	if p == nil {
		writeError(w, http.StatusNotFound, "Not Found")
		return
	}

	f, err := parseForm(w, r, a.Location)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Malformed form body")
		return
	}
	oldSlug := p.Slug
	if f.has("title") {
		p.Title = f.str("title")
	}
	if f.has("slug") {
		setSlug(f, p, f.str("slug"))
	}
	if f.has("body") {
		p.Body = f.values.Get("body")
	}
	if !a.check(w, admin.ModelHomePage, f, p) {
		return
	}

	if err := a.Pages.Update(r.Context(), p); err != nil {
		writeStoreError(w, r, "update page", err)
		return
	}
	if p.Slug == oldSlug {
		a.invalidatePage(r.Context(), p.ID, store.ActionSave, cache.PageKey(p.Slug))
	} else {
		// Related links on every page carry the slug.
		a.invalidatePages(r.Context(), admin.ModelHomePage, p.ID, store.ActionSave)
	}
	writeJSON(w, http.StatusOK, p)
}

// PageDelete removes a page and the related links pointing at it.
func (a *Admin) PageDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := a.Pages.Delete(r.Context(), id); err != nil {
		writeStoreError(w, r, "delete page", err)
		return
	}
	a.invalidatePages(r.Context(), admin.ModelHomePage, id, store.ActionDelete)
	w.WriteHeader(http.StatusNoContent)
}

// MsgInvalidSlug is reported when a page slug normalizes to nothing.
const MsgInvalidSlug = "Enter a slug made of letters, numbers or hyphens."

// setSlug stores the normalized form of submitted on p, deriving it from
// the title when blank. A slug that normalizes to nothing is a field error.
func setSlug(f *form, p *models.HomePage, submitted string) {
	p.Slug = store.PageSlug(submitted, p.Title)
	// A blank title is already reported as required.
	if p.Slug == "" && (submitted != "" || p.Title != "") {
		f.errs.Add("slug", MsgInvalidSlug)
	}
}
