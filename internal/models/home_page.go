// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// HomeSlug is the slug of the page served at the site root.
const HomeSlug = "home"

// HomePage is the site's landing page type. Body holds editor-authored rich
// text, stored sanitized and passed through to clients as-is.
type HomePage struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title" validate:"required,max=255"`
	Slug      string    `json:"slug" validate:"max=255"`
	Body      string    `json:"body" validate:"max=200000"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *HomePage) String() string {
	return p.Title
}

// IsRoot reports whether this page is served at "/".
func (p *HomePage) IsRoot() bool {
	return p.Slug == HomeSlug
}

// Column returns the list-view value for the named column.
func (p *HomePage) Column(name string) string {
	switch name {
	case "title":
		return p.Title
	case "slug":
		return p.Slug
	case "updated_at":
		return p.UpdatedAt.Format(ListDateFormat)
	}
	return ""
}
