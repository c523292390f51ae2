// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// SimplePhoto pairs a title with a single image.
type SimplePhoto struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title" validate:"required,max=255"`
	ImageID   uuid.UUID `json:"image_id" validate:"required"`
	CreatedAt time.Time `json:"created_at"`
}

func (s *SimplePhoto) String() string { return s.Title }

// Column returns the list-view value for the named column.
func (s *SimplePhoto) Column(name string) string {
	switch name {
	case "title":
		return s.Title
	case "image":
		return s.ImageID.String()
	}
	return ""
}

// SimpleThing is a titled record with a single flag.
type SimpleThing struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title" validate:"required,max=255"`
	Featured  bool      `json:"featured"`
	CreatedAt time.Time `json:"created_at"`
}

func (s *SimpleThing) String() string { return s.Title }

// Column returns the list-view value for the named column.
func (s *SimpleThing) Column(name string) string {
	switch name {
	case "title":
		return s.Title
	case "featured":
		return yesNo(s.Featured)
	}
	return ""
}

// RelatedLink points at another page of the site.
type RelatedLink struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title" validate:"required,max=255"`
	PageID    uuid.UUID `json:"page_id" validate:"required"`
	CreatedAt time.Time `json:"created_at"`
}

func (l *RelatedLink) String() string { return l.Title }

// Column returns the list-view value for the named column.
func (l *RelatedLink) Column(name string) string {
	switch name {
	case "title":
		return l.Title
	case "page":
		return l.PageID.String()
	}
	return ""
}

// RelatedDocument points at a document in the document library.
type RelatedDocument struct {
	ID         uuid.UUID `json:"id"`
	Title      string    `json:"title" validate:"required,max=255"`
	DocumentID uuid.UUID `json:"document_id" validate:"required"`
	CreatedAt  time.Time `json:"created_at"`
}

func (d *RelatedDocument) String() string { return d.Title }

// Column returns the list-view value for the named column.
func (d *RelatedDocument) Column(name string) string {
	switch name {
	case "title":
		return d.Title
	case "document":
		return d.DocumentID.String()
	}
	return ""
}
