// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Image is a picture held by the image library. Gallery photos and simple
// photos reference it; the file itself lives in object storage.
type Image struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title" validate:"required,max=255"`
	PhotoCredit *string   `json:"photo_credit,omitempty" validate:"omitempty,max=255"`
	Caption     *string   `json:"caption,omitempty" validate:"omitempty,max=1000"`
	Bucket      string    `json:"bucket" validate:"required"`
	S3Key       string    `json:"s3_key" validate:"required,max=500"`
	CreatedAt   time.Time `json:"created_at"`
}

func (i *Image) String() string {
	return i.Title
}

// Column returns the list-view value for the named column.
func (i *Image) Column(name string) string {
	switch name {
	case "title":
		return i.Title
	case "photo_credit":
		return deref(i.PhotoCredit)
	case "caption":
		return deref(i.Caption)
	case "created_at":
		return i.CreatedAt.Format(ListDateFormat)
	}
	return ""
}

// Document is a file held by the document library, e.g. a PDF linked from
// a page.
type Document struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title" validate:"required,max=255"`
	Bucket    string    `json:"bucket" validate:"required"`
	S3Key     string    `json:"s3_key" validate:"required,max=500"`
	CreatedAt time.Time `json:"created_at"`
}

func (d *Document) String() string {
	return d.Title
}

// Column returns the list-view value for the named column.
func (d *Document) Column(name string) string {
	switch name {
	case "title":
		return d.Title
	case "created_at":
		return d.CreatedAt.Format(ListDateFormat)
	}
	return ""
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
