// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the data structures persisted by the content store:
// gallery photos with their publishing schedule, the home page, and the
// auxiliary records editors attach to pages.
package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// GalleryPhoto places an image into gallery popup blocks. Unlike a page it
// carries its own publishing schedule: it is shown only while Live is set
// and the current time falls inside the optional go-live/expiry window.
type GalleryPhoto struct {
	ID               uuid.UUID  `json:"id"`
	ImageID          uuid.UUID  `json:"image_id"`
	Image            *Image     `json:"image,omitempty"`
	Live             bool       `json:"live"`
	GoLiveAt         *time.Time `json:"go_live_at,omitempty"`
	ExpireAt         *time.Time `json:"expire_at,omitempty"`
	FirstPublishedAt *time.Time `json:"first_published_at,omitempty"`
	LastPublishedAt  *time.Time `json:"last_published_at,omitempty"`
	DisplayLocations []string   `json:"display_locations"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// String is the label shown at the top of the edit form and in list views.
func (p *GalleryPhoto) String() string {
	if p.Image != nil && p.Image.Title != "" {
		return "Gallery Photo for " + p.Image.Title
	}
	return "Gallery Photo for " + p.ImageID.String()
}

// GoString renders a compact debugging form, e.g. for %#v.
func (p *GalleryPhoto) GoString() string {
	return fmt.Sprintf("<GalleryPhoto: photo_id=%s, live=%t>", p.ImageID, p.Live)
}

// DisplayLocationNames joins the placements of this photo for list views.
func (p *GalleryPhoto) DisplayLocationNames() string {
	return strings.Join(p.DisplayLocations, ", ")
}

// Column returns the list-view value for the named column.
func (p *GalleryPhoto) Column(name string) string {
	switch name {
	case "image":
		if p.Image != nil {
			return p.Image.String()
		}
		return p.ImageID.String()
	case "live":
		return yesNo(p.Live)
	case "go_live_at":
		return formatTime(p.GoLiveAt)
	case "expire_at":
		return formatTime(p.ExpireAt)
	case "first_published_at":
		return formatTime(p.FirstPublishedAt)
	case "last_published_at":
		return formatTime(p.LastPublishedAt)
	case "display_location_names":
		return p.DisplayLocationNames()
	}
	return ""
}

// ListDateFormat is how timestamps appear in admin list columns.
const ListDateFormat = "2006-01-02 15:04"

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(ListDateFormat)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
