// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package publish

import (
	"time"

	"github.com/google/uuid"

	"gallerycms/internal/models"
)

// Form field names of a gallery photo submission.
const (
	FieldImage            = "image"
	FieldLive             = "live"
	FieldGoLiveAt         = "go_live_at"
	FieldExpireAt         = "expire_at"
	FieldFirstPublishedAt = "first_published_at"
	FieldDisplayLocations = "display_locations"
)

// Editor-facing messages.
const (
	MsgRequired          = "This field is required."
	MsgGoLiveAfterExpiry = "If set, Go live date/time must be before Expiry date/time"
	MsgExpiryInPast      = "Expiry date/time must be blank or in the future"
)

// Submission is the set of values an editor posted for a gallery photo.
// Present records which fields the form carried: a field that is present
// with a nil value is a request to blank it, an absent field keeps the
// stored value.
type Submission struct {
	ImageID          uuid.UUID
	Live             bool
	GoLiveAt         *time.Time
	ExpireAt         *time.Time
	FirstPublishedAt *time.Time
	DisplayLocations []string
	Present          map[string]bool
}

// Has reports whether field was part of the submission.
func (s Submission) Has(field string) bool {
	return s.Present[field]
}

// Validate checks a submission against the stored record prev (nil when
// creating) at time now. On success it returns the cleaned submission, which
// may have dropped fields; on failure it returns a *ValidationError.
//
// The schedule checks run on the values the record would hold after the
// edit, so a field absent from the submission is checked at its stored value.
func Validate(sub Submission, prev *models.GalleryPhoto, now time.Time) (Submission, error) {
	verr := &ValidationError{}

	imageID := sub.ImageID
	if !sub.Has(FieldImage) && prev != nil {
		imageID = prev.ImageID
	}
	if imageID == uuid.Nil {
		verr.Add(FieldImage, MsgRequired)
	}

	goLiveAt, expireAt := sub.GoLiveAt, sub.ExpireAt
	if prev != nil {
		if !sub.Has(FieldGoLiveAt) {
			goLiveAt = prev.GoLiveAt
		}
		if !sub.Has(FieldExpireAt) {
			expireAt = prev.ExpireAt
		}
	}

	if goLiveAt != nil && expireAt != nil && goLiveAt.After(*expireAt) {
		verr.Add(FieldGoLiveAt, MsgGoLiveAfterExpiry)
		verr.Add(FieldExpireAt, MsgGoLiveAfterExpiry)
	}
	if expireAt != nil && expireAt.Before(now) {
		verr.Add(FieldExpireAt, MsgExpiryInPast)
	}

	if verr.HasErrors() {
		return Submission{}, verr
	}

	cleaned := sub
	cleaned.Present = make(map[string]bool, len(sub.Present))
	for field, ok := range sub.Present {
		cleaned.Present[field] = ok
	}
	// first_published_at orders the gallery; blanking it from the form is
	// ignored so the stored value survives.
	if cleaned.Has(FieldFirstPublishedAt) && cleaned.FirstPublishedAt == nil {
		delete(cleaned.Present, FieldFirstPublishedAt)
	}
	return cleaned, nil
}

// Apply copies the submitted fields onto p. Fields absent from the
// submission are left as they are.
func (s Submission) Apply(p *models.GalleryPhoto) {
	if s.Has(FieldImage) {
		p.ImageID = s.ImageID
		if p.Image != nil && p.Image.ID != s.ImageID {
			p.Image = nil
		}
	}
	if s.Has(FieldLive) {
		p.Live = s.Live
	}
	if s.Has(FieldGoLiveAt) {
		p.GoLiveAt = s.GoLiveAt
	}
	if s.Has(FieldExpireAt) {
		p.ExpireAt = s.ExpireAt
	}
	if s.Has(FieldFirstPublishedAt) {
		p.FirstPublishedAt = s.FirstPublishedAt
	}
	if s.Has(FieldDisplayLocations) {
		p.DisplayLocations = s.DisplayLocations
	}
}

// StampOnSave returns p with its publish timestamps updated for a save at
// now. A live record gets LastPublishedAt = now on every save and
// FirstPublishedAt = now on the first live save only. A record that is not
// live is returned unchanged.
func StampOnSave(p models.GalleryPhoto, now time.Time) models.GalleryPhoto {
	if !p.Live {
		return p
	}
	last := now
	p.LastPublishedAt = &last
	if p.FirstPublishedAt == nil {
		first := now
		p.FirstPublishedAt = &first
	}
	return p
}

// IsVisible reports whether p should be displayed at now: it must be live,
// past its go-live time, and not yet expired.
func IsVisible(p *models.GalleryPhoto, now time.Time) bool {
	if !p.Live {
		return false
	}
	if p.GoLiveAt != nil && p.GoLiveAt.After(now) {
		return false
	}
	if p.ExpireAt != nil && !p.ExpireAt.After(now) {
		return false
	}
	return true
}

// NextTransition returns the earliest go-live or expiry instant after now
// among the live photos, i.e. the next moment the visible set changes.
// ok is false when no such instant exists.
func NextTransition(photos []models.GalleryPhoto, now time.Time) (next time.Time, ok bool) {
	consider := func(t *time.Time) {
		if t == nil || !t.After(now) {
			return
		}
		if !ok || t.Before(next) {
			next, ok = *t, true
		}
	}
	for i := range photos {
		if !photos[i].Live {
			continue
		}
		consider(photos[i].GoLiveAt)
		consider(photos[i].ExpireAt)
	}
	return next, ok
}
