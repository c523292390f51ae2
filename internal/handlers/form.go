// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"gallerycms/internal/publish"
)

// Messages for values that cannot be parsed.
const (
	MsgInvalidDateTime = "Enter a valid date/time."
	MsgInvalidChoice   = "Select a valid choice. That choice is not one of the available choices."
)

// maxFormBytes bounds a submitted form body.
const maxFormBytes = 1 << 20

// dateTimeLayouts are tried in order. Layouts without a zone are read in
// the form's location.
var dateTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// form reads typed values out of a submission, collecting parse failures
// as field errors instead of failing on the first one.
type form struct {
	values url.Values
	loc    *time.Location
	errs   *publish.ValidationError
}

func parseForm(w http.ResponseWriter, r *http.Request, loc *time.Location) (*form, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		return nil, err
	}
	return newForm(r.PostForm, loc), nil
}

func newForm(values url.Values, loc *time.Location) *form {
	if loc == nil {
		loc = time.UTC
	}
	return &form{values: values, loc: loc, errs: &publish.ValidationError{}}
}

// has reports whether the submission carries name at all, even empty.
func (f *form) has(name string) bool {
	_, ok := f.values[name]
	return ok
}

func (f *form) str(name string) string {
	return strings.TrimSpace(f.values.Get(name))
}

// optional returns nil for a blank value.
func (f *form) optional(name string) *string {
	s := f.str(name)
	if s == "" {
		return nil
	}
	return &s
}

// boolean follows HTML checkbox semantics: absent or unrecognised is false.
func (f *form) boolean(name string) bool {
	switch strings.ToLower(f.str(name)) {
	case "on", "true", "1", "yes":
		return true
	}
	return false
}

// dateTime returns nil for a blank value.
func (f *form) dateTime(name string) *time.Time {
	s := f.str(name)
	if s == "" {
		return nil
	}
	for _, layout := range dateTimeLayouts {
		if t, err := time.ParseInLocation(layout, s, f.loc); err == nil {
			t = t.UTC()
			return &t
		}
	}
	f.errs.Add(name, MsgInvalidDateTime)
	return nil
}

// id returns uuid.Nil for a blank value.
func (f *form) id(name string) uuid.UUID {
	s := f.str(name)
	if s == "" {
		return uuid.Nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		f.errs.Add(name, MsgInvalidChoice)
		return uuid.Nil
	}
	return id
}

// list gathers repeated values and comma-separated entries, trimmed,
// without blanks or duplicates.
func (f *form) list(name string) []string {
	out := []string{}
	seen := make(map[string]bool)
	for _, raw := range f.values[name] {
		for _, item := range strings.Split(raw, ",") {
			item = strings.TrimSpace(item)
			if item == "" || seen[item] {
				continue
			}
			seen[item] = true
			out = append(out, item)
		}
	}
	return out
}

// gallerySubmission reads a gallery photo form. Only fields present in the
// form are marked present, so a partial submission leaves the rest of the
// stored record alone.
func gallerySubmission(f *form) publish.Submission {
	sub := publish.Submission{Present: make(map[string]bool)}
	for _, field := range []string{
		publish.FieldImage, publish.FieldLive, publish.FieldGoLiveAt,
		publish.FieldExpireAt, publish.FieldFirstPublishedAt, publish.FieldDisplayLocations,
	} {
		if f.has(field) {
			sub.Present[field] = true
		}
	}

	sub.ImageID = f.id(publish.FieldImage)
	sub.Live = f.boolean(publish.FieldLive)
	sub.GoLiveAt = f.dateTime(publish.FieldGoLiveAt)
	sub.ExpireAt = f.dateTime(publish.FieldExpireAt)
	sub.FirstPublishedAt = f.dateTime(publish.FieldFirstPublishedAt)
	sub.DisplayLocations = f.list(publish.FieldDisplayLocations)
	return sub
}
