// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/url"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gallerycms/internal/publish"
)

func TestFormDateTime(t *testing.T) {
	want := time.Date(2025, 3, 14, 9, 26, 0, 0, time.UTC)

	tests := []struct {
		name  string
		value string
		want  *time.Time
	}{
		{"rfc3339", "2025-03-14T09:26:00Z", &want},
		{"rfc3339 with offset", "2025-03-14T11:26:00+02:00", &want},
		{"datetime-local", "2025-03-14T09:26", &want},
		{"datetime-local with seconds", "2025-03-14T09:26:00", &want},
		{"space separated", "2025-03-14 09:26", &want},
		{"blank", "  ", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newForm(url.Values{"at": {tt.value}}, time.UTC)
			got := f.dateTime("at")
			assert.False(t, f.errs.HasErrors())
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.True(t, tt.want.Equal(*got), "got %v", got)
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestFormDateTimeInLocation(t *testing.T) {
	loc := time.FixedZone("PST", -8*60*60)
	f := newForm(url.Values{"at": {"2025-01-01 00:00"}}, loc)

	got := f.dateTime("at")
	require.NotNil(t, got)
	assert.True(t, time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC).Equal(*got), "got %v", got)
}

func TestFormDateTimeInvalid(t *testing.T) {
	f := newForm(url.Values{"at": {"14/03/2025"}}, nil)

	assert.Nil(t, f.dateTime("at"))
	assert.Equal(t, []string{MsgInvalidDateTime}, f.errs.Messages("at"))
}

func TestFormID(t *testing.T) {
	id := uuid.New()
	f := newForm(url.Values{"ok": {id.String()}, "bad": {"42"}, "blank": {""}}, nil)

	assert.Equal(t, id, f.id("ok"))
	assert.Equal(t, uuid.Nil, f.id("blank"))
	assert.Equal(t, uuid.Nil, f.id("bad"))
	assert.Equal(t, []string{MsgInvalidChoice}, f.errs.Messages("bad"))
	assert.Empty(t, f.errs.Messages("blank"))
}

func TestFormBoolean(t *testing.T) {
	f := newForm(url.Values{"a": {"on"}, "b": {"TRUE"}, "c": {"off"}, "d": {""}}, nil)

	assert.True(t, f.boolean("a"))
	assert.True(t, f.boolean("b"))
	assert.False(t, f.boolean("c"))
	assert.False(t, f.boolean("d"))
	assert.False(t, f.boolean("missing"))
}

func TestFormList(t *testing.T) {
	f := newForm(url.Values{"loc": {"homepage, news", " news ", "", "events"}}, nil)

	assert.Equal(t, []string{"homepage", "news", "events"}, f.list("loc"))
	assert.Equal(t, []string{}, f.list("missing"))
}

func TestGallerySubmissionPresence(t *testing.T) {
	f := newForm(url.Values{
		"live":               {"on"},
		"first_published_at": {""},
	}, nil)

	sub := gallerySubmission(f)

	assert.True(t, sub.Has(publish.FieldLive))
	assert.True(t, sub.Has(publish.FieldFirstPublishedAt))
	assert.False(t, sub.Has(publish.FieldImage))
	assert.False(t, sub.Has(publish.FieldExpireAt))
	assert.True(t, sub.Live)
	assert.Nil(t, sub.FirstPublishedAt)
	assert.False(t, f.errs.HasErrors())
}
