// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gallerycms/internal/models"
)

func TestHomePageCreateSanitizesAndSlugs(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	s := NewHomePageStore(db)

	title := "About Us " + uuid.NewString()[:8]
	p := &models.HomePage{Title: title, Body: `<p onclick="x()">Hi</p><script>alert(1)</script>`}
	require.NoError(t, s.Create(ctx, p))
	t.Cleanup(func() { db.Exec("DELETE FROM home_pages WHERE id = $1", p.ID) })

	assert.Equal(t, "<p>Hi</p>", p.Body)
	assert.NotEmpty(t, p.Slug)

	got, err := s.FindBySlug(ctx, p.Slug)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, p.ID, got.ID)
	assert.Equal(t, "<p>Hi</p>", got.Body)

	got.Title = "Renamed"
	require.NoError(t, s.Update(ctx, got))
	again, err := s.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", again.Title)
	assert.Equal(t, p.Slug, again.Slug, "slug is kept on rename")
}

func TestHomePageDuplicateSlug(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	s := NewHomePageStore(db)

	slug := "dup-" + uuid.NewString()[:8]
	p := &models.HomePage{Title: "One", Slug: slug}
	require.NoError(t, s.Create(ctx, p))
	t.Cleanup(func() { db.Exec("DELETE FROM home_pages WHERE id = $1", p.ID) })

	err := s.Create(ctx, &models.HomePage{Title: "Two", Slug: slug})
	assert.True(t, IsUniqueViolation(err))
}

func TestRelatedLinksFollowPage(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	pages := NewHomePageStore(db)
	links := NewRelatedLinkStore(db)

	p := &models.HomePage{Title: "Linked", Slug: "linked-" + uuid.NewString()[:8]}
	require.NoError(t, pages.Create(ctx, p))

	l := &models.RelatedLink{Title: "See also", PageID: p.ID}
	require.NoError(t, links.Save(ctx, l))

	all, err := links.ListLinks(ctx)
	require.NoError(t, err)
	assert.Contains(t, all, PageLink{Title: "See also", Slug: p.Slug})

	require.NoError(t, pages.Delete(ctx, p.ID))
	got, err := links.FindByID(ctx, l.ID)
	require.NoError(t, err)
	assert.Nil(t, got, "links are removed with their page")
}

func TestPageSlug(t *testing.T) {
	tests := []struct {
		name      string
		submitted string
		title     string
		want      string
	}{
		{"derived from title", "", "Café Menu", "cafe-menu"},
		{"submitted is normalized", "a b/c", "Ignored", "a-bc"},
		{"submitted wins over title", "about", "Something Else", "about"},
		{"title without letters or digits", "", "日本語のページ", ""},
		{"unusable submitted slug is not replaced", "!!!", "About", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PageSlug(tt.submitted, tt.title))
		})
	}
}

func TestHomePageCreateNormalizesSubmittedSlug(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	s := NewHomePageStore(db)

	suffix := uuid.NewString()[:8]
	p := &models.HomePage{Title: "Contact", Slug: "Contact Us/" + suffix}
	require.NoError(t, s.Create(ctx, p))
	t.Cleanup(func() { db.Exec("DELETE FROM home_pages WHERE id = $1", p.ID) })

	assert.Equal(t, "contact-us"+suffix, p.Slug)
	got, err := s.FindBySlug(ctx, p.Slug)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, p.ID, got.ID)
}

func TestHomePageCreateRejectsEmptySlug(t *testing.T) {
	db := testDB(t)
	s := NewHomePageStore(db)

	err := s.Create(context.Background(), &models.HomePage{Title: "!!!"})
	assert.ErrorIs(t, err, ErrEmptySlug)
}
