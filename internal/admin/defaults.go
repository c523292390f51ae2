// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package admin

// Model names used as registry keys and in admin URLs.
const (
	ModelGalleryPhoto    = "gallery_photo"
	ModelImage           = "image"
	ModelDocument        = "document"
	ModelHomePage        = "home_page"
	ModelSimplePhoto     = "simple_photo"
	ModelSimpleThing     = "simple_thing"
	ModelRelatedLink     = "related_link"
	ModelRelatedDocument = "related_document"
)

// Default returns a registry with every model of the site registered.
func Default() *Registry {
	r := NewRegistry()

	r.MustRegister(ModelAdmin{
		Model:               ModelGalleryPhoto,
		MenuLabel:           "Gallery Photos",
		MenuIcon:            "fa-clone",
		MenuOrder:           126,
		ExcludeFromExplorer: true,
		ListDisplay:         []string{"image", "live", "first_published_at", "display_location_names"},
		SearchFields:        []string{"image__title", "image__photo_credit", "image__caption"},
	})
	r.MustRegister(ModelAdmin{
		Model:        ModelHomePage,
		MenuLabel:    "Pages",
		MenuIcon:     "doc-full",
		MenuOrder:    100,
		ListDisplay:  []string{"title", "slug", "updated_at"},
		SearchFields: []string{"title", "slug"},
	})
	r.MustRegister(ModelAdmin{
		Model:        ModelImage,
		MenuLabel:    "Images",
		MenuIcon:     "image",
		MenuOrder:    300,
		ListDisplay:  []string{"title", "photo_credit", "created_at"},
		SearchFields: []string{"title", "photo_credit", "caption"},
	})
	r.MustRegister(ModelAdmin{
		Model:        ModelDocument,
		MenuLabel:    "Documents",
		MenuIcon:     "doc-full-inverse",
		MenuOrder:    400,
		ListDisplay:  []string{"title", "created_at"},
		SearchFields: []string{"title"},
	})
	r.MustRegister(ModelAdmin{
		Model:               ModelSimplePhoto,
		MenuLabel:           "Simple Photos",
		MenuIcon:            "fa-picture-o",
		MenuOrder:           127,
		ExcludeFromExplorer: true,
		ListDisplay:         []string{"title", "image"},
		SearchFields:        []string{"title"},
	})
	r.MustRegister(ModelAdmin{
		Model:               ModelSimpleThing,
		MenuLabel:           "Simple Things",
		MenuIcon:            "fa-cube",
		MenuOrder:           128,
		ExcludeFromExplorer: true,
		ListDisplay:         []string{"title", "featured"},
		SearchFields:        []string{"title"},
	})
	r.MustRegister(ModelAdmin{
		Model:             ModelRelatedLink,
		MenuLabel:         "Related Links",
		MenuIcon:          "link",
		MenuOrder:         900,
		AddToSettingsMenu: true,
		ListDisplay:       []string{"title", "page"},
		SearchFields:      []string{"title"},
	})
	r.MustRegister(ModelAdmin{
		Model:             ModelRelatedDocument,
		MenuLabel:         "Related Documents",
		MenuIcon:          "doc-empty",
		MenuOrder:         901,
		AddToSettingsMenu: true,
		ListDisplay:       []string{"title", "document"},
		SearchFields:      []string{"title"},
	})

	return r
}
