// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package admin describes how each model appears in the admin panel: its
// menu entry, the columns of its list view, and the fields its search box
// matches against. Handlers read these registrations to build list
// responses; nothing here touches the database.
package admin

import (
	"fmt"
	"sort"
	"sync"
)

// ModelAdmin is the admin registration of one model.
type ModelAdmin struct {
	Model               string   `json:"model"`
	MenuLabel           string   `json:"menu_label"`
	MenuIcon            string   `json:"menu_icon"`
	MenuOrder           int      `json:"menu_order"`
	AddToSettingsMenu   bool     `json:"add_to_settings_menu"`
	ExcludeFromExplorer bool     `json:"exclude_from_explorer"`
	ListDisplay         []string `json:"list_display"`
	SearchFields        []string `json:"search_fields"`
}

// Registry holds model registrations keyed by model name.
type Registry struct {
	mu     sync.RWMutex
	models map[string]ModelAdmin
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{models: make(map[string]ModelAdmin)}
}

// Register adds ma. Registering the same model twice is an error.
func (r *Registry) Register(ma ModelAdmin) error {
	if ma.Model == "" {
		return fmt.Errorf("register model admin: empty model name")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.models[ma.Model]; exists {
		return fmt.Errorf("register model admin: %q already registered", ma.Model)
	}
	r.models[ma.Model] = ma
	return nil
}

// MustRegister is Register for package-level setup; it panics on error.
func (r *Registry) MustRegister(ma ModelAdmin) {
	if err := r.Register(ma); err != nil {
		panic(err)
	}
}

// Lookup returns the registration for model.
func (r *Registry) Lookup(model string) (ModelAdmin, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ma, ok := r.models[model]
	return ma, ok
}

// Menu returns the main-menu registrations ordered by MenuOrder, then label.
// Models added to the settings menu are listed by SettingsMenu instead.
func (r *Registry) Menu() []ModelAdmin {
	return r.filter(func(ma ModelAdmin) bool { return !ma.AddToSettingsMenu })
}

// SettingsMenu returns the registrations shown under Settings.
func (r *Registry) SettingsMenu() []ModelAdmin {
	return r.filter(func(ma ModelAdmin) bool { return ma.AddToSettingsMenu })
}

func (r *Registry) filter(keep func(ModelAdmin) bool) []ModelAdmin {
	r.mu.RLock()
	out := make([]ModelAdmin, 0, len(r.models))
	for _, ma := range r.models {
		if keep(ma) {
			out = append(out, ma)
		}
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].MenuOrder != out[j].MenuOrder {
			return out[i].MenuOrder < out[j].MenuOrder
		}
		return out[i].MenuLabel < out[j].MenuLabel
	})
	return out
}
