// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package admin

// Lister is implemented by models that can be shown in a list view.
type Lister interface {
	String() string
	Column(name string) string
}

// Row is one line of a list view: the record label plus one value per
// ListDisplay column, in column order.
type Row struct {
	ID      string   `json:"id"`
	Label   string   `json:"label"`
	Columns []string `json:"columns"`
}

// ListView is the projection returned to the admin list page.
type ListView struct {
	Model   string   `json:"model"`
	Title   string   `json:"title"`
	Headers []string `json:"headers"`
	Rows    []Row    `json:"rows"`
}

// Project renders item as a row of ma's list view.
func (ma ModelAdmin) Project(id string, item Lister) Row {
	cols := make([]string, len(ma.ListDisplay))
	for i, name := range ma.ListDisplay {
		cols[i] = item.Column(name)
	}
	return Row{ID: id, Label: item.String(), Columns: cols}
}

// NewListView starts an empty list view for ma.
func (ma ModelAdmin) NewListView() *ListView {
	return &ListView{
		Model:   ma.Model,
		Title:   ma.MenuLabel,
		Headers: ma.ListDisplay,
		Rows:    []Row{},
	}
}
