// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// Seed populates the database with initial development data: a root home
// page so the public site has something to serve. It is a no-op when any
// page already exists.
func Seed(ctx context.Context, db *sql.DB) error {
	var count int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM home_pages").Scan(&count); err != nil {
		return fmt.Errorf("seed check pages: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	_, err := db.ExecContext(ctx, `
		INSERT INTO home_pages (title, slug, body)
		VALUES ($1, $2, $3)
	`, "Home", "home", "<p>Welcome.</p>")
	if err != nil {
		return fmt.Errorf("seed insert home page: %w", err)
	}

	slog.Info("database seeded with root home page", "slug", "home")
	return nil
}
