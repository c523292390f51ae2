// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store holds the PostgreSQL-backed stores for every content model.
// Stores take a *sql.DB opened with the pgx stdlib driver. Lookups return
// (nil, nil) when no row matches; updates and deletes of a missing row
// return an error wrapping sql.ErrNoRows.
package store

import (
	"database/sql"
	"errors"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL error codes the handlers distinguish.
const (
	codeForeignKeyViolation = "23503"
	codeUniqueViolation     = "23505"
)

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

// IsForeignKeyViolation reports whether err was caused by a reference to a
// row that does not exist, or by deleting a row that is still referenced.
func IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeForeignKeyViolation
}

// IsUniqueViolation reports whether err was caused by a duplicate key.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation
}

// IsNotFound reports whether err wraps sql.ErrNoRows.
func IsNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// requireAffected turns a zero-row update or delete into sql.ErrNoRows.
func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// containsPattern builds an ILIKE pattern matching q anywhere in a column.
func containsPattern(q string) string {
	return "%" + likeEscaper.Replace(q) + "%"
}

// searchClause ORs a case-insensitive contains match of q over columns.
// Unknown field names are ignored. It returns nil when nothing matches.
func searchClause(q string, fields []string, columns map[string]string) sq.Sqlizer {
	q = strings.TrimSpace(q)
	if q == "" {
		return nil
	}
	pattern := containsPattern(q)
	var or sq.Or
	for _, f := range fields {
		col, ok := columns[f]
		if !ok {
			continue
		}
		or = append(or, sq.ILike{col: pattern})
	}
	if len(or) == 0 {
		return nil
	}
	return or
}

// Page bounds a list query. Zero Limit means no limit.
type Page struct {
	Limit  int
	Offset int
}

func (p Page) apply(q sq.SelectBuilder) sq.SelectBuilder {
	if p.Limit > 0 {
		q = q.Limit(uint64(p.Limit))
	}
	if p.Offset > 0 {
		q = q.Offset(uint64(p.Offset))
	}
	return q
}
