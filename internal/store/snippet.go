// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// snippet.go holds the stores for the small admin-managed records: simple
// photos, simple things, related links, and related documents. None of
// them carry publishing state.
package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"gallerycms/internal/models"
)

var titleSearch = map[string]string{"title": "title"}

// listQuery runs a title-searchable, title-ordered list over table and
// scans each row with scan.
func listQuery(ctx context.Context, db *sql.DB, sb sq.StatementBuilderType, table, columns, query string, page Page, scan func(*sql.Rows) error) error {
	q := sb.Select(columns).From(table).OrderBy("title", "created_at")
	if clause := searchClause(query, []string{"title"}, titleSearch); clause != nil {
		q = q.Where(clause)
	}
	sqlStr, args, err := page.apply(q).ToSql()
	if err != nil {
		return fmt.Errorf("build list %s: %w", table, err)
	}

	rows, err := db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return fmt.Errorf("list %s: %w", table, err)
	}
	defer rows.Close()

	for rows.Next() {
		if err := scan(rows); err != nil {
			return fmt.Errorf("scan %s: %w", table, err)
		}
	}
	return rows.Err()
}

func deleteByID(ctx context.Context, db *sql.DB, table string, id uuid.UUID) error {
	res, err := db.ExecContext(ctx, "DELETE FROM "+table+" WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete %s: %w", table, err)
	}
	if err := requireAffected(res); err != nil {
		return fmt.Errorf("delete %s: %w", table, err)
	}
	return nil
}

// SimplePhotoStore handles simple photo records.
type SimplePhotoStore struct {
	db *sql.DB
	sb sq.StatementBuilderType
}

// NewSimplePhotoStore creates a new SimplePhotoStore.
func NewSimplePhotoStore(db *sql.DB) *SimplePhotoStore {
	return &SimplePhotoStore{db: db, sb: builder()}
}

const simplePhotoColumns = `id, title, image_id, created_at`

// Save inserts sp when its ID is zero and updates it otherwise.
func (s *SimplePhotoStore) Save(ctx context.Context, sp *models.SimplePhoto) error {
	var err error
	if sp.ID == uuid.Nil {
		err = s.db.QueryRowContext(ctx, `
			INSERT INTO simple_photos (title, image_id) VALUES ($1, $2)
			RETURNING id, created_at
		`, sp.Title, sp.ImageID).Scan(&sp.ID, &sp.CreatedAt)
	} else {
		err = s.db.QueryRowContext(ctx, `
			UPDATE simple_photos SET title = $1, image_id = $2 WHERE id = $3
			RETURNING created_at
		`, sp.Title, sp.ImageID, sp.ID).Scan(&sp.CreatedAt)
	}
	if err != nil {
		return fmt.Errorf("save simple photo: %w", err)
	}
	return nil
}

// FindByID retrieves a simple photo.
func (s *SimplePhotoStore) FindByID(ctx context.Context, id uuid.UUID) (*models.SimplePhoto, error) {
	var sp models.SimplePhoto
	err := s.db.QueryRowContext(ctx, `SELECT `+simplePhotoColumns+` FROM simple_photos WHERE id = $1`, id).
		Scan(&sp.ID, &sp.Title, &sp.ImageID, &sp.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find simple photo by id: %w", err)
	}
	return &sp, nil
}

// List returns simple photos ordered by title.
func (s *SimplePhotoStore) List(ctx context.Context, query string, page Page) ([]models.SimplePhoto, error) {
	var items []models.SimplePhoto
	err := listQuery(ctx, s.db, s.sb, "simple_photos", simplePhotoColumns, query, page, func(rows *sql.Rows) error {
		var sp models.SimplePhoto
		if err := rows.Scan(&sp.ID, &sp.Title, &sp.ImageID, &sp.CreatedAt); err != nil {
			return err
		}
		items = append(items, sp)
		return nil
	})
	return items, err
}

// Delete removes a simple photo.
func (s *SimplePhotoStore) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, s.db, "simple_photos", id)
}

// SimpleThingStore handles simple thing records.
type SimpleThingStore struct {
	db *sql.DB
	sb sq.StatementBuilderType
}

// NewSimpleThingStore creates a new SimpleThingStore.
func NewSimpleThingStore(db *sql.DB) *SimpleThingStore {
	return &SimpleThingStore{db: db, sb: builder()}
}

const simpleThingColumns = `id, title, featured, created_at`

// Save inserts st when its ID is zero and updates it otherwise.
func (s *SimpleThingStore) Save(ctx context.Context, st *models.SimpleThing) error {
	var err error
	if st.ID == uuid.Nil {
		err = s.db.QueryRowContext(ctx, `
			INSERT INTO simple_things (title, featured) VALUES ($1, $2)
			RETURNING id, created_at
		`, st.Title, st.Featured).Scan(&st.ID, &st.CreatedAt)
	} else {
		err = s.db.QueryRowContext(ctx, `
			UPDATE simple_things SET title = $1, featured = $2 WHERE id = $3
			RETURNING created_at
		`, st.Title, st.Featured, st.ID).Scan(&st.CreatedAt)
	}
	if err != nil {
		return fmt.Errorf("save simple thing: %w", err)
	}
	return nil
}

// FindByID retrieves a simple thing.
func (s *SimpleThingStore) FindByID(ctx context.Context, id uuid.UUID) (*models.SimpleThing, error) {
	var st models.SimpleThing
	err := s.db.QueryRowContext(ctx, `SELECT `+simpleThingColumns+` FROM simple_things WHERE id = $1`, id).
		Scan(&st.ID, &st.Title, &st.Featured, &st.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find simple thing by id: %w", err)
	}
	return &st, nil
}

// List returns simple things ordered by title.
func (s *SimpleThingStore) List(ctx context.Context, query string, page Page) ([]models.SimpleThing, error) {
	var items []models.SimpleThing
	err := listQuery(ctx, s.db, s.sb, "simple_things", simpleThingColumns, query, page, func(rows *sql.Rows) error {
		var st models.SimpleThing
		if err := rows.Scan(&st.ID, &st.Title, &st.Featured, &st.CreatedAt); err != nil {
			return err
		}
		items = append(items, st)
		return nil
	})
	return items, err
}

// Delete removes a simple thing.
func (s *SimpleThingStore) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, s.db, "simple_things", id)
}

// RelatedLinkStore handles related link records.
type RelatedLinkStore struct {
	db *sql.DB
	sb sq.StatementBuilderType
}

// NewRelatedLinkStore creates a new RelatedLinkStore.
func NewRelatedLinkStore(db *sql.DB) *RelatedLinkStore {
	return &RelatedLinkStore{db: db, sb: builder()}
}

const relatedLinkColumns = `id, title, page_id, created_at`

// Save inserts l when its ID is zero and updates it otherwise.
func (s *RelatedLinkStore) Save(ctx context.Context, l *models.RelatedLink) error {
	var err error
	if l.ID == uuid.Nil {
		err = s.db.QueryRowContext(ctx, `
			INSERT INTO related_links (title, page_id) VALUES ($1, $2)
			RETURNING id, created_at
		`, l.Title, l.PageID).Scan(&l.ID, &l.CreatedAt)
	} else {
		err = s.db.QueryRowContext(ctx, `
			UPDATE related_links SET title = $1, page_id = $2 WHERE id = $3
			RETURNING created_at
		`, l.Title, l.PageID, l.ID).Scan(&l.CreatedAt)
	}
	if err != nil {
		return fmt.Errorf("save related link: %w", err)
	}
	return nil
}

// FindByID retrieves a related link.
func (s *RelatedLinkStore) FindByID(ctx context.Context, id uuid.UUID) (*models.RelatedLink, error) {
	var l models.RelatedLink
	err := s.db.QueryRowContext(ctx, `SELECT `+relatedLinkColumns+` FROM related_links WHERE id = $1`, id).
		Scan(&l.ID, &l.Title, &l.PageID, &l.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find related link by id: %w", err)
	}
	return &l, nil
}

// List returns related links ordered by title.
func (s *RelatedLinkStore) List(ctx context.Context, query string, page Page) ([]models.RelatedLink, error) {
	var items []models.RelatedLink
	err := listQuery(ctx, s.db, s.sb, "related_links", relatedLinkColumns, query, page, func(rows *sql.Rows) error {
		var l models.RelatedLink
		if err := rows.Scan(&l.ID, &l.Title, &l.PageID, &l.CreatedAt); err != nil {
			return err
		}
		items = append(items, l)
		return nil
	})
	return items, err
}

// PageLink is a related link joined with the slug of the page it targets.
type PageLink struct {
	Title string `json:"title"`
	Slug  string `json:"slug"`
}

// ListLinks returns every related link with its target page slug.
func (s *RelatedLinkStore) ListLinks(ctx context.Context) ([]PageLink, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT l.title, p.slug
		FROM related_links l
		JOIN home_pages p ON p.id = l.page_id
		ORDER BY l.title
	`)
	if err != nil {
		return nil, fmt.Errorf("list page links: %w", err)
	}
	defer rows.Close()

	var items []PageLink
	for rows.Next() {
		var pl PageLink
		if err := rows.Scan(&pl.Title, &pl.Slug); err != nil {
			return nil, fmt.Errorf("scan page link: %w", err)
		}
		items = append(items, pl)
	}
	return items, rows.Err()
}

// Delete removes a related link.
func (s *RelatedLinkStore) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, s.db, "related_links", id)
}

// RelatedDocumentStore handles related document records.
type RelatedDocumentStore struct {
	db *sql.DB
	sb sq.StatementBuilderType
}

// NewRelatedDocumentStore creates a new RelatedDocumentStore.
func NewRelatedDocumentStore(db *sql.DB) *RelatedDocumentStore {
	return &RelatedDocumentStore{db: db, sb: builder()}
}

const relatedDocumentColumns = `id, title, document_id, created_at`

// Save inserts d when its ID is zero and updates it otherwise.
func (s *RelatedDocumentStore) Save(ctx context.Context, d *models.RelatedDocument) error {
	var err error
	if d.ID == uuid.Nil {
		err = s.db.QueryRowContext(ctx, `
			INSERT INTO related_documents (title, document_id) VALUES ($1, $2)
			RETURNING id, created_at
		`, d.Title, d.DocumentID).Scan(&d.ID, &d.CreatedAt)
	} else {
		err = s.db.QueryRowContext(ctx, `
			UPDATE related_documents SET title = $1, document_id = $2 WHERE id = $3
			RETURNING created_at
		`, d.Title, d.DocumentID, d.ID).Scan(&d.CreatedAt)
	}
	if err != nil {
		return fmt.Errorf("save related document: %w", err)
	}
	return nil
}

// FindByID retrieves a related document.
func (s *RelatedDocumentStore) FindByID(ctx context.Context, id uuid.UUID) (*models.RelatedDocument, error) {
	var d models.RelatedDocument
	err := s.db.QueryRowContext(ctx, `SELECT `+relatedDocumentColumns+` FROM related_documents WHERE id = $1`, id).
		Scan(&d.ID, &d.Title, &d.DocumentID, &d.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find related document by id: %w", err)
	}
	return &d, nil
}

// List returns related documents ordered by title.
func (s *RelatedDocumentStore) List(ctx context.Context, query string, page Page) ([]models.RelatedDocument, error) {
	var items []models.RelatedDocument
	err := listQuery(ctx, s.db, s.sb, "related_documents", relatedDocumentColumns, query, page, func(rows *sql.Rows) error {
		var d models.RelatedDocument
		if err := rows.Scan(&d.ID, &d.Title, &d.DocumentID, &d.CreatedAt); err != nil {
			return err
		}
		items = append(items, d)
		return nil
	})
	return items, err
}

// DocumentLink is a related document joined with the stored file it
// points at.
type DocumentLink struct {
	Title    string
	Document models.Document
}

// ListDocuments returns every related document with its document row.
func (s *RelatedDocumentStore) ListDocuments(ctx context.Context) ([]DocumentLink, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT r.title, d.id, d.title, d.bucket, d.s3_key, d.created_at
		FROM related_documents r
		JOIN documents d ON d.id = r.document_id
		ORDER BY r.title
	`)
	if err != nil {
		return nil, fmt.Errorf("list document links: %w", err)
	}
	defer rows.Close()

	var items []DocumentLink
	for rows.Next() {
		var dl DocumentLink
		err := rows.Scan(&dl.Title, &dl.Document.ID, &dl.Document.Title,
			&dl.Document.Bucket, &dl.Document.S3Key, &dl.Document.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan document link: %w", err)
		}
		items = append(items, dl)
	}
	return items, rows.Err()
}

// Delete removes a related document.
func (s *RelatedDocumentStore) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, s.db, "related_documents", id)
}
