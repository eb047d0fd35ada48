// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package content

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/taibuivan/redherring/internal/platform/database/schema"
	"github.com/taibuivan/redherring/internal/platform/dberr"
	"github.com/taibuivan/redherring/internal/platform/sqlite"
	"github.com/taibuivan/redherring/pkg/fold"
	"github.com/taibuivan/redherring/pkg/slice"
)

// SQLiteRepository implements [Repository] on the embedded single-file store.
type SQLiteRepository struct {
	db  *sql.DB
	now func() time.Time
}

// NewSQLiteRepository constructs a SQLite backed content store.
func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db, now: time.Now}
}

// sqliteTimeLayouts are the created_at encodings found in the table: Go
// writes RFC 3339, the created_at backfill migration writes strftime output.
var sqliteTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.000Z",
	"2006-01-02 15:04:05",
}

// # Content Mutation

func (repository *SQLiteRepository) Create(context context.Context, ownerID, title string, contentType Type, status Status) (int64, error) {
	result, err := repository.db.ExecContext(context, repository.insertQuery(),
		ownerID, title, string(contentType), string(status), repository.timestamp())
	if err != nil {
		return 0, dberr.Wrap(err, "insert_content")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, dberr.Wrap(err, "insert_content_id")
	}
	return id, nil
}

func (repository *SQLiteRepository) CreateBatch(context context.Context, ownerID string, titles []string, contentType Type, status Status) ([]int64, error) {
	tx, err := repository.db.BeginTx(context, nil)
	if err != nil {
		return nil, dberr.Wrap(err, "begin_content_batch")
	}
	defer func() { _ = tx.Rollback() }()

	statement, err := tx.PrepareContext(context, repository.insertQuery())
	if err != nil {
		return nil, dberr.Wrap(err, "prepare_content_batch")
	}
	defer statement.Close()

	createdAt := repository.timestamp()
	ids := make([]int64, 0, len(titles))
	for _, title := range titles {
		result, err := statement.ExecContext(context, ownerID, title, string(contentType), string(status), createdAt)
		if err != nil {
			return nil, dberr.Wrap(err, "insert_content_batch")
		}
		id, err := result.LastInsertId()
		if err != nil {
			return nil, dberr.Wrap(err, "insert_content_batch_id")
		}
		ids = append(ids, id)
	}

	if err := tx.Commit(); err != nil {
		return nil, dberr.Wrap(err, "commit_content_batch")
	}
	return ids, nil
}

func (repository *SQLiteRepository) UpdateStatus(context context.Context, id int64, ownerID string, status Status) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = ? WHERE %s = ? AND %s = ?`,
		contentsTable, schema.Contents.Status, schema.Contents.ID, schema.Contents.UserID)

	result, err := repository.db.ExecContext(context, query, string(status), id, ownerID)
	return affectedOne(result, err, "update_content_status")
}

func (repository *SQLiteRepository) UpdateRating(context context.Context, id int64, ownerID string, rating int) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = ? WHERE %s = ? AND %s = ?`,
		contentsTable, schema.Contents.Rating, schema.Contents.ID, schema.Contents.UserID)

	result, err := repository.db.ExecContext(context, query, rating, id, ownerID)
	return affectedOne(result, err, "update_content_rating")
}

func (repository *SQLiteRepository) DeleteMany(context context.Context, ids []int64, ownerID string) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(ids)), ", ")
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s IN (%s) AND %s = ?`,
		contentsTable, schema.Contents.ID, placeholders, schema.Contents.UserID)

	args := make([]any, 0, len(ids)+1)
	for _, id := range ids {
		args = append(args, id)
	}
	args = append(args, ownerID)

	result, err := repository.db.ExecContext(context, query, args...)
	if err != nil {
		return 0, dberr.Wrap(err, "delete_contents")
	}
	removed, err := result.RowsAffected()
	if err != nil {
		return 0, dberr.Wrap(err, "delete_contents_count")
	}
	return int(removed), nil
}

// # Content Retrieval

func (repository *SQLiteRepository) ListByOwner(context context.Context, ownerID string) ([]Entry, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = ? ORDER BY %s ASC`,
		selectColumns, contentsTable, schema.Contents.UserID, schema.Contents.ID)

	rows, err := repository.db.QueryContext(context, query, ownerID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_contents")
	}
	return collectSQLiteEntries(rows)
}

/*
SearchByTitle performs a case-insensitive substring match.

Description: SQLite's LIKE only folds ASCII, so the owner's rows are
matched in Go with [fold.Caseless]. Accented letters then fold the way
Postgres ILIKE folds them and the fragment is never a pattern.
*/
func (repository *SQLiteRepository) SearchByTitle(context context.Context, ownerID, fragment string, limit int) ([]Entry, error) {
	entries, err := repository.ListByOwner(context, ownerID)
	if err != nil {
		return nil, err
	}

	needle := fold.Caseless(fragment)
	matches := slice.Filter(entries, func(entry Entry) bool {
		return strings.Contains(fold.Caseless(entry.Title), needle)
	})

	SortEntries(matches, SortAlpha)
	if limit >= 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches, nil
}

func (repository *SQLiteRepository) FindByIDAndOwner(context context.Context, id int64, ownerID string) (*Entry, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = ? AND %s = ?`,
		selectColumns, contentsTable, schema.Contents.ID, schema.Contents.UserID)

	entry, err := scanSQLiteEntry(repository.db.QueryRowContext(context, query, id, ownerID))
	if err != nil {
		return nil, dberr.Wrap(err, "get_content")
	}
	return entry, nil
}

// Ping verifies the database file is reachable.
func (repository *SQLiteRepository) Ping(context context.Context) error {
	return sqlite.Ping(context, repository.db)
}

// # Helpers

func (repository *SQLiteRepository) insertQuery() string {
	return fmt.Sprintf(`INSERT INTO %s (%s, %s, %s, %s, %s) VALUES (?, ?, ?, ?, ?)`,
		contentsTable,
		schema.Contents.UserID, schema.Contents.Title, schema.Contents.ContentType,
		schema.Contents.Status, schema.Contents.CreatedAt)
}

func (repository *SQLiteRepository) timestamp() string {
	return repository.now().UTC().Format(time.RFC3339Nano)
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanSQLiteEntry(row rowScanner) (*Entry, error) {
	entry := &Entry{}
	var (
		contentType, status string
		rating              sql.NullInt64
		createdAt           sql.NullString
	)

	err := row.Scan(&entry.ID, &entry.OwnerID, &entry.Title, &contentType, &status, &rating, &createdAt)
	if err != nil {
		return nil, err
	}

	entry.Type = Type(contentType)
	entry.Status = Status(status)
	if rating.Valid {
		value := int(rating.Int64)
		entry.Rating = &value
	}
	if createdAt.Valid {
		entry.CreatedAt = parseSQLiteTime(createdAt.String)
	}
	return entry, nil
}

func collectSQLiteEntries(rows *sql.Rows) ([]Entry, error) {
	defer rows.Close()

	entries := make([]Entry, 0)
	for rows.Next() {
		entry, err := scanSQLiteEntry(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_content")
		}
		entries = append(entries, *entry)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "iterate_contents")
	}
	return entries, nil
}

func parseSQLiteTime(value string) time.Time {
	for _, layout := range sqliteTimeLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// affectedOne maps "no row matched" to dberr.ErrNotFound.
func affectedOne(result sql.Result, err error, action string) error {
	if err != nil {
		return dberr.Wrap(err, action)
	}

	count, err := result.RowsAffected()
	if err != nil {
		return dberr.Wrap(err, action)
	}
	if count == 0 {
		return dberr.Wrap(sql.ErrNoRows, action)
	}
	return nil
}

