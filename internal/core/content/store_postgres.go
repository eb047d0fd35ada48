// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package content

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/redherring/internal/platform/database/schema"
	"github.com/taibuivan/redherring/internal/platform/dberr"
	"github.com/taibuivan/redherring/internal/platform/postgres"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed content store.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var (
	contentsTable = schema.Contents.Table
	selectColumns = strings.Join(schema.Contents.Columns(), ", ")
)

// # Content Mutation

func (repository *PostgresRepository) Create(context context.Context, ownerID, title string, contentType Type, status Status) (int64, error) {
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s, %s) VALUES ($1, $2, $3, $4) RETURNING %s`,
		contentsTable,
		schema.Contents.UserID, schema.Contents.Title, schema.Contents.ContentType, schema.Contents.Status,
		schema.Contents.ID)

	var id int64
	err := repository.db.QueryRow(context, query, ownerID, title, string(contentType), string(status)).Scan(&id)
	if err != nil {
		return 0, dberr.Wrap(err, "insert_content")
	}
	return id, nil
}

/*
CreateBatch inserts all titles inside one transaction.

Description: pgx.BeginFunc commits when the callback returns nil and rolls
back otherwise, so a failing title leaves no partial batch behind.
*/
func (repository *PostgresRepository) CreateBatch(context context.Context, ownerID string, titles []string, contentType Type, status Status) ([]int64, error) {
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s, %s) VALUES ($1, $2, $3, $4) RETURNING %s`,
		contentsTable,
		schema.Contents.UserID, schema.Contents.Title, schema.Contents.ContentType, schema.Contents.Status,
		schema.Contents.ID)

	ids := make([]int64, 0, len(titles))
	err := pgx.BeginFunc(context, repository.db, func(tx pgx.Tx) error {
		for _, title := range titles {
			var id int64
			if err := tx.QueryRow(context, query, ownerID, title, string(contentType), string(status)).Scan(&id); err != nil {
				return err
			}
			ids = append(ids, id)
		}
		return nil
	})
	if err != nil {
		return nil, dberr.Wrap(err, "insert_content_batch")
	}
	return ids, nil
}

func (repository *PostgresRepository) UpdateStatus(context context.Context, id int64, ownerID string, status Status) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $3 WHERE %s = $1 AND %s = $2`,
		contentsTable, schema.Contents.Status, schema.Contents.ID, schema.Contents.UserID)

	tag, err := repository.db.Exec(context, query, id, ownerID, string(status))
	if err != nil {
		return dberr.Wrap(err, "update_content_status")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) UpdateRating(context context.Context, id int64, ownerID string, rating int) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $3 WHERE %s = $1 AND %s = $2`,
		contentsTable, schema.Contents.Rating, schema.Contents.ID, schema.Contents.UserID)

	tag, err := repository.db.Exec(context, query, id, ownerID, rating)
	if err != nil {
		return dberr.Wrap(err, "update_content_rating")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) DeleteMany(context context.Context, ids []int64, ownerID string) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = ANY($1) AND %s = $2`,
		contentsTable, schema.Contents.ID, schema.Contents.UserID)

	tag, err := repository.db.Exec(context, query, ids, ownerID)
	if err != nil {
		return 0, dberr.Wrap(err, "delete_contents")
	}
	return int(tag.RowsAffected()), nil
}

// # Content Retrieval

func (repository *PostgresRepository) ListByOwner(context context.Context, ownerID string) ([]Entry, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 ORDER BY %s ASC`,
		selectColumns, contentsTable, schema.Contents.UserID, schema.Contents.ID)

	rows, err := repository.db.Query(context, query, ownerID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_contents")
	}
	return collectEntries(rows)
}

/*
SearchByTitle performs a case-insensitive substring match.

Description: LIKE metacharacters in the fragment are escaped so "100%" is
matched literally.
*/
func (repository *PostgresRepository) SearchByTitle(context context.Context, ownerID, fragment string, limit int) ([]Entry, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 AND %s ILIKE $2 ORDER BY LOWER(%s) ASC, %s ASC LIMIT $3`,
		selectColumns, contentsTable,
		schema.Contents.UserID, schema.Contents.Title,
		schema.Contents.Title, schema.Contents.ID)

	rows, err := repository.db.Query(context, query, ownerID, likePattern(fragment), limit)
	if err != nil {
		return nil, dberr.Wrap(err, "search_contents")
	}
	return collectEntries(rows)
}

func (repository *PostgresRepository) FindByIDAndOwner(context context.Context, id int64, ownerID string) (*Entry, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 AND %s = $2`,
		selectColumns, contentsTable, schema.Contents.ID, schema.Contents.UserID)

	entry, err := scanEntry(repository.db.QueryRow(context, query, id, ownerID))
	if err != nil {
		return nil, dberr.Wrap(err, "get_content")
	}
	return entry, nil
}

// Ping verifies the pool is reachable.
func (repository *PostgresRepository) Ping(context context.Context) error {
	return postgres.Ping(context, repository.db)
}

// # Scanning Helpers

func scanEntry(row pgx.Row) (*Entry, error) {
	entry := &Entry{}
	var contentType, status string
	err := row.Scan(
		&entry.ID, &entry.OwnerID, &entry.Title, &contentType, &status, &entry.Rating, &entry.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	entry.Type = Type(contentType)
	entry.Status = Status(status)
	return entry, nil
}

func collectEntries(rows pgx.Rows) ([]Entry, error) {
	defer rows.Close()

	entries := make([]Entry, 0)
	for rows.Next() {
		entry, err := scanEntry(rows)
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

// likePattern escapes LIKE metacharacters and wraps fragment in wildcards.
func likePattern(fragment string) string {
	escaper := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + escaper.Replace(strings.TrimSpace(fragment)) + "%"
}
