// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package schema holds the table and column identifiers shared by the
// PostgreSQL and SQLite repositories.
package schema

// ContentsTable represents the 'contents' table
type ContentsTable struct {
	Table       string
	ID          string
	UserID      string
	Title       string
	ContentType string
	Status      string
	Rating      string
	CreatedAt   string
}

// Contents is the schema definition for contents.
//
// The owner column keeps the historical name user_id so databases created by
// earlier deployments are migrated in place.
var Contents = ContentsTable{
	Table:       "contents",
	ID:          "id",
	UserID:      "user_id",
	Title:       "title",
	ContentType: "content_type",
	Status:      "status",
	Rating:      "rating",
	CreatedAt:   "created_at",
}

// Columns returns every column in scan order.
func (t ContentsTable) Columns() []string {
	return []string{
		t.ID, t.UserID, t.Title, t.ContentType, t.Status, t.Rating, t.CreatedAt,
	}
}
