// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package content

import "context"

// # Content Data Access

// Repository defines the data access contract for content entries.
//
// Every method except creation is scoped by ownerID: an entry owned by
// another member is indistinguishable from a missing one.
type Repository interface {

	/*
		Create inserts one entry and returns its assigned identifier.

		Parameters:
		  - context: context.Context
		  - ownerID: string (Discord user ID)
		  - title: string
		  - contentType: Type (already canonical)
		  - status: Status (already canonical)

		Returns:
		  - int64: New entry ID
		  - error: Persistence failures
	*/
	Create(context context.Context, ownerID, title string, contentType Type, status Status) (int64, error)

	/*
		CreateBatch inserts one entry per title, all sharing type and status.
		Either every row is inserted or none is.

		Returns:
		  - []int64: New entry IDs in title order
		  - error: Persistence failures
	*/
	CreateBatch(context context.Context, ownerID string, titles []string, contentType Type, status Status) ([]int64, error)

	/*
		ListByOwner returns every entry of ownerID ordered by id ascending.
	*/
	ListByOwner(context context.Context, ownerID string) ([]Entry, error)

	/*
		SearchByTitle returns up to limit entries of ownerID whose title contains
		fragment (case-insensitive), ordered by title.
	*/
	SearchByTitle(context context.Context, ownerID, fragment string, limit int) ([]Entry, error)

	/*
		FindByIDAndOwner retrieves one entry.

		Returns:
		  - *Entry: Hydrated entity
		  - error: dberr.ErrNotFound if missing or owned by someone else
	*/
	FindByIDAndOwner(context context.Context, id int64, ownerID string) (*Entry, error)

	/*
		UpdateStatus changes the status of one entry.

		Returns:
		  - error: dberr.ErrNotFound if no row matched id and owner
	*/
	UpdateStatus(context context.Context, id int64, ownerID string, status Status) error

	/*
		UpdateRating sets the rating of one entry.

		Returns:
		  - error: dberr.ErrNotFound if no row matched id and owner
	*/
	UpdateRating(context context.Context, id int64, ownerID string, rating int) error

	/*
		DeleteMany removes the listed entries that belong to ownerID in a
		single statement. IDs owned by others are ignored.

		Returns:
		  - int: Number of rows removed
		  - error: Persistence failures
	*/
	DeleteMany(context context.Context, ids []int64, ownerID string) (int, error)

	// Ping reports whether the store is reachable.
	Ping(context context.Context) error
}
