// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package content

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/taibuivan/redherring/internal/platform/apperr"
	"github.com/taibuivan/redherring/internal/platform/constants"
	"github.com/taibuivan/redherring/internal/platform/ctxutil"
	"github.com/taibuivan/redherring/internal/platform/validate"
	"github.com/taibuivan/redherring/pkg/slice"
)

// # Service Layer

// Service orchestrates business rules for content entries: normalization,
// validation, ownership and ranking.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a new content [Service].
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// # Entry Creation

/*
Add inserts one entry per title, all sharing the normalized type and status.

Parameters:
  - context: context.Context
  - request: NewEntries (owner, titles, raw type and status)

Returns:
  - []Entry: The created entries, IDs assigned
  - error: Validation or persistence failures
*/
func (service *Service) Add(context context.Context, request NewEntries) ([]Entry, error) {
	contentType := NormalizeType(request.Type)
	status := NormalizeStatus(request.Status)
	titles := make([]string, 0, len(request.Titles))
	for _, title := range request.Titles {
		if trimmed := strings.TrimSpace(title); trimmed != "" {
			titles = append(titles, trimmed)
		}
	}

	validator := &validate.Validator{}
	validator.
		Required("owner", request.OwnerID).
		Custom(FieldTitles, len(titles) == 0, "Aucun titre valide").
		Required(FieldType, request.Type).
		Required(FieldStatus, request.Status)
	for _, title := range titles {
		validator.MaxLen(FieldTitle, title, maxTitleLength)
	}
	// Only known values are stored; the capitalized fallback never reaches the table.
	if request.Type != "" {
		validator.Custom(FieldType, !contentType.IsKnown(), "Type inconnu")
	}
	if request.Status != "" {
		validator.Custom(FieldStatus, !status.IsKnown(), "Statut inconnu")
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	var ids []int64
	if len(titles) == 1 {
		id, err := service.repo.Create(context, request.OwnerID, titles[0], contentType, status)
		if err != nil {
			return nil, err
		}
		ids = []int64{id}
	} else {
		var err error
		ids, err = service.repo.CreateBatch(context, request.OwnerID, titles, contentType, status)
		if err != nil {
			return nil, err
		}
	}

	entries := make([]Entry, len(ids))
	for i, id := range ids {
		entries[i] = Entry{ID: id, OwnerID: request.OwnerID, Title: titles[i], Type: contentType, Status: status}
	}

	service.audit(context, "content_added",
		slog.String("owner_id", request.OwnerID),
		slog.Int("count", len(entries)),
		slog.String("content_type", string(contentType)),
		slog.String("status", string(status)),
	)

	return entries, nil
}

// # Entry Retrieval

// List returns every entry of ownerID in the requested order.
func (service *Service) List(context context.Context, ownerID string, sort Sort) ([]Entry, error) {
	entries, err := service.repo.ListByOwner(context, ownerID)
	if err != nil {
		return nil, err
	}
	SortEntries(entries, sort)
	return entries, nil
}

// Ratings returns the rated entries of ownerID with their dense ranks.
func (service *Service) Ratings(context context.Context, ownerID string) ([]RankedEntry, error) {
	entries, err := service.repo.ListByOwner(context, ownerID)
	if err != nil {
		return nil, err
	}
	return Rank(entries), nil
}

// Search returns up to [constants.SearchLimit] entries whose title contains text.
func (service *Service) Search(context context.Context, ownerID, text string) ([]Entry, error) {
	if err := (&validate.Validator{}).Required("texte", text).MaxLen("texte", text, maxTitleLength).Err(); err != nil {
		return nil, err
	}
	return service.repo.SearchByTitle(context, ownerID, text, constants.SearchLimit)
}

/*
Get retrieves one entry owned by ownerID.

Returns:
  - *Entry: Hydrated entity
  - error: apperr NOT_FOUND naming the id when missing or owned by someone else
*/
func (service *Service) Get(context context.Context, id int64, ownerID string) (*Entry, error) {
	if err := (&validate.Validator{}).Positive(FieldID, id).Err(); err != nil {
		return nil, err
	}

	entry, err := service.repo.FindByIDAndOwner(context, id, ownerID)
	if err != nil {
		return nil, notFoundAs(err, id)
	}
	return entry, nil
}

// # Entry Mutation

// ChangeStatus sets the normalized status of one owned entry.
func (service *Service) ChangeStatus(context context.Context, id int64, ownerID, rawStatus string) (Status, error) {
	status := NormalizeStatus(rawStatus)

	validator := &validate.Validator{}
	validator.Positive(FieldID, id).Required(FieldStatus, rawStatus)
	// Same rule as Add: the capitalized fallback is rejected, not stored.
	if rawStatus != "" {
		validator.Custom(FieldStatus, !status.IsKnown(), "Statut inconnu")
	}
	if err := validator.Err(); err != nil {
		return "", err
	}

	if err := service.repo.UpdateStatus(context, id, ownerID, status); err != nil {
		return "", notFoundAs(err, id)
	}

	service.audit(context, "content_status_changed",
		slog.Int64("content_id", id),
		slog.String("owner_id", ownerID),
		slog.String("status", string(status)),
	)
	return status, nil
}

// Rate sets the rating of one owned entry. Notes outside [0,10] are rejected
// before the store is touched.
func (service *Service) Rate(context context.Context, id int64, ownerID string, note int) (*Entry, error) {
	err := (&validate.Validator{}).
		Positive(FieldID, id).
		Range(FieldRating, note, MinRating, MaxRating).
		Err()
	if err != nil {
		return nil, err
	}

	entry, err := service.Get(context, id, ownerID)
	if err != nil {
		return nil, err
	}

	if err := service.repo.UpdateRating(context, id, ownerID, note); err != nil {
		return nil, notFoundAs(err, id)
	}
	entry.Rating = &note

	service.audit(context, "content_rated",
		slog.Int64("content_id", id),
		slog.String("owner_id", ownerID),
		slog.Int("rating", note),
	)
	return entry, nil
}

// # Deletion

/*
AuthorizeTarget checks that requesterID may manage targetID's entries.

Description: members always manage their own list; acting on someone
else's list requires the elevated (administrator) permission.
*/
func (service *Service) AuthorizeTarget(requesterID, targetID string, elevated bool) error {
	if targetID == "" || targetID == requesterID || elevated {
		return nil
	}

	service.logger.Warn("content_access_denied",
		slog.String("requester_id", requesterID),
		slog.String("target_id", targetID),
	)
	return apperr.Forbidden("Tu dois être administrateur pour gérer la liste d'un autre membre.")
}

// DeleteCandidates lists ownerID's entries matching the optional raw
// type/status filters, normalized the same way as writes.
func (service *Service) DeleteCandidates(context context.Context, ownerID, rawType, rawStatus string) ([]Entry, error) {
	filter := Filter{}
	if strings.TrimSpace(rawType) != "" {
		filter.Type = NormalizeType(rawType)
	}
	if strings.TrimSpace(rawStatus) != "" {
		filter.Status = NormalizeStatus(rawStatus)
	}

	entries, err := service.repo.ListByOwner(context, ownerID)
	if err != nil {
		return nil, err
	}
	return slice.Filter(entries, filter.Match), nil
}

// Delete removes the selected entries of ownerID and returns how many were
// removed. IDs that belong to other members are ignored.
func (service *Service) Delete(context context.Context, ids []int64, ownerID string) (int, error) {
	if err := (&validate.Validator{}).Custom(FieldIDs, len(ids) == 0, "Sélectionne au moins un contenu").Err(); err != nil {
		return 0, err
	}

	removed, err := service.repo.DeleteMany(context, ids, ownerID)
	if err != nil {
		return 0, err
	}

	service.audit(context, "content_deleted",
		slog.String("owner_id", ownerID),
		slog.Int("requested", len(ids)),
		slog.Int("removed", removed),
	)
	return removed, nil
}

// Ping reports whether the underlying store is reachable.
func (service *Service) Ping(context context.Context) error {
	return service.repo.Ping(context)
}

// audit logs a committed mutation together with the interaction and the
// member that caused it, when the context carries them. Admin deletions
// are the case where actor_id and owner_id differ.
func (service *Service) audit(context context.Context, event string, attrs ...any) {
	if id := ctxutil.GetInteractionID(context); id != "" {
		attrs = append(attrs, slog.String("interaction_id", id))
	}
	if actor := ctxutil.GetUserID(context); actor != "" {
		attrs = append(attrs, slog.String("actor_id", actor))
	}
	service.logger.InfoContext(context, event, attrs...)
}

// notFoundAs replaces the generic not-found error with one naming the id.
func notFoundAs(err error, id int64) error {
	if apperr.Is(err, apperr.CodeNotFound) {
		return apperr.NotFound(fmt.Sprintf("Contenu #%d", id))
	}
	return err
}
