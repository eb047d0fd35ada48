// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package panel holds the state of interactive panels independently of the chat
platform that renders them.

# Core Responsibility

  - Forms: AddForm, StatusForm and DeleteForm collect choices in memory and
    only hand a validated command to the caller on confirm.
  - Browsing: Browser filters and pages an already-fetched snapshot.
  - Rendering: Render* functions turn state into a platform-neutral [View].
  - Sessions: a [Store] keeps panels between two interactions.

Nothing in this package talks to the content store.
*/
package panel

import (
	"github.com/taibuivan/redherring/internal/core/content"
	"github.com/taibuivan/redherring/internal/platform/apperr"
	"github.com/taibuivan/redherring/internal/platform/validate"
	"github.com/taibuivan/redherring/pkg/split"
)

// FormState is the position of a form in its lifecycle.
type FormState string

const (
	StateCollectingType   FormState = "collecting_type"
	StateCollectingStatus FormState = "collecting_status"
	StateSelecting        FormState = "selecting"
	StateReady            FormState = "ready"
	StateCommitted        FormState = "committed"
)

// errClosed is returned by every transition of a committed form.
var errClosed = apperr.Expired()

// # Add Form

// AddForm collects the shared type and status of one or more new titles.
type AddForm struct {
	Titles    []string       `json:"titles"`
	Type      content.Type   `json:"type,omitempty"`
	Status    content.Status `json:"status,omitempty"`
	Committed bool           `json:"committed,omitempty"`
}

// NewAddForm starts an add flow for titles.
func NewAddForm(titles []string) *AddForm {
	return &AddForm{Titles: titles}
}

// State derives the current lifecycle position.
func (f *AddForm) State() FormState {
	switch {
	case f.Committed:
		return StateCommitted
	case f.Type == "":
		return StateCollectingType
	case f.Status == "":
		return StateCollectingStatus
	default:
		return StateReady
	}
}

// SelectType records the chosen type without looking at the status.
func (f *AddForm) SelectType(value string) error {
	if f.Committed {
		return errClosed
	}
	f.Type = content.NormalizeType(value)
	return nil
}

// SelectStatus records the chosen status without looking at the type.
func (f *AddForm) SelectStatus(value string) error {
	if f.Committed {
		return errClosed
	}
	f.Status = content.NormalizeStatus(value)
	return nil
}

// Confirm returns the insertion request once both choices are set. A
// missing choice is a validation error and leaves the form unchanged.
func (f *AddForm) Confirm(ownerID string) (content.NewEntries, error) {
	if f.Committed {
		return content.NewEntries{}, errClosed
	}

	err := (&validate.Validator{}).
		Custom(content.FieldType, f.Type == "", "Choisis un type").
		Custom(content.FieldStatus, f.Status == "", "Choisis un statut").
		Err()
	if err != nil {
		return content.NewEntries{}, err
	}

	return content.NewEntries{
		OwnerID: ownerID,
		Titles:  f.Titles,
		Type:    string(f.Type),
		Status:  string(f.Status),
	}, nil
}

// MarkCommitted makes the form inert.
func (f *AddForm) MarkCommitted() { f.Committed = true }

// # Status Form

// StatusForm changes the status of one entry already verified to belong
// to the requester.
type StatusForm struct {
	EntryID   int64          `json:"entry_id"`
	Title     string         `json:"title"`
	Current   content.Status `json:"current"`
	Status    content.Status `json:"status,omitempty"`
	Committed bool           `json:"committed,omitempty"`
}

// NewStatusForm starts a status change for entry.
func NewStatusForm(entry content.Entry) *StatusForm {
	return &StatusForm{EntryID: entry.ID, Title: entry.Title, Current: entry.Status}
}

// State derives the current lifecycle position.
func (f *StatusForm) State() FormState {
	switch {
	case f.Committed:
		return StateCommitted
	case f.Status == "":
		return StateCollectingStatus
	default:
		return StateReady
	}
}

// SelectStatus records the chosen status.
func (f *StatusForm) SelectStatus(value string) error {
	if f.Committed {
		return errClosed
	}
	f.Status = content.NormalizeStatus(value)
	return nil
}

// Confirm returns the chosen status, or a validation error if none was picked.
func (f *StatusForm) Confirm() (content.Status, error) {
	if f.Committed {
		return "", errClosed
	}
	if f.Status == "" {
		return "", validate.RequiredError(content.FieldStatus, "Choisis un statut")
	}
	return f.Status, nil
}

// MarkCommitted makes the form inert.
func (f *StatusForm) MarkCommitted() { f.Committed = true }

// # Delete Form

// Candidate is one selectable entry of a delete form.
type Candidate struct {
	ID     int64          `json:"id"`
	Title  string         `json:"title"`
	Type   content.Type   `json:"type"`
	Status content.Status `json:"status"`
}

// DeleteForm offers a multi-select over the entries matching the lookup.
type DeleteForm struct {
	TargetID   string      `json:"target_id"`
	Candidates []Candidate `json:"candidates"`
	Selected   []int64     `json:"selected,omitempty"`
	Truncated  bool        `json:"truncated,omitempty"`
	Committed  bool        `json:"committed,omitempty"`
}

// NewDeleteForm builds the option list from the matching entries, keeping
// at most limit of them.
func NewDeleteForm(targetID string, entries []content.Entry, limit int) *DeleteForm {
	form := &DeleteForm{TargetID: targetID}
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
		form.Truncated = true
	}

	form.Candidates = make([]Candidate, 0, len(entries))
	for _, entry := range entries {
		form.Candidates = append(form.Candidates, Candidate{
			ID: entry.ID, Title: entry.Title, Type: entry.Type, Status: entry.Status,
		})
	}
	return form
}

// State derives the current lifecycle position.
func (f *DeleteForm) State() FormState {
	switch {
	case f.Committed:
		return StateCommitted
	case len(f.Selected) == 0:
		return StateSelecting
	default:
		return StateReady
	}
}

// Select replaces the selection with the given option values. Values that
// are not offered candidates are dropped.
func (f *DeleteForm) Select(values []string) error {
	if f.Committed {
		return errClosed
	}

	offered := make(map[int64]struct{}, len(f.Candidates))
	for _, candidate := range f.Candidates {
		offered[candidate.ID] = struct{}{}
	}

	f.Selected = f.Selected[:0]
	for _, id := range split.IDs(values) {
		if _, ok := offered[id]; ok {
			f.Selected = append(f.Selected, id)
		}
	}
	return nil
}

// Confirm returns the ids to delete. An empty selection is a validation error.
func (f *DeleteForm) Confirm() ([]int64, error) {
	if f.Committed {
		return nil, errClosed
	}
	if len(f.Selected) == 0 {
		return nil, validate.RequiredError(content.FieldIDs, "Sélectionne au moins un contenu")
	}
	return append([]int64(nil), f.Selected...), nil
}

// MarkCommitted makes the form inert.
func (f *DeleteForm) MarkCommitted() { f.Committed = true }
