// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package panel

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/taibuivan/redherring/internal/platform/apperr"
	"github.com/taibuivan/redherring/pkg/uuid"
)

// Kind names the flow a session belongs to. It is also the first segment
// of every component custom ID of that flow.
type Kind string

const (
	KindAdd    Kind = "add"
	KindStatus Kind = "edit"
	KindDelete Kind = "del"
	KindBrowse Kind = "list"
)

// Component actions, the second custom ID segment.
const (
	ActionType    = "type"
	ActionStatus  = "status"
	ActionSelect  = "select"
	ActionConfirm = "confirm"
	ActionCancel  = "cancel"
	ActionPrev    = "prev"
	ActionNext    = "next"
)

// Session is the state of one open panel between two interactions.
// Exactly one of the flow fields is set, matching Kind.
type Session struct {
	ID      string `json:"id"`
	Kind    Kind   `json:"kind"`
	OwnerID string `json:"owner_id"`

	Add    *AddForm    `json:"add,omitempty"`
	Status *StatusForm `json:"status,omitempty"`
	Delete *DeleteForm `json:"delete,omitempty"`
	Browse *Browser    `json:"browse,omitempty"`
}

// NewSession allocates a session ID for a panel opened by ownerID.
func NewSession(kind Kind, ownerID string) *Session {
	return &Session{ID: uuid.New(), Kind: kind, OwnerID: ownerID}
}

// CustomID builds the component identifier of action on this session.
func (s *Session) CustomID(action string) string {
	return CustomID(s.Kind, action, s.ID)
}

// CustomID formats `<kind>:<action>:<session-id>`.
func CustomID(kind Kind, action, sessionID string) string {
	return fmt.Sprintf("%s:%s:%s", kind, action, sessionID)
}

// ParseCustomID splits a component identifier built by [CustomID].
func ParseCustomID(value string) (kind Kind, action, sessionID string, ok bool) {
	parts := strings.SplitN(value, ":", 3)
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" || !uuid.Valid(parts[2]) {
		return "", "", "", false
	}
	return Kind(parts[0]), parts[1], parts[2], true
}

// # Storage Contract

/*
Store keeps sessions between interactions.

Description: Load must return an apperr EXPIRED error for unknown or
timed-out sessions, so callers can tell the member to reopen the panel.
*/
type Store interface {
	Save(context context.Context, session *Session) error
	Load(context context.Context, id string) (*Session, error)
	Delete(context context.Context, id string) error

	// Take loads and removes a session in one step. Of several concurrent
	// calls for the same id, exactly one gets the session; the others get
	// apperr EXPIRED.
	Take(context context.Context, id string) (*Session, error)
}

// encode and decode give every store the same isolation: a loaded session
// never shares memory with the saved one.
func encode(session *Session) ([]byte, error) {
	data, err := json.Marshal(session)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("encode_session: %w", err))
	}
	return data, nil
}

func decode(data []byte) (*Session, error) {
	var session Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, apperr.Internal(fmt.Errorf("decode_session: %w", err))
	}
	return &session, nil
}
