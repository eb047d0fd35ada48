// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package bot

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/taibuivan/redherring/internal/core/content"
	"github.com/taibuivan/redherring/internal/panel"
	"github.com/taibuivan/redherring/internal/platform/constants"
	"github.com/taibuivan/redherring/internal/platform/ctxutil"
	"github.com/taibuivan/redherring/internal/platform/validate"
	"github.com/taibuivan/redherring/pkg/split"
)

// # Add

// add opens the add form for titles. Nothing is stored until confirm.
func (handler *Handler) add(call *call, titles []string) error {
	kept := make([]string, 0, len(titles))
	for _, title := range titles {
		if trimmed := strings.TrimSpace(title); trimmed != "" {
			kept = append(kept, trimmed)
		}
	}
	if len(kept) == 0 {
		return validate.RequiredError(content.FieldTitles, "Aucun titre valide")
	}

	session := panel.NewSession(panel.KindAdd, call.user.ID)
	session.Add = panel.NewAddForm(kept)
	if err := handler.sessions.Save(call.context, session); err != nil {
		return err
	}

	return reply(call.responder, call.interaction, panel.RenderAddForm(session.Add), addComponents(session), true)
}

// addMany opens the add form for a comma-separated list of titles.
func (handler *Handler) addMany(call *call) error {
	return handler.add(call, split.Comma(call.options.String(OptionTitles)))
}

// # List

// list shows the browse panel, or the ratings report when notes is set.
func (handler *Handler) list(call *call) error {
	ownerID := call.user.ID
	ownerName := displayName(call.interaction.Member, call.user)
	if target := call.options.User(OptionMember); target != "" && target != call.user.ID {
		ownerID = target
		ownerName = resolvedName(call.data, target)
	}

	if call.options.Bool(OptionRated) {
		ranked, err := handler.service.Ratings(call.context, ownerID)
		if err != nil {
			return err
		}
		return reply(call.responder, call.interaction, panel.RenderRatings(ownerName, ranked, handler.now()), nil, false)
	}

	entries, err := handler.service.List(call.context, ownerID, content.ParseSort(call.options.String(OptionSort)))
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		if ownerID == call.user.ID {
			return replyText(call.responder, call.interaction, "Ta liste est vide.")
		}
		return replyText(call.responder, call.interaction, fmt.Sprintf("La liste de %s est vide.", ownerName))
	}

	session := panel.NewSession(panel.KindBrowse, call.user.ID)
	session.Browse = panel.NewBrowser(ownerName, entries)
	if err := handler.sessions.Save(call.context, session); err != nil {
		return err
	}

	return reply(call.responder, call.interaction, panel.RenderPage(session.Browse), browseComponents(session), false)
}

// # Search

func (handler *Handler) search(call *call) error {
	text := strings.TrimSpace(call.options.String(OptionText))

	entries, err := handler.service.Search(call.context, call.user.ID, text)
	if err != nil {
		return err
	}
	return reply(call.responder, call.interaction, panel.RenderSearch(text, entries), nil, true)
}

// # Modify

// modify opens the status form for one of the member's own entries.
func (handler *Handler) modify(call *call) error {
	id, _ := call.options.Int(OptionID)

	entry, err := handler.service.Get(call.context, id, call.user.ID)
	if err != nil {
		return err
	}

	session := panel.NewSession(panel.KindStatus, call.user.ID)
	session.Status = panel.NewStatusForm(*entry)
	if err := handler.sessions.Save(call.context, session); err != nil {
		return err
	}

	return reply(call.responder, call.interaction, panel.RenderStatusForm(session.Status), statusComponents(session), true)
}

// # Delete

// delete opens the multi-select delete form over the matching entries of
// the target member. Targeting someone else requires administrator rights.
func (handler *Handler) delete(call *call) error {
	targetID := call.user.ID
	targetName := displayName(call.interaction.Member, call.user)
	if target := call.options.User(OptionMember); target != "" && target != call.user.ID {
		targetID = target
		targetName = resolvedName(call.data, target)
	}

	if err := handler.service.AuthorizeTarget(call.user.ID, targetID, isAdmin(call.interaction)); err != nil {
		return err
	}

	candidates, err := handler.service.DeleteCandidates(call.context, targetID,
		call.options.String(OptionType), call.options.String(OptionStatus))
	if err != nil {
		return err
	}
	if len(candidates) == 0 {
		return replyText(call.responder, call.interaction, "Aucun contenu ne correspond à ces critères.")
	}

	session := panel.NewSession(panel.KindDelete, call.user.ID)
	session.Delete = panel.NewDeleteForm(targetID, candidates, constants.SelectMenuLimit)
	if err := handler.sessions.Save(call.context, session); err != nil {
		return err
	}

	if session.Delete.Truncated {
		ctxutil.GetLogger(call.context).Info("delete_candidates_truncated",
			slog.Int("matched", len(candidates)),
			slog.Int("offered", len(session.Delete.Candidates)),
		)
	}

	return reply(call.responder, call.interaction, panel.RenderDeleteForm(session.Delete, targetName), deleteComponents(session), true)
}

// # Rate

func (handler *Handler) rate(call *call) error {
	id, _ := call.options.Int(OptionID)
	note, ok := call.options.Int(OptionNote)
	if !ok {
		return validate.RequiredError(content.FieldRating, "Ce champ est obligatoire")
	}

	entry, err := handler.service.Rate(call.context, id, call.user.ID, int(note))
	if err != nil {
		return err
	}
	return reply(call.responder, call.interaction, panel.RenderRated(*entry, handler.now()), nil, true)
}
