// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package bot

import (
	"log/slog"

	"github.com/taibuivan/redherring/internal/panel"
	"github.com/taibuivan/redherring/internal/platform/apperr"
	"github.com/taibuivan/redherring/internal/platform/ctxutil"
)

// # Add Form

func (handler *Handler) onAddForm(click *click) error {
	form := click.session.Add
	if form == nil {
		return apperr.Expired()
	}

	switch click.action {
	case panel.ActionType:
		if err := form.SelectType(click.firstValue()); err != nil {
			return err
		}
	case panel.ActionStatus:
		if err := form.SelectStatus(click.firstValue()); err != nil {
			return err
		}
	case panel.ActionConfirm:
		if err := handler.claim(click); err != nil {
			return err
		}
		if form = click.session.Add; form == nil {
			return apperr.Expired()
		}

		request, err := form.Confirm(click.user.ID)
		if err != nil {
			return handler.restore(click, err)
		}

		entries, err := handler.service.Add(click.context, request)
		if err != nil {
			return handler.restore(click, err)
		}
		form.MarkCommitted()
		handler.metrics.RecordEntriesAdded(len(entries))

		return update(click.responder, click.interaction, panel.RenderAdded(entries, handler.now()), nil)
	case panel.ActionCancel:
		return handler.cancel(click, "Ajout annulé.")
	default:
		return apperr.Expired()
	}

	if err := handler.sessions.Save(click.context, click.session); err != nil {
		return err
	}
	return update(click.responder, click.interaction, panel.RenderAddForm(form), addComponents(click.session))
}

// # Status Form

func (handler *Handler) onStatusForm(click *click) error {
	form := click.session.Status
	if form == nil {
		return apperr.Expired()
	}

	switch click.action {
	case panel.ActionStatus:
		if err := form.SelectStatus(click.firstValue()); err != nil {
			return err
		}
	case panel.ActionConfirm:
		if err := handler.claim(click); err != nil {
			return err
		}
		if form = click.session.Status; form == nil {
			return apperr.Expired()
		}

		status, err := form.Confirm()
		if err != nil {
			return handler.restore(click, err)
		}

		if _, err := handler.service.ChangeStatus(click.context, form.EntryID, click.user.ID, string(status)); err != nil {
			return handler.restore(click, err)
		}
		form.MarkCommitted()

		return update(click.responder, click.interaction, panel.RenderStatusChanged(form, handler.now()), nil)
	case panel.ActionCancel:
		return handler.cancel(click, "Modification annulée.")
	default:
		return apperr.Expired()
	}

	if err := handler.sessions.Save(click.context, click.session); err != nil {
		return err
	}
	return update(click.responder, click.interaction, panel.RenderStatusForm(form), statusComponents(click.session))
}

// # Delete Form

func (handler *Handler) onDeleteForm(click *click) error {
	form := click.session.Delete
	if form == nil {
		return apperr.Expired()
	}

	switch click.action {
	case panel.ActionSelect:
		if err := form.Select(click.values); err != nil {
			return err
		}
	case panel.ActionConfirm:
		if err := handler.claim(click); err != nil {
			return err
		}
		if form = click.session.Delete; form == nil {
			return apperr.Expired()
		}

		ids, err := form.Confirm()
		if err != nil {
			return handler.restore(click, err)
		}

		removed, err := handler.service.Delete(click.context, ids, form.TargetID)
		if err != nil {
			return handler.restore(click, err)
		}
		form.MarkCommitted()
		handler.metrics.RecordEntriesDeleted(removed)

		return update(click.responder, click.interaction, panel.RenderDeleted(removed, handler.now()), nil)
	case panel.ActionCancel:
		return handler.cancel(click, "Suppression annulée.")
	default:
		return apperr.Expired()
	}

	if err := handler.sessions.Save(click.context, click.session); err != nil {
		return err
	}
	return update(click.responder, click.interaction, panel.RenderDeleteForm(form, click.interactionTarget()), deleteComponents(click.session))
}

// # Browse Panel

func (handler *Handler) onBrowse(click *click) error {
	browser := click.session.Browse
	if browser == nil {
		return apperr.Expired()
	}

	switch click.action {
	case panel.ActionType:
		browser.SetTypeFilter(click.firstValue())
	case panel.ActionStatus:
		browser.SetStatusFilter(click.firstValue())
	case panel.ActionPrev:
		browser.Prev()
	case panel.ActionNext:
		browser.Next()
	default:
		return apperr.Expired()
	}

	if err := handler.sessions.Save(click.context, click.session); err != nil {
		return err
	}
	return update(click.responder, click.interaction, panel.RenderPage(browser), browseComponents(click.session))
}

// # Helpers

func (handler *Handler) cancel(click *click, message string) error {
	handler.closeSession(click)
	return update(click.responder, click.interaction, panel.View{Title: message, Color: panel.ColorDefault}, nil)
}

// claim takes the session out of the store before a commit. Of several
// confirms racing on one panel only the first gets it; the rest see an
// expired panel.
func (handler *Handler) claim(click *click) error {
	session, err := handler.sessions.Take(click.context, click.session.ID)
	if err != nil {
		return err
	}
	if session.Kind != click.session.Kind || session.OwnerID != click.user.ID {
		return apperr.Expired()
	}
	click.session = session
	return nil
}

// restore puts a claimed session back after a failed commit so the member
// can fix the form and confirm again. It returns cause unchanged.
func (handler *Handler) restore(click *click, cause error) error {
	if err := handler.sessions.Save(click.context, click.session); err != nil {
		ctxutil.GetLogger(click.context).Warn("session_restore_failed",
			slog.String("session_id", click.session.ID),
			slog.Any("error", err),
		)
	}
	return cause
}

// closeSession forgets a finished panel. A failure only leaves an inert
// session behind until it expires.
func (handler *Handler) closeSession(click *click) {
	if err := handler.sessions.Delete(click.context, click.session.ID); err != nil {
		ctxutil.GetLogger(click.context).Warn("session_delete_failed",
			slog.String("session_id", click.session.ID),
			slog.Any("error", err),
		)
	}
}

// interactionTarget names the member whose entries a delete panel shows.
func (c *click) interactionTarget() string {
	if c.session.Delete != nil && c.session.Delete.TargetID != c.user.ID {
		return "<@" + c.session.Delete.TargetID + ">"
	}
	return displayName(c.interaction.Member, c.user)
}
