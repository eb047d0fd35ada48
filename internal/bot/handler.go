// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package bot

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/taibuivan/redherring/internal/core/content"
	"github.com/taibuivan/redherring/internal/panel"
	"github.com/taibuivan/redherring/internal/platform/apperr"
	"github.com/taibuivan/redherring/internal/platform/constants"
	"github.com/taibuivan/redherring/internal/platform/ctxutil"
	"github.com/taibuivan/redherring/internal/platform/metrics"
	"github.com/taibuivan/redherring/internal/platform/ratelimit"
)

// Responder answers interactions. *discordgo.Session satisfies it.
type Responder interface {
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
}

// Handler routes slash commands and component clicks to the content service.
type Handler struct {
	service  *content.Service
	sessions panel.Store
	limiter  *ratelimit.Limiter
	metrics  metrics.Recorder
	logger   *slog.Logger
	now      func() time.Time
}

// NewHandler wires the interaction handler. A nil limiter disables rate
// limiting and a nil recorder disables metrics.
func NewHandler(service *content.Service, sessions panel.Store, limiter *ratelimit.Limiter, recorder metrics.Recorder, logger *slog.Logger) *Handler {
	if recorder == nil {
		recorder = metrics.Nop{}
	}
	return &Handler{
		service:  service,
		sessions: sessions,
		limiter:  limiter,
		metrics:  recorder,
		logger:   logger,
		now:      time.Now,
	}
}

// # Dispatch

// Handle processes one interaction end to end. It never panics and never
// returns an error: failures are logged and reported privately to the member.
func (handler *Handler) Handle(parent context.Context, responder Responder, interaction *discordgo.Interaction) {
	user := invoker(interaction)
	if user == nil {
		return
	}

	name := interactionName(interaction)
	logger := handler.logger.With(
		slog.String("interaction_id", interaction.ID),
		slog.String("user_id", user.ID),
		slog.String("command", name),
	)

	context, cancel := context.WithTimeout(parent, constants.InteractionTimeout)
	defer cancel()
	context = ctxutil.WithInteractionID(context, interaction.ID)
	context = ctxutil.WithUserID(context, user.ID)
	context = ctxutil.WithLogger(context, logger)

	startTime := handler.now()
	defer func() {
		if recovered := recover(); recovered != nil {
			stackTrace := make([]byte, 2048)
			length := runtime.Stack(stackTrace, false)
			logger.Error("panic_recovered",
				slog.Any("error", recovered),
				slog.String("stack", string(stackTrace[:length])),
			)
			handler.metrics.RecordCommand(name, metrics.OutcomeError, handler.now().Sub(startTime))
			handler.reportError(context, responder, interaction, apperr.Internal(fmt.Errorf("panic: %v", recovered)))
		}
	}()

	if handler.limiter != nil && !handler.limiter.Allow(user.ID) {
		handler.metrics.RecordRateLimited()
		handler.reportError(context, responder, interaction, apperr.RateLimited())
		return
	}

	var err error
	switch interaction.Type {
	case discordgo.InteractionApplicationCommand:
		err = handler.dispatchCommand(context, responder, interaction, user)
	case discordgo.InteractionMessageComponent:
		err = handler.dispatchComponent(context, responder, interaction, user)
	default:
		return
	}

	handler.metrics.RecordCommand(name, outcome(err), handler.now().Sub(startTime))
	if err != nil {
		handler.reportError(context, responder, interaction, err)
	}
}

func (handler *Handler) dispatchCommand(context context.Context, responder Responder, interaction *discordgo.Interaction, user *discordgo.User) error {
	data := interaction.ApplicationCommandData()
	if data.Name != GroupName {
		return apperr.NotFound("Commande")
	}

	sub, options := subcommand(data)
	call := &call{
		context:     context,
		responder:   responder,
		interaction: interaction,
		user:        user,
		data:        data,
		options:     options,
	}

	switch sub {
	case CommandAdd:
		return handler.add(call, []string{options.String(OptionTitle)})
	case CommandAddMany:
		return handler.addMany(call)
	case CommandList:
		return handler.list(call)
	case CommandSearch:
		return handler.search(call)
	case CommandModify:
		return handler.modify(call)
	case CommandDelete:
		return handler.delete(call)
	case CommandRate:
		return handler.rate(call)
	default:
		return apperr.NotFound("Commande")
	}
}

func (handler *Handler) dispatchComponent(context context.Context, responder Responder, interaction *discordgo.Interaction, user *discordgo.User) error {
	data := interaction.MessageComponentData()

	kind, action, sessionID, ok := panel.ParseCustomID(data.CustomID)
	if !ok {
		return apperr.Expired()
	}

	session, err := handler.sessions.Load(context, sessionID)
	if err != nil {
		return err
	}
	if session.Kind != kind {
		return apperr.Expired()
	}
	if session.OwnerID != user.ID {
		return apperr.Forbidden("Ce panneau appartient à un autre membre.")
	}

	click := &click{
		context:     context,
		responder:   responder,
		interaction: interaction,
		user:        user,
		session:     session,
		action:      action,
		values:      data.Values,
	}

	switch kind {
	case panel.KindAdd:
		return handler.onAddForm(click)
	case panel.KindStatus:
		return handler.onStatusForm(click)
	case panel.KindDelete:
		return handler.onDeleteForm(click)
	case panel.KindBrowse:
		return handler.onBrowse(click)
	default:
		return apperr.Expired()
	}
}

// # Error Reporting

// reportError logs err and answers the member privately. Internal causes
// are logged but never shown.
func (handler *Handler) reportError(context context.Context, responder Responder, interaction *discordgo.Interaction, err error) {
	logger := ctxutil.GetLogger(context)

	appError := apperr.As(err)
	if appError == nil || appError.Code == apperr.CodeInternal {
		logger.Error("command_failed", slog.Any("error", err))
	} else {
		logger.Warn("command_rejected",
			slog.String("code", appError.Code),
			slog.String("message", appError.Message),
		)
	}

	response := &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: apperr.Describe(err),
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	}
	if respondErr := responder.InteractionRespond(interaction, response); respondErr != nil {
		logger.Error("interaction_respond_failed", slog.Any("error", respondErr))
	}
}

func outcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeOK
	case apperr.Is(err, apperr.CodeInternal) || !apperr.IsAppError(err):
		return metrics.OutcomeError
	default:
		return metrics.OutcomeRejected
	}
}

// interactionName labels an interaction for logs and metrics.
func interactionName(interaction *discordgo.Interaction) string {
	switch interaction.Type {
	case discordgo.InteractionApplicationCommand:
		sub, _ := subcommand(interaction.ApplicationCommandData())
		return GroupName + "/" + sub
	case discordgo.InteractionMessageComponent:
		kind, action, _, ok := panel.ParseCustomID(interaction.MessageComponentData().CustomID)
		if !ok {
			return "component/unknown"
		}
		return string(kind) + "/" + action
	default:
		return "unknown"
	}
}

// # Responses

// call is one slash command invocation.
type call struct {
	context     context.Context
	responder   Responder
	interaction *discordgo.Interaction
	user        *discordgo.User
	data        discordgo.ApplicationCommandInteractionData
	options     commandOptions
}

// click is one component interaction on an open panel.
type click struct {
	context     context.Context
	responder   Responder
	interaction *discordgo.Interaction
	user        *discordgo.User
	session     *panel.Session
	action      string
	values      []string
}

// firstValue returns the chosen value of a single-choice menu.
func (c *click) firstValue() string {
	if len(c.values) == 0 {
		return ""
	}
	return c.values[0]
}

// reply sends a new message answering the interaction.
func reply(responder Responder, interaction *discordgo.Interaction, view panel.View, components []discordgo.MessageComponent, ephemeral bool) error {
	data := &discordgo.InteractionResponseData{
		Embeds:     []*discordgo.MessageEmbed{toEmbed(view)},
		Components: components,
	}
	if ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}
	return respond(responder, interaction, discordgo.InteractionResponseChannelMessageWithSource, data)
}

// replyText sends a private plain-text answer.
func replyText(responder Responder, interaction *discordgo.Interaction, text string) error {
	return respond(responder, interaction, discordgo.InteractionResponseChannelMessageWithSource, &discordgo.InteractionResponseData{
		Content: text,
		Flags:   discordgo.MessageFlagsEphemeral,
	})
}

// update edits the message carrying the clicked component. A nil
// components slice removes every widget.
func update(responder Responder, interaction *discordgo.Interaction, view panel.View, components []discordgo.MessageComponent) error {
	if components == nil {
		components = []discordgo.MessageComponent{}
	}
	return respond(responder, interaction, discordgo.InteractionResponseUpdateMessage, &discordgo.InteractionResponseData{
		Embeds:     []*discordgo.MessageEmbed{toEmbed(view)},
		Components: components,
	})
}

func respond(responder Responder, interaction *discordgo.Interaction, kind discordgo.InteractionResponseType, data *discordgo.InteractionResponseData) error {
	err := responder.InteractionRespond(interaction, &discordgo.InteractionResponse{Type: kind, Data: data})
	if err != nil {
		return apperr.Internal(fmt.Errorf("interaction_respond: %w", err))
	}
	return nil
}
