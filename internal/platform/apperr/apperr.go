// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package apperr defines the centralized error handling framework for Red Herring.

It provides a rich error type that bridges the gap between low-level Domain/Storage
errors and the private replies shown to the member who issued a command.

Architecture:

  - AppError: A struct containing a machine-readable Code and a member-facing message.
  - Taxonomy: validation, authorization, not-found, rate limit, internal.
  - Privacy: Cause is logged server-side and never shown in Discord.

Every error that leaves the service layer should be an [AppError] so the bot
layer can render it without inspecting storage details.
*/
package apperr

import (
	"errors"
	"fmt"
)

// # Error Codes

const (
	CodeNotFound    = "NOT_FOUND"
	CodeForbidden   = "FORBIDDEN"
	CodeValidation  = "VALIDATION_ERROR"
	CodeRateLimited = "RATE_LIMITED"
	CodeExpired     = "EXPIRED"
	CodeInternal    = "INTERNAL_ERROR"
)

// AppError is the canonical error type for the bot.
//
// # Security
//
// The Cause field is for server-side logging only and is never sent to members
// to avoid leaking internal implementation details (e.g., SQL queries).
type AppError struct {
	// Code is a machine-readable error identifier (e.g. "NOT_FOUND").
	Code string `json:"code"`
	// Message is a French description safe to show to the member.
	Message string `json:"error"`
	// Cause is the underlying error, used for server-side logging only.
	Cause error `json:"-"`
	// Details holds per-field validation errors for VALIDATION_ERROR replies.
	Details []FieldError `json:"details,omitempty"`
}

// FieldError represents a single field-level validation failure.
type FieldError struct {
	// Field is the command option name that failed validation.
	Field string `json:"field"`
	// Message is the human-readable description of the failure.
	Message string `json:"message"`
}

// Error implements the error interface. It returns the member-safe message.
func (e *AppError) Error() string { return e.Message }

// Unwrap allows [errors.Is] and [errors.As] to traverse the cause chain.
func (e *AppError) Unwrap() error { return e.Cause }

// # Member Errors

// NotFound creates a NOT_FOUND [AppError] for a named resource.
//
// Example:
//
//	apperr.NotFound("Contenu #12") // Returns "Contenu #12 introuvable."
func NotFound(resource string) *AppError {
	return &AppError{
		Code:    CodeNotFound,
		Message: resource + " introuvable.",
	}
}

// Forbidden creates a FORBIDDEN [AppError].
func Forbidden(msg string) *AppError {
	return &AppError{
		Code:    CodeForbidden,
		Message: msg,
	}
}

// ValidationError creates a VALIDATION_ERROR [AppError] with optional per-field details.
func ValidationError(msg string, details ...FieldError) *AppError {
	return &AppError{
		Code:    CodeValidation,
		Message: msg,
		Details: details,
	}
}

// RateLimited creates a RATE_LIMITED [AppError].
func RateLimited() *AppError {
	return &AppError{
		Code:    CodeRateLimited,
		Message: "Doucement ! Réessaie dans quelques secondes.",
	}
}

// Expired creates an EXPIRED [AppError] for interactive panels that are gone.
func Expired() *AppError {
	return &AppError{
		Code:    CodeExpired,
		Message: "Ce panneau a expiré. Relance la commande.",
	}
}

// # Server Errors

// Internal creates an INTERNAL_ERROR [AppError] wrapping an unexpected failure.
// The cause is stored for logging but is never sent to the member.
func Internal(cause error) *AppError {
	return &AppError{
		Code:    CodeInternal,
		Message: "Une erreur inattendue est survenue.",
		Cause:   cause,
	}
}

// # Helpers

// IsAppError reports whether err (or any error in its chain) is an [*AppError].
func IsAppError(err error) bool {
	var ae *AppError
	return errors.As(err, &ae)
}

// As extracts the [*AppError] from err's chain. It returns nil if not found.
func As(err error) *AppError {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae
	}
	return nil
}

// Is reports whether err carries an [*AppError] with the given code.
func Is(err error, code string) bool {
	ae := As(err)
	return ae != nil && ae.Code == code
}

// Describe renders the member-facing text of err, including field details.
// Errors that are not [*AppError] render as the generic internal message.
func Describe(err error) string {
	ae := As(err)
	if ae == nil {
		ae = Internal(err)
	}

	msg := ae.Message
	for _, detail := range ae.Details {
		msg += fmt.Sprintf("\n• %s : %s", detail.Field, detail.Message)
	}
	return msg
}
