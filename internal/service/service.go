// Package service holds the admin actions. Every action returns a Result
// with a localized message or an error whose text is safe to show.
package service

import (
	"context"
	"errors"

	"github.com/adamb00/CAR-RENTER-ADMIN-sub000/internal/logger"
	"github.com/adamb00/CAR-RENTER-ADMIN-sub000/internal/mail"
	"github.com/adamb00/CAR-RENTER-ADMIN-sub000/internal/payload"
	"github.com/adamb00/CAR-RENTER-ADMIN-sub000/internal/store"
	"github.com/go-playground/validator/v10"
)

var (
	ErrNotFound          = store.ErrNotFound
	ErrConflict          = store.ErrConflict
	ErrValidation        = errors.New("validation failed")
	ErrMailNotConfigured = mail.ErrNotConfigured
	ErrInvalidPayload    = payload.ErrMalformed
)

var validate = validator.New()

// Result is what a successful action reports back to the admin UI.
// Revalidate lists the admin views whose data changed.
type Result struct {
	Message    string   `json:"message"`
	Warning    string   `json:"warning,omitempty"`
	Revalidate []string `json:"revalidate,omitempty"`
}

// ActionError pairs an internal error with the message shown to the admin.
type ActionError struct {
	Err     error
	Message string
}

func (e *ActionError) Error() string { return e.Message }
func (e *ActionError) Unwrap() error { return e.Err }

func fail(err error, message string) error {
	return &ActionError{Err: err, Message: message}
}

// unexpected logs a downstream failure and hides it behind the generic message.
func unexpected(ctx context.Context, action string, err error) error {
	logger.ActionFailed(ctx, action, err)
	return fail(err, MsgUnexpected)
}

// lookup maps a failed read to not found or to the generic failure.
func lookup(ctx context.Context, action string, err error, notFound string) error {
	if errors.Is(err, ErrNotFound) {
		return fail(ErrNotFound, notFound)
	}
	return unexpected(ctx, action, err)
}
