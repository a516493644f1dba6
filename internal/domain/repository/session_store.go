// Package repository declares the persistence-facing interfaces of the
// domain. Wizard sessions are in-process state, so the only store is the
// in-memory one under internal/infra/session.
package repository

import (
	"context"

	"bazaar/internal/domain/entity"
	"bazaar/internal/errors"

	"github.com/google/uuid"
)

// ErrSessionNotFound is returned when no session exists for the given ID.
var ErrSessionNotFound = errors.New("wizard session not found")

// SessionStore owns the live wizard sessions. Update and View run their
// callback while holding the session's lock, so each session behaves like
// the single-threaded event loop the wizard was designed around: one
// mutation runs to completion before the next is admitted.
type SessionStore interface {
	// Create registers a new session.
	Create(ctx context.Context, session *entity.WizardSession) error

	// Update runs fn with exclusive access to the session. Changes made by
	// fn are retained; an error from fn is returned as-is.
	Update(ctx context.Context, id uuid.UUID, fn func(*entity.WizardSession) error) error

	// View runs fn with shared read access to the session. fn must not
	// mutate the session.
	View(ctx context.Context, id uuid.UUID, fn func(*entity.WizardSession) error) error

	// Delete removes a session. Deleting a missing session is not an error.
	Delete(ctx context.Context, id uuid.UUID) error
}
