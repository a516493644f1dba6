// Package session contains the in-memory wizard session store. Sessions are
// in-process state for the wizard's lifetime; nothing here outlives the
// service.
package session

import (
	"context"
	"sync"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"
	"bazaar/internal/errors"

	"github.com/google/uuid"
)

// entry pairs a session with its own lock so one session's work never
// blocks another's.
type entry struct {
	mu      sync.RWMutex
	session *entity.WizardSession
}

type memoryStore struct {
	mu      sync.RWMutex
	entries map[uuid.UUID]*entry
}

// NewStore creates the in-memory session store.
func NewStore() repository.SessionStore {
	return &memoryStore{entries: make(map[uuid.UUID]*entry)}
}

func (s *memoryStore) Create(_ context.Context, session *entity.WizardSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.entries[session.ID]; exists {
		return errors.Errorf("session %s already exists", session.ID)
	}
	s.entries[session.ID] = &entry{session: session}

	return nil
}

// Update runs fn with exclusive access to the session. The per-session lock
// serializes mutations, mirroring the run-to-completion event model the
// wizard assumes.
func (s *memoryStore) Update(_ context.Context, id uuid.UUID, fn func(*entity.WizardSession) error) error {
	e, err := s.lookup(id)
	if err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	return fn(e.session)
}

func (s *memoryStore) View(_ context.Context, id uuid.UUID, fn func(*entity.WizardSession) error) error {
	e, err := s.lookup(id)
	if err != nil {
		return err
	}

	e.mu.RLock()
	defer e.mu.RUnlock()

	return fn(e.session)
}

func (s *memoryStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, id)

	return nil
}

func (s *memoryStore) lookup(id uuid.UUID) (*entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[id]
	if !ok {
		return nil, errors.WithStack(repository.ErrSessionNotFound)
	}

	return e, nil
}
