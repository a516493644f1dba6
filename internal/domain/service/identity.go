// Package service declares the domain-level collaborator interfaces the
// wizard depends on. Concrete implementations live under internal/infra.
package service

import (
	"context"

	"github.com/google/uuid"
)

// Identity is the resolved authenticated-user value used to pre-populate a
// fresh draft. It is passed into the wizard explicitly; the wizard never
// reaches into an ambient auth context.
type Identity struct {
	UserID   uuid.UUID
	Email    string
	Username string
}

// IdentityResolver turns a bearer credential into an Identity. Resolution
// happens once per wizard session, at start; an unresolvable credential
// simply leaves the identity fields of the draft empty.
type IdentityResolver interface {
	Resolve(ctx context.Context, credential string) (*Identity, error)
}
