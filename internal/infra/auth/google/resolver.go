// Package google resolves identities from Google ID tokens.
package google

import (
	"context"
	"log/slog"
	"strings"

	"bazaar/config"
	"bazaar/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"google.golang.org/api/idtoken"
)

// resolver verifies Google ID tokens against the configured OAuth client ID.
type resolver struct {
	clientID string
	logger   *slog.Logger
}

// NewResolver is the constructor for the Google identity resolver.
func NewResolver(cfg *config.Config, logger *slog.Logger) (service.IdentityResolver, error) {
	if cfg.GoogleOAuth == nil || cfg.GoogleOAuth.ClientID == "" {
		return nil, errors.New("google oauth client id must be provided")
	}

	return &resolver{
		clientID: cfg.GoogleOAuth.ClientID,
		logger:   logger,
	}, nil
}

// Resolve validates the ID token signature and audience, then maps the
// Google subject onto a stable user ID. Google subjects are opaque numeric
// strings, so the ID is derived deterministically from the subject.
func (s *resolver) Resolve(ctx context.Context, credential string) (*service.Identity, error) {
	payload, err := idtoken.Validate(ctx, credential, s.clientID)
	if err != nil {
		s.logger.Warn("Google ID token validation failed", slog.Any("error", err))

		return nil, errors.Wrap(err, "validate google id token")
	}

	identity := &service.Identity{
		UserID: uuid.NewSHA1(uuid.NameSpaceURL, []byte("google:"+payload.Subject)),
	}
	if email, ok := payload.Claims["email"].(string); ok {
		identity.Email = email
		identity.Username = usernameFromEmail(email)
	}

	return identity, nil
}

func usernameFromEmail(email string) string {
	local, _, found := strings.Cut(email, "@")
	if !found {
		return ""
	}

	return local
}
