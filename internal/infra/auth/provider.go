package auth

import (
	"log/slog"

	"bazaar/config"
	"bazaar/internal/domain/constants"
	"bazaar/internal/domain/service"
	"bazaar/internal/infra/auth/google"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ResolverParams holds dependencies for the identity resolver, injected by Fx
type ResolverParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewIdentityResolver creates an IdentityResolver based on configuration.
// The JWT resolver is the default.
func NewIdentityResolver(params ResolverParams) (service.IdentityResolver, error) {
	provider := constants.IdentityProviderJWT
	if params.Config.Identity != nil && params.Config.Identity.Provider != "" {
		provider = params.Config.Identity.Provider
	}

	switch provider {
	case constants.IdentityProviderJWT:
		params.Logger.Info("Using JWT identity resolver")

		return NewJWTResolver(params.Config)

	case constants.IdentityProviderGoogle:
		params.Logger.Info("Using Google identity resolver")

		return google.NewResolver(params.Config, params.Logger)

	default:
		return nil, errors.Errorf("unknown identity provider: %s", provider)
	}
}

// Module provides the identity resolver FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewIdentityResolver),
)
