// Package auth provides concrete implementations for identity resolution.
package auth

import (
	"context"

	"bazaar/config"
	"bazaar/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// jwtResolver resolves identities from HMAC-signed access tokens issued by
// the marketplace auth service.
type jwtResolver struct {
	secret string
}

// NewJWTResolver is the constructor for jwtResolver.
func NewJWTResolver(cfg *config.Config) (service.IdentityResolver, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}

	return &jwtResolver{secret: cfg.SecretKey.Access}, nil
}

// Resolve parses and verifies the access token and maps its claims onto an
// identity. Expired or tampered tokens fail here.
func (s *jwtResolver) Resolve(_ context.Context, credential string) (*service.Identity, error) {
	token, err := jwt.Parse(credential, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "parse access token")
	}
	if !token.Valid {
		return nil, errors.New("access token is not valid")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("unexpected token claims format")
	}

	sub, err := token.Claims.GetSubject()
	if err != nil {
		return nil, errors.Wrap(err, "missing sub claim")
	}
	userID, err := uuid.Parse(sub)
	if err != nil {
		return nil, errors.Wrap(err, "sub claim is not a user ID")
	}

	identity := &service.Identity{UserID: userID}
	if email, ok := claims["email"].(string); ok {
		identity.Email = email
	}
	if username, ok := claims["username"].(string); ok {
		identity.Username = username
	}

	return identity, nil
}
