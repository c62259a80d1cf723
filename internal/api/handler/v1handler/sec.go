package v1handler

import (
	"context"
	"crypto/rsa"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"tb3/internal/config"
	"tb3/pkg/serrors"
)

// CtxKey is a string-based type used for storing values in request contexts.
type CtxKey string

// SignerKey is the context key under which the authenticated signer address is stored.
const SignerKey CtxKey = "Signer"

// SecHandlerOptions configures bearer token verification.
type SecHandlerOptions struct {
	// PublicKey is the PEM encoded RSA public key tokens are verified with.
	// Empty disables verification.
	PublicKey string
}

// NewSecHandlerOptions constructs SecHandlerOptions from the application config.
func NewSecHandlerOptions(cfg *config.Config) *SecHandlerOptions {
	return &SecHandlerOptions{PublicKey: cfg.Auth.PublicKey}
}

// SecHandler authenticates governance writes with RS256 JWTs. The token
// subject is the ledger address the write is signed as.
type SecHandler struct {
	key *rsa.PublicKey
}

// NewSecHandler parses the configured public key.
func NewSecHandler(opts *SecHandlerOptions) (*SecHandler, error) {
	if opts == nil || opts.PublicKey == "" {
		return &SecHandler{}, nil
	}

	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(opts.PublicKey))
	if err != nil {
		return nil, fmt.Errorf("could not parse RSA public key: %w", err)
	}

	return &SecHandler{key: key}, nil
}

// Enabled reports whether tokens are verified.
func (s SecHandler) Enabled() bool { return s.key != nil }

// HandleBearerAuth verifies token and stores its subject in the returned context.
func (s SecHandler) HandleBearerAuth(ctx context.Context, token string) (context.Context, error) {
	if s.key == nil {
		return ctx, serrors.With(serrors.ErrUnauthorized, "token verification is not configured")
	}

	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return s.key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token")
	}
	if claims.Subject == "" {
		return ctx, serrors.With(serrors.ErrUnauthorized, "token has no subject")
	}

	return context.WithValue(ctx, SignerKey, claims.Subject), nil
}

// BearerToken extracts the token of an "Authorization: Bearer" header.
func BearerToken(r *http.Request) (string, error) {
	h := r.Header.Get("Authorization")
	scheme, token, ok := strings.Cut(h, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", serrors.With(serrors.ErrUnauthorized, "missing bearer token")
	}

	return strings.TrimSpace(token), nil
}

// SignerFromContext returns the signer stored by HandleBearerAuth.
func SignerFromContext(ctx context.Context) (string, bool) {
	s, ok := ctx.Value(SignerKey).(string)

	return s, ok && s != ""
}
