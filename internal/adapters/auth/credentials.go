package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"organizerdashboard/internal/domain"
)

// checkExpiry inspects the bearer token's exp claim without verifying the
// signature; signature verification belongs to the remote service. A token
// already past its expiry fails fast locally instead of producing a doomed
// network call. Tokens that are not JWTs (or carry no exp claim) pass through
// untouched.
func checkExpiry(token string, now time.Time) error {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return nil
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil
	}
	if now.After(exp.Time) {
		return domain.ErrCredentialExpired
	}
	return nil
}

type staticCredentialProvider struct {
	token string
}

// NewStaticCredentialProvider returns a CredentialProvider that always serves
// the given token. Intended for tools and tests.
func NewStaticCredentialProvider(token string) domain.CredentialProvider {
	return &staticCredentialProvider{token: token}
}

func (p *staticCredentialProvider) Token(_ context.Context) (string, error) {
	if p.token == "" {
		return "", domain.ErrMissingCredential
	}
	if err := checkExpiry(p.token, time.Now()); err != nil {
		return "", err
	}
	return p.token, nil
}

// TokenFromContext extracts the caller's bearer token from a context. The
// delivery layer's passthrough middleware is the usual writer.
type TokenFromContext func(ctx context.Context) (string, bool)

type contextCredentialProvider struct {
	lookup TokenFromContext
}

// NewContextCredentialProvider returns a CredentialProvider that forwards the
// bearer token carried by the request context, after a local expiry check.
func NewContextCredentialProvider(lookup TokenFromContext) domain.CredentialProvider {
	return &contextCredentialProvider{lookup: lookup}
}

func (p *contextCredentialProvider) Token(ctx context.Context) (string, error) {
	token, ok := p.lookup(ctx)
	if !ok || token == "" {
		return "", domain.ErrMissingCredential
	}
	if err := checkExpiry(token, time.Now()); err != nil {
		return "", fmt.Errorf("context credential: %w", err)
	}
	return token, nil
}
