// Package session answers one question for protected views: is the current
// session usable? The answer is tri-state, because a view may be entered
// while the token source is still resolving, and protected content must not
// render until the state is known.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Status is the resolved session state for a protected view.
type Status int

const (
	// StatusPending means the token source has not resolved yet; render
	// nothing.
	StatusPending Status = iota
	// StatusAuthenticated means the session token is present and unexpired.
	StatusAuthenticated
	// StatusUnauthenticated means there is no usable session; redirect to
	// the entry view.
	StatusUnauthenticated
)

// ErrPending is returned by a TokenSource that has not finished resolving.
var ErrPending = errors.New("session: token source still resolving")

// TokenSource supplies the current access token, if any.
type TokenSource interface {
	AccessToken(ctx context.Context) (string, error)
}

// Checker resolves the session state. Protected views call Check exactly
// once on entry.
type Checker interface {
	Check(ctx context.Context) Status
}

// TokenChecker derives the session state from a bearer token without a
// round trip: a missing or expired token is unauthenticated. Signature
// verification stays with the server; an expired-but-signed token would be
// rejected there anyway, this check just avoids rendering a view that is
// guaranteed to bounce.
type TokenChecker struct {
	Tokens TokenSource

	// Now is overridable for tests; defaults to time.Now.
	Now func() time.Time
}

// NewTokenChecker creates a Checker over the given token source.
func NewTokenChecker(tokens TokenSource) *TokenChecker {
	return &TokenChecker{Tokens: tokens, Now: time.Now}
}

// Check implements Checker.
func (c *TokenChecker) Check(ctx context.Context) Status {
	token, err := c.Tokens.AccessToken(ctx)
	if errors.Is(err, ErrPending) {
		return StatusPending
	}
	if err != nil || token == "" {
		return StatusUnauthenticated
	}

	claims := jwt.RegisteredClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, &claims); err != nil {
		return StatusUnauthenticated
	}

	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	if claims.ExpiresAt != nil && !claims.ExpiresAt.After(now()) {
		return StatusUnauthenticated
	}
	return StatusAuthenticated
}

// StaticToken is a TokenSource holding a fixed token, convenient for tests
// and for CLI callers that load the token up front.
type StaticToken string

// AccessToken implements TokenSource.
func (s StaticToken) AccessToken(context.Context) (string, error) {
	return string(s), nil
}
