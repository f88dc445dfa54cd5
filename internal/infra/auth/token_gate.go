// Package auth implements the AuthGate port over a bearer token. The gate
// inspects the token's claims without verifying its signature: the remote
// route service is the verifier, this side only needs expiry and roles to
// decide which persistence tier an operation takes.
package auth

import (
	"log/slog"
	"os"
	"slices"
	"strings"
	"sync"
	"time"

	"trailforge/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// gateClaims are the token claims the gate consumes.
type gateClaims struct {
	Roles []string `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

type TokenGate struct {
	mu     sync.RWMutex
	token  string
	claims *gateClaims

	parser *jwt.Parser
	logger *slog.Logger
}

// NewTokenGate creates the auth gate. The initial token comes from the
// configuration (inline or a token file); an empty token means anonymous,
// which degrades persistence to the local tier.
func NewTokenGate(cfg *config.Config, logger *slog.Logger) (*TokenGate, error) {
	gate := &TokenGate{
		parser: jwt.NewParser(),
		logger: logger,
	}

	token := ""
	if cfg.Auth != nil {
		token = cfg.Auth.Token
		if token == "" && cfg.Auth.TokenPath != "" {
			raw, err := os.ReadFile(cfg.Auth.TokenPath)
			if err != nil {
				return nil, errors.Wrap(err, "read token file")
			}
			token = strings.TrimSpace(string(raw))
		}
	}

	if token != "" {
		if err := gate.SetToken(token); err != nil {
			return nil, err
		}
	}

	return gate, nil
}

// SetToken installs a fresh bearer token from the re-authentication flow.
// The token is decoded, not verified; a malformed token is rejected.
func (g *TokenGate) SetToken(token string) error {
	claims := &gateClaims{}
	if _, _, err := g.parser.ParseUnverified(token, claims); err != nil {
		return errors.Wrap(err, "decode bearer token")
	}

	g.mu.Lock()
	g.token = token
	g.claims = claims
	g.mu.Unlock()

	return nil
}

// ClearToken drops the session, returning the gate to anonymous.
func (g *TokenGate) ClearToken() {
	g.mu.Lock()
	g.token = ""
	g.claims = nil
	g.mu.Unlock()
}

// IsAuthenticated reports whether a token is present and not expired.
func (g *TokenGate) IsAuthenticated() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if g.token == "" || g.claims == nil {
		return false
	}
	if g.claims.ExpiresAt != nil && g.claims.ExpiresAt.Before(time.Now()) {
		return false
	}

	return true
}

// HasRole reports whether the current session carries the role.
func (g *TokenGate) HasRole(role string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if g.claims == nil {
		return false
	}

	return slices.Contains(g.claims.Roles, role)
}

// Token returns the bearer token for remote calls.
func (g *TokenGate) Token() string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.token
}

// OnAuthRequired drops the stale session and signals the external re-auth
// flow. The operator supplies a new token through the token sink.
func (g *TokenGate) OnAuthRequired() {
	g.logger.Warn("Re-authentication required, clearing stale session")
	g.ClearToken()
}
