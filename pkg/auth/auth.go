// Package auth resolves session tokens to user identities via the auth
// collaborator service. The core never stores users or sessions; it holds a
// validated Session in memory for the life of a request and caches positive
// lookups briefly so chat turns don't pay an auth round trip each time.
package auth

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/stewardhq/steward/pkg/config"
	"github.com/stewardhq/steward/pkg/fault"
	"github.com/stewardhq/steward/pkg/outbound"
)

// DefaultUserID is the identity assigned in local-dev mode when no session
// token accompanies a request.
const DefaultUserID = "default"

// AdminRole grants access to admin-only routes.
const AdminRole = "admin"

// Session is a validated identity, resolved from a session token.
type Session struct {
	UserID      string
	Role        string
	Permissions []string

	// ExpiresAt is the session's server-side expiry. Zero means the auth
	// service did not report one.
	ExpiresAt time.Time
}

// IsAdmin reports whether the session may use admin-only routes.
func (s *Session) IsAdmin() bool {
	return s.Role == AdminRole || s.HasPermission(AdminRole)
}

// HasPermission reports whether the session carries the named permission.
func (s *Session) HasPermission(perm string) bool {
	return slices.Contains(s.Permissions, perm)
}

// Validator resolves session tokens against the auth service, with a TTL
// cache in front. In local-dev mode a missing token resolves to the default
// admin user so the assistant works without an auth service running.
type Validator struct {
	client   *outbound.Client
	cache    *sessionCache
	localDev bool
	logger   *slog.Logger
}

// NewValidator creates a session validator. client may be nil only in
// local-dev mode.
func NewValidator(client *outbound.Client, cfg *config.AuthConfig) *Validator {
	return &Validator{
		client:   client,
		cache:    newSessionCache(cfg.SessionCacheTTL),
		localDev: cfg.LocalDevMode,
		logger:   slog.With("component", "auth"),
	}
}

// userResponse is the auth service's reply to GET /api/auth/user.
type userResponse struct {
	UserID      string   `json:"user_id"`
	Role        string   `json:"role"`
	Permissions []string `json:"permissions"`
	ExpiresAt   string   `json:"expires_at,omitempty"`
}

// Validate resolves a session token to a Session.
//
// Steps:
//  1. Empty token: local-dev resolves to the default admin user,
//     otherwise Unauthorized.
//  2. Cache hit within TTL returns the cached session.
//  3. Ask the auth service, passing the token as X-Session-ID.
//  4. Cache and return the resolved session.
//
// Only positive results are cached; failures always re-ask.
func (v *Validator) Validate(ctx context.Context, token string) (*Session, error) {
	// Step 1: missing token.
	if token == "" {
		if v.localDev {
			return localSession(), nil
		}
		return nil, fault.Unauthorized("missing session token")
	}

	// Step 2: cache.
	if session, ok := v.cache.get(token); ok {
		return session, nil
	}

	if v.client == nil {
		if v.localDev {
			// No auth service to ask; accept the token as the default user.
			return localSession(), nil
		}
		return nil, fault.Internal("auth service not configured")
	}

	// Step 3: auth service round trip. The outbound client maps HTTP 401
	// to Unauthorized and connection/timeout failures to their own kinds.
	resp, err := v.client.Do(ctx, &outbound.Request{
		Method: http.MethodGet,
		Path:   "/api/auth/user",
		Header: http.Header{"X-Session-Id": []string{token}},
	})
	if err != nil {
		return nil, err
	}

	var user userResponse
	if err := resp.DecodeJSON(&user); err != nil {
		return nil, fmt.Errorf("failed to decode auth response: %w", err)
	}
	if user.UserID == "" {
		return nil, fault.Internal("auth service returned no user id")
	}

	session := &Session{
		UserID:      user.UserID,
		Role:        user.Role,
		Permissions: user.Permissions,
	}
	if user.ExpiresAt != "" {
		exp, err := time.Parse(time.RFC3339, user.ExpiresAt)
		if err != nil {
			v.logger.Debug("Ignoring unparsable session expiry",
				"user_id", user.UserID, "expires_at", user.ExpiresAt)
		} else {
			session.ExpiresAt = exp
		}
	}

	// Step 4: cache the positive result.
	v.cache.set(token, session)
	return session, nil
}

// RequireAdmin returns Forbidden unless the session has admin access.
func (v *Validator) RequireAdmin(session *Session) error {
	if session == nil {
		return fault.Unauthorized("missing session")
	}
	if !session.IsAdmin() {
		return fault.Forbidden("admin access required")
	}
	return nil
}

// Invalidate drops a token from the cache, forcing revalidation.
func (v *Validator) Invalidate(token string) {
	v.cache.invalidate(token)
}

func localSession() *Session {
	return &Session{
		UserID:      DefaultUserID,
		Role:        AdminRole,
		Permissions: []string{AdminRole},
	}
}
