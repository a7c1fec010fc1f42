package auth

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stewardhq/steward/pkg/config"
	"github.com/stewardhq/steward/pkg/fault"
	"github.com/stewardhq/steward/pkg/outbound"
)

func testAuthConfig(localDev bool) *config.AuthConfig {
	return &config.AuthConfig{
		LocalDevMode:    localDev,
		SessionCacheTTL: time.Minute,
		DefaultTimezone: "UTC",
	}
}

func newTestValidator(t *testing.T, handler http.Handler, cfg *config.AuthConfig) *Validator {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	outCfg := &config.OutboundConfig{
		BreakerFailures:     5,
		BreakerCooldown:     time.Second,
		RetryBase:           time.Millisecond,
		RetryMax:            5 * time.Millisecond,
		RetryAttempts:       1,
		MaxConnsPerHost:     4,
		MaxIdleConnsPerHost: 2,
	}
	breaker := outbound.NewBreaker("auth", outCfg.BreakerFailures, outCfg.BreakerCooldown, nil)
	client := outbound.NewClient("auth", srv.URL, 2*time.Second, outCfg, breaker)
	return NewValidator(client, cfg)
}

func TestValidateResolvesSession(t *testing.T) {
	var calls atomic.Int32
	validator := newTestValidator(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, "/api/auth/user", r.URL.Path)
		assert.Equal(t, "tok-abc", r.Header.Get("X-Session-Id"))
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"user_id":"marta","role":"member","permissions":["chat"]}`)
	}), testAuthConfig(false))

	session, err := validator.Validate(context.Background(), "tok-abc")

	require.NoError(t, err)
	assert.Equal(t, "marta", session.UserID)
	assert.Equal(t, "member", session.Role)
	assert.True(t, session.HasPermission("chat"))
	assert.False(t, session.IsAdmin())
	assert.Equal(t, int32(1), calls.Load())
}

func TestValidateCachesPositiveResults(t *testing.T) {
	var calls atomic.Int32
	validator := newTestValidator(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		fmt.Fprint(w, `{"user_id":"marta","role":"member"}`)
	}), testAuthConfig(false))

	for i := 0; i < 3; i++ {
		session, err := validator.Validate(context.Background(), "tok-abc")
		require.NoError(t, err)
		assert.Equal(t, "marta", session.UserID)
	}

	assert.Equal(t, int32(1), calls.Load(), "repeat validations within TTL should hit the cache")
}

func TestValidateDoesNotCacheFailures(t *testing.T) {
	var calls atomic.Int32
	validator := newTestValidator(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"error":"unauthorized","message":"session expired"}`)
	}), testAuthConfig(false))

	for i := 0; i < 2; i++ {
		_, err := validator.Validate(context.Background(), "tok-dead")
		require.Error(t, err)
		assert.Equal(t, fault.KindUnauthorized, fault.KindOf(err))
	}

	assert.Equal(t, int32(2), calls.Load(), "rejected tokens must be re-asked every time")
}

func TestValidateCacheExpiry(t *testing.T) {
	var calls atomic.Int32
	cfg := testAuthConfig(false)
	cfg.SessionCacheTTL = 10 * time.Millisecond
	validator := newTestValidator(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		fmt.Fprint(w, `{"user_id":"marta","role":"member"}`)
	}), cfg)

	_, err := validator.Validate(context.Background(), "tok-abc")
	require.NoError(t, err)

	time.Sleep(25 * time.Millisecond)

	_, err = validator.Validate(context.Background(), "tok-abc")
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
}

func TestValidateHonorsSessionExpiry(t *testing.T) {
	var calls atomic.Int32
	validator := newTestValidator(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		exp := time.Now().Add(20 * time.Millisecond).Format(time.RFC3339Nano)
		fmt.Fprintf(w, `{"user_id":"marta","role":"member","expires_at":%q}`, exp)
	}), testAuthConfig(false))

	_, err := validator.Validate(context.Background(), "tok-abc")
	require.NoError(t, err)

	// Session's own expiry passes well before the cache TTL does.
	time.Sleep(50 * time.Millisecond)

	_, err = validator.Validate(context.Background(), "tok-abc")
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
}

func TestValidateMissingToken(t *testing.T) {
	validator := newTestValidator(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("auth service should not be called for a missing token")
	}), testAuthConfig(false))

	_, err := validator.Validate(context.Background(), "")

	require.Error(t, err)
	assert.Equal(t, fault.KindUnauthorized, fault.KindOf(err))
}

func TestValidateLocalDevDefaultUser(t *testing.T) {
	validator := NewValidator(nil, testAuthConfig(true))

	session, err := validator.Validate(context.Background(), "")

	require.NoError(t, err)
	assert.Equal(t, DefaultUserID, session.UserID)
	assert.True(t, session.IsAdmin())
}

func TestValidateAuthServiceUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // force connection refused

	outCfg := &config.OutboundConfig{
		BreakerFailures:     5,
		BreakerCooldown:     time.Second,
		RetryBase:           time.Millisecond,
		RetryMax:            2 * time.Millisecond,
		RetryAttempts:       1,
		MaxConnsPerHost:     4,
		MaxIdleConnsPerHost: 2,
	}
	breaker := outbound.NewBreaker("auth", outCfg.BreakerFailures, outCfg.BreakerCooldown, nil)
	client := outbound.NewClient("auth", srv.URL, 500*time.Millisecond, outCfg, breaker)
	validator := NewValidator(client, testAuthConfig(false))

	_, err := validator.Validate(context.Background(), "tok-abc")

	require.Error(t, err)
	assert.Equal(t, fault.KindUnavailable, fault.KindOf(err))
}

func TestRequireAdmin(t *testing.T) {
	validator := NewValidator(nil, testAuthConfig(true))

	tests := []struct {
		name    string
		session *Session
		want    fault.Kind
	}{
		{"admin role", &Session{UserID: "u", Role: "admin"}, ""},
		{"admin permission", &Session{UserID: "u", Role: "member", Permissions: []string{"admin"}}, ""},
		{"member", &Session{UserID: "u", Role: "member"}, fault.KindForbidden},
		{"nil session", nil, fault.KindUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.RequireAdmin(tt.session)
			if tt.want == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Equal(t, tt.want, fault.KindOf(err))
			}
		})
	}
}

func TestInvalidateForcesRevalidation(t *testing.T) {
	var calls atomic.Int32
	validator := newTestValidator(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		fmt.Fprint(w, `{"user_id":"marta","role":"member"}`)
	}), testAuthConfig(false))

	_, err := validator.Validate(context.Background(), "tok-abc")
	require.NoError(t, err)

	validator.Invalidate("tok-abc")

	_, err = validator.Validate(context.Background(), "tok-abc")
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
}
