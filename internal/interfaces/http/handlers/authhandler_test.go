package handlers

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chamados/servicedesk/internal/application/auth/dto"
	"github.com/chamados/servicedesk/internal/application/auth/usecases"
	"github.com/chamados/servicedesk/internal/domain/user"
	"github.com/chamados/servicedesk/internal/interfaces/http/handlers/testutil"
	"github.com/chamados/servicedesk/internal/shared/authorization"
	"github.com/chamados/servicedesk/internal/shared/errors"
)

// =====================================================================
// Mock use cases
// =====================================================================

type mockLoginUC struct {
	result  *usecases.LoginResult
	err     error
	lastCmd usecases.LoginCommand
}

func (m *mockLoginUC) Execute(_ context.Context, cmd usecases.LoginCommand) (*usecases.LoginResult, error) {
	m.lastCmd = cmd
	return m.result, m.err
}

type mockUnlockLoginUC struct {
	err     error
	lastCmd usecases.UnlockLoginCommand
}

func (m *mockUnlockLoginUC) Execute(_ context.Context, cmd usecases.UnlockLoginCommand) error {
	m.lastCmd = cmd
	return m.err
}

type mockListLoginEventsUC struct {
	result    []dto.LoginEventDTO
	err       error
	lastQuery usecases.ListLoginEventsQuery
}

func (m *mockListLoginEventsUC) Execute(_ context.Context, query usecases.ListLoginEventsQuery) ([]dto.LoginEventDTO, error) {
	m.lastQuery = query
	return m.result, m.err
}

type mockListLockoutsUC struct {
	result []dto.LockoutDTO
	err    error
}

func (m *mockListLockoutsUC) Execute(_ context.Context) ([]dto.LockoutDTO, error) {
	return m.result, m.err
}

// =====================================================================
// Test helper
// =====================================================================

type authDeps struct {
	login    *mockLoginUC
	unlock   *mockUnlockLoginUC
	events   *mockListLoginEventsUC
	lockouts *mockListLockoutsUC
}

func newTestAuthHandler() (*AuthHandler, authDeps) {
	deps := authDeps{
		login:    &mockLoginUC{},
		unlock:   &mockUnlockLoginUC{},
		events:   &mockListLoginEventsUC{},
		lockouts: &mockListLockoutsUC{},
	}
	return NewAuthHandler(deps.login, deps.unlock, deps.events, deps.lockouts, testutil.NewMockLogger()), deps
}

func activeAnalyst(t *testing.T) *user.User {
	t.Helper()
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	u, err := user.ReconstructUser(1712000000000, "Bia Souza", "bia", "s3cret", authorization.RoleAnalyst, true, now, now)
	require.NoError(t, err)
	return u
}

// =====================================================================
// Login
// =====================================================================

func TestAuthHandler_Login_Success(t *testing.T) {
	handler, deps := newTestAuthHandler()
	deps.login.result = &usecases.LoginResult{Token: "signed-token", User: activeAnalyst(t)}

	c, w := testutil.NewTestContext(http.MethodPost, "/api/auth/login", LoginRequest{Login: "Bia", Password: "s3cret"})
	c.Request.Header.Set("User-Agent", "desk-test/1.0")

	handler.Login(c)

	require.Equal(t, http.StatusOK, w.Code)
	var resp LoginResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "signed-token", resp.Token)
	assert.Equal(t, dto.SessionUserDTO{ID: 1712000000000, Name: "Bia Souza", Role: "analyst", Active: true}, resp.User)

	assert.Equal(t, "Bia", deps.login.lastCmd.Login)
	assert.Equal(t, "desk-test/1.0", deps.login.lastCmd.UserAgent)
	assert.NotEmpty(t, deps.login.lastCmd.SourceIP)
}

func TestAuthHandler_Login_ErrorStatuses(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		errType string
	}{
		{"missing fields", errors.NewValidationError("login and password are required"), http.StatusBadRequest, "validation_error"},
		{"invalid credentials", errors.NewInvalidCredentialsError(), http.StatusUnauthorized, "invalid_credentials"},
		{"inactive", errors.NewAccountInactiveError(), http.StatusForbidden, "account_inactive"},
		{"locked", errors.NewAccountLockedError(15), http.StatusTooManyRequests, "account_locked"},
		{"storage failure", stderrors.New("disk full"), http.StatusInternalServerError, "internal_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, deps := newTestAuthHandler()
			deps.login.err = tt.err

			c, w := testutil.NewTestContext(http.MethodPost, "/api/auth/login", LoginRequest{Login: "bia", Password: "x"})
			handler.Login(c)

			assert.Equal(t, tt.status, w.Code)
			var resp testutil.APIResponse
			require.NoError(t, testutil.ParseResponse(w, &resp))
			assert.False(t, resp.Success)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.errType, resp.Error.Type)
		})
	}
}

func TestAuthHandler_Login_LockedCarriesRetryHint(t *testing.T) {
	handler, deps := newTestAuthHandler()
	deps.login.err = errors.NewAccountLockedError(12)

	c, w := testutil.NewTestContext(http.MethodPost, "/api/auth/login", LoginRequest{Login: "bia", Password: "x"})
	handler.Login(c)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, "Try again in 12 minute(s)", resp.Error.Details)
}

func TestAuthHandler_Login_MalformedBody(t *testing.T) {
	handler, _ := newTestAuthHandler()

	c, w := testutil.NewTestContext(http.MethodPost, "/api/auth/login", "not an object")
	handler.Login(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// =====================================================================
// Session
// =====================================================================

func TestAuthHandler_Check(t *testing.T) {
	handler, _ := newTestAuthHandler()

	c, w := testutil.NewTestContext(http.MethodGet, "/api/auth/check", nil)
	testutil.SetAuthContext(c, testutil.Admin)
	handler.Check(c)

	require.Equal(t, http.StatusOK, w.Code)
	var resp CheckResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.LoggedIn)
	assert.Equal(t, "admin", resp.User.Role)
	assert.Equal(t, int64(1), resp.User.ID)
}

func TestAuthHandler_Logout(t *testing.T) {
	handler, _ := newTestAuthHandler()

	c, w := testutil.NewTestContext(http.MethodPost, "/api/auth/logout", nil)
	handler.Logout(c)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]bool
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, map[string]bool{"success": true, "logout": true}, body)
}

// =====================================================================
// Admin views
// =====================================================================

func TestAuthHandler_ListLoginEvents_PassesLimit(t *testing.T) {
	handler, deps := newTestAuthHandler()
	deps.events.result = []dto.LoginEventDTO{{ID: "ev-1", Outcome: "success"}}

	c, w := testutil.NewTestContext(http.MethodGet, "/api/auth/login-events", nil)
	testutil.SetAuthContext(c, testutil.Admin)
	testutil.SetQueryParams(c, map[string]string{"limit": "50"})
	handler.ListLoginEvents(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 50, deps.events.lastQuery.Limit)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	var events []dto.LoginEventDTO
	require.NoError(t, json.Unmarshal(resp.Data, &events))
	assert.Len(t, events, 1)
}

func TestAuthHandler_ListLoginEvents_BadLimit(t *testing.T) {
	handler, _ := newTestAuthHandler()

	c, w := testutil.NewTestContext(http.MethodGet, "/api/auth/login-events", nil)
	testutil.SetQueryParams(c, map[string]string{"limit": "lots"})
	handler.ListLoginEvents(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandler_ListLockouts(t *testing.T) {
	handler, deps := newTestAuthHandler()
	until := time.Date(2024, 3, 1, 9, 15, 0, 0, time.UTC)
	deps.lockouts.result = []dto.LockoutDTO{{Login: "bia", FailCount: 5, BlockedUntil: until, RemainingMinutes: 15}}

	c, w := testutil.NewTestContext(http.MethodGet, "/api/auth/lockouts", nil)
	handler.ListLockouts(c)

	require.Equal(t, http.StatusOK, w.Code)
	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.JSONEq(t, `[{"login":"bia","failCount":5,"blockedUntil":"2024-03-01T09:15:00Z","remainingMinutes":15}]`, string(resp.Data))
}

func TestAuthHandler_UnlockLogin(t *testing.T) {
	handler, deps := newTestAuthHandler()

	c, w := testutil.NewTestContext(http.MethodPost, "/api/auth/lockouts/Bia/unlock", nil)
	testutil.SetAuthContext(c, testutil.Admin)
	testutil.SetURLParam(c, "login", "Bia")
	handler.UnlockLogin(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Bia", deps.unlock.lastCmd.Login)
	assert.Equal(t, testutil.Admin, deps.unlock.lastCmd.Actor)
}

func TestAuthHandler_UnlockLogin_RequiresCaller(t *testing.T) {
	handler, _ := newTestAuthHandler()

	c, w := testutil.NewTestContext(http.MethodPost, "/api/auth/lockouts/bia/unlock", nil)
	testutil.SetURLParam(c, "login", "bia")
	handler.UnlockLogin(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
