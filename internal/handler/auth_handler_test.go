package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gatekeeper/internal/config"
	"gatekeeper/internal/errors"
	"gatekeeper/internal/handler"
	"gatekeeper/internal/router"
	"gatekeeper/internal/service"
)

// MockAuthService is a mock implementation of service.AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, name, secret string, scopes []string) (*service.AuthResult, error) {
	args := m.Called(ctx, name, secret, scopes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.AuthResult), args.Error(1)
}

func (m *MockAuthService) CheckAuth(ctx context.Context, credential string) (*service.CheckResult, error) {
	args := m.Called(ctx, credential)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.CheckResult), args.Error(1)
}

func (m *MockAuthService) CreateUser(ctx context.Context, credential, name, secret string, life uint64, scopes []string) error {
	args := m.Called(ctx, credential, name, secret, life, scopes)
	return args.Error(0)
}

func (m *MockAuthService) CreateScope(ctx context.Context, credential, name string) error {
	args := m.Called(ctx, credential, name)
	return args.Error(0)
}

func (m *MockAuthService) Clean(ctx context.Context, credential string) error {
	args := m.Called(ctx, credential)
	return args.Error(0)
}

func newServer(svc service.AuthService) *echo.Echo {
	e := echo.New()
	cfg := &config.Config{TestRoutes: false}
	router.Register(e, cfg, handler.NewAuthHandler(svc), handler.NewAdminHandler(svc), handler.NewTestHandler())
	return e
}

func doJSON(e *echo.Echo, method, path, body, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) (string, json.RawMessage) {
	t.Helper()
	var envelope struct {
		Status string          `json:"status"`
		Result json.RawMessage `json:"result"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope.Status, envelope.Result
}

func TestLoginSuccess(t *testing.T) {
	svc := new(MockAuthService)
	svc.On("Login", mock.Anything, "alice", "pw123", []string{"read"}).Return(&service.AuthResult{
		Token:  "deadbeefdeadbeefdeadbeefdeadbeef",
		Scopes: []string{"read"},
		Life:   3600,
	}, nil)

	e := newServer(svc)
	rec := doJSON(e, http.MethodPost, "/auth", `{"name":"alice","secret":"pw123","scopes":["read"]}`, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	status, result := decodeEnvelope(t, rec)
	assert.Equal(t, "ok", status)

	var payload service.AuthResult
	require.NoError(t, json.Unmarshal(result, &payload))
	assert.Equal(t, "deadbeefdeadbeefdeadbeefdeadbeef", payload.Token)
	assert.Equal(t, []string{"read"}, payload.Scopes)
	assert.Equal(t, uint64(3600), payload.Life)
}

func TestLoginBadSecret(t *testing.T) {
	svc := new(MockAuthService)
	svc.On("Login", mock.Anything, "alice", "wrong", mock.Anything).Return(nil, errors.ErrBadAuth)

	e := newServer(svc)
	rec := doJSON(e, http.MethodPost, "/auth", `{"name":"alice","secret":"wrong"}`, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	status, result := decodeEnvelope(t, rec)
	assert.Equal(t, "error", status)
	assert.JSONEq(t, `"auth failure"`, string(result))
}

func TestLoginBadScopes(t *testing.T) {
	svc := new(MockAuthService)
	svc.On("Login", mock.Anything, "alice", "pw123", []string{"write"}).Return(nil, errors.ErrBadScopes)

	e := newServer(svc)
	rec := doJSON(e, http.MethodPost, "/auth", `{"name":"alice","secret":"pw123","scopes":["write"]}`, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	status, result := decodeEnvelope(t, rec)
	assert.Equal(t, "error", status)
	assert.JSONEq(t, `"bad scopes"`, string(result))
}

func TestLoginMalformedBody(t *testing.T) {
	svc := new(MockAuthService)
	e := newServer(svc)
	rec := doJSON(e, http.MethodPost, "/auth", `{"name":`, "")

	status, result := decodeEnvelope(t, rec)
	assert.Equal(t, "error", status)
	assert.JSONEq(t, `"failed"`, string(result))
	svc.AssertNotCalled(t, "Login", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCheckAuth(t *testing.T) {
	svc := new(MockAuthService)
	svc.On("CheckAuth", mock.Anything, "deadbeef").Return(&service.CheckResult{
		Username: "alice",
		Life:     1800,
		Scopes:   []string{"read"},
	}, nil)

	e := newServer(svc)
	rec := doJSON(e, http.MethodGet, "/auth/check", "", "bearer deadbeef")

	assert.Equal(t, http.StatusOK, rec.Code)
	status, result := decodeEnvelope(t, rec)
	assert.Equal(t, "ok", status)

	var payload service.CheckResult
	require.NoError(t, json.Unmarshal(result, &payload))
	assert.Equal(t, "alice", payload.Username)
	assert.Equal(t, uint64(1800), payload.Life)
}

func TestCheckAuthMissingHeader(t *testing.T) {
	svc := new(MockAuthService)
	// A missing header reaches the service as the empty credential.
	svc.On("CheckAuth", mock.Anything, "").Return(nil, errors.ErrBadAuth)

	e := newServer(svc)
	rec := doJSON(e, http.MethodGet, "/auth/check", "", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	status, result := decodeEnvelope(t, rec)
	assert.Equal(t, "error", status)
	assert.JSONEq(t, `"auth failure"`, string(result))
}

func TestCheckAuthExpired(t *testing.T) {
	svc := new(MockAuthService)
	svc.On("CheckAuth", mock.Anything, "stale").Return(nil, errors.ErrExpired)

	e := newServer(svc)
	rec := doJSON(e, http.MethodGet, "/auth/check", "", "bearer stale")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	_, result := decodeEnvelope(t, rec)
	assert.JSONEq(t, `"expired"`, string(result))
}

func TestCreateUser(t *testing.T) {
	svc := new(MockAuthService)
	svc.On("CreateUser", mock.Anything, "admintok", "bob", "hunter2", uint64(3600), []string{"read"}).Return(nil)

	e := newServer(svc)
	body := `{"name":"bob","secret":"hunter2","life":3600,"scopes":["read"]}`
	rec := doJSON(e, http.MethodPost, "/admin/user", body, "bearer admintok")

	assert.Equal(t, http.StatusOK, rec.Code)
	status, result := decodeEnvelope(t, rec)
	assert.Equal(t, "ok", status)
	assert.JSONEq(t, `"created"`, string(result))
}

func TestCreateUserUnauthorized(t *testing.T) {
	svc := new(MockAuthService)
	svc.On("CreateUser", mock.Anything, "usertok", "bob", "hunter2", uint64(3600), mock.Anything).Return(errors.ErrBadAuth)

	e := newServer(svc)
	body := `{"name":"bob","secret":"hunter2","life":3600}`
	rec := doJSON(e, http.MethodPost, "/admin/user", body, "bearer usertok")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	status, result := decodeEnvelope(t, rec)
	assert.Equal(t, "error", status)
	assert.JSONEq(t, `"auth failure"`, string(result))
}

func TestCreateScope(t *testing.T) {
	svc := new(MockAuthService)
	svc.On("CreateScope", mock.Anything, "admintok", "reports").Return(nil)

	e := newServer(svc)
	rec := doJSON(e, http.MethodPost, "/admin/scope", `"reports"`, "bearer admintok")

	assert.Equal(t, http.StatusOK, rec.Code)
	status, result := decodeEnvelope(t, rec)
	assert.Equal(t, "ok", status)
	assert.JSONEq(t, `"created"`, string(result))
}

func TestClean(t *testing.T) {
	svc := new(MockAuthService)
	svc.On("Clean", mock.Anything, "admintok").Return(nil)

	e := newServer(svc)
	rec := doJSON(e, http.MethodPost, "/admin/clean", "", "bearer admintok")

	assert.Equal(t, http.StatusOK, rec.Code)
	status, result := decodeEnvelope(t, rec)
	assert.Equal(t, "ok", status)
	assert.JSONEq(t, `"cleaned"`, string(result))
}
