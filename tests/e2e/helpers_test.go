//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/apetrini/todolist-backend/internal/adapter/postgres"
	"github.com/apetrini/todolist-backend/internal/adapter/postgres/item"
	"github.com/apetrini/todolist-backend/internal/adapter/postgres/list"
	"github.com/apetrini/todolist-backend/internal/adapter/postgres/session"
	"github.com/apetrini/todolist-backend/internal/adapter/postgres/testhelper"
	"github.com/apetrini/todolist-backend/internal/adapter/postgres/user"
	tokenauth "github.com/apetrini/todolist-backend/internal/auth"
	"github.com/apetrini/todolist-backend/internal/config"
	authsvc "github.com/apetrini/todolist-backend/internal/service/auth"
	todosvc "github.com/apetrini/todolist-backend/internal/service/todo"
	"github.com/apetrini/todolist-backend/internal/transport/middleware"
	"github.com/apetrini/todolist-backend/internal/transport/rest"
)

// testServer bundles a fully wired HTTP server over the shared test database.
type testServer struct {
	URL    string
	Client *http.Client
}

func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	authCfg := config.AuthConfig{
		SessionSecret:    "e2e-secret-e2e-secret-e2e-secret-1234567",
		SessionIssuer:    "todolist-e2e",
		PasswordHashCost: 4,
	}
	corsCfg := config.CORSConfig{
		AllowedOrigins: "*",
		AllowedMethods: "GET,POST,DELETE,OPTIONS",
		AllowedHeaders: "Authorization,Content-Type",
	}

	txManager := postgres.NewTxManager(pool)
	tokenManager := tokenauth.NewTokenManager(authCfg.SessionSecret, authCfg.SessionIssuer)

	authService := authsvc.NewService(logger, user.New(pool), session.New(pool), tokenManager, txManager, authCfg)
	todoService := todosvc.NewService(logger, list.New(pool), item.New(pool), txManager)

	router := rest.NewRouter(rest.RouterConfig{
		Auth:   rest.NewAuthHandler(authService, logger),
		Todo:   rest.NewTodoHandler(todoService, logger),
		Health: rest.NewHealthHandler(pool, "e2e"),
		Base: middleware.Chain(
			middleware.RequestID,
			middleware.Recovery(logger),
			middleware.CORS(corsCfg),
			middleware.Auth(authService),
		),
	})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return &testServer{URL: srv.URL, Client: srv.Client()}
}

// doJSON sends a request with an optional bearer token and JSON body and
// decodes the JSON response.
func (ts *testServer) doJSON(t *testing.T, method, path, token string, body any) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]any
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp.StatusCode, decoded
}

// doJSONList is doJSON for endpoints returning a JSON array.
func (ts *testServer) doJSONList(t *testing.T, method, path, token string) (int, []map[string]any) {
	t.Helper()

	req, err := http.NewRequest(method, ts.URL+path, nil)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded []map[string]any
	if len(raw) > 0 && raw[0] == '[' {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp.StatusCode, decoded
}

// registerUser registers a fresh user and returns its session token.
func (ts *testServer) registerUser(t *testing.T, email string) string {
	t.Helper()

	status, body := ts.doJSON(t, http.MethodPost, "/auth/register", "", map[string]string{
		"email":           email,
		"password":        "password1",
		"confirmPassword": "password1",
	})
	require.Equal(t, http.StatusCreated, status, "register %s: %v", email, body)

	token, ok := body["token"].(string)
	require.True(t, ok, "expected token in register response")
	require.NotEmpty(t, token)
	return token
}
