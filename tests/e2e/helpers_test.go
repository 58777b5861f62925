//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/voyagewise-backend/internal/adapter/postgres/testhelper"
	userrepo "github.com/heartmarshall/voyagewise-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/voyagewise-backend/internal/app"
	"github.com/heartmarshall/voyagewise-backend/internal/config"
	"github.com/heartmarshall/voyagewise-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Database: config.DatabaseConfig{DSN: testhelper.DSN(t)},
		Auth: config.AuthConfig{
			JWTSecret:        "test-secret-at-least-32-chars-long!!",
			JWTIssuer:        "test-issuer",
			AccessTokenTTL:   15 * time.Minute,
			PasswordHashCost: 4,
		},
		Catalog: config.CatalogConfig{
			DefaultPageSize: 10,
			MaxUploadBytes:  1 << 20,
			MaxUploadRows:   1000,
		},
		CORS: config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,PUT,DELETE,OPTIONS",
			AllowedHeaders: "Authorization,Content-Type",
			MaxAge:         600,
		},
	}
}

// setupTestServer bootstraps the full application stack backed by
// a real PostgreSQL container (shared via testhelper).
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))

	srv := httptest.NewServer(app.NewHandler(testConfig(t), logger, pool, nil))
	t.Cleanup(srv.Close)

	return &testServer{URL: srv.URL, Client: srv.Client(), Pool: pool}
}

// ---------------------------------------------------------------------------
// Request helpers
// ---------------------------------------------------------------------------

type response struct {
	Status int
	Body   []byte
}

func (r response) JSON(t *testing.T, dst any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(r.Body, dst), "body: %s", r.Body)
}

func (r response) Map(t *testing.T) map[string]any {
	t.Helper()
	var m map[string]any
	r.JSON(t, &m)
	return m
}

func (ts *testServer) do(t *testing.T, method, path, token string, body any) response {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		rdr = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(context.Background(), method, ts.URL+path, rdr)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return ts.send(t, req)
}

func (ts *testServer) send(t *testing.T, req *http.Request) response {
	t.Helper()

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return response{Status: resp.StatusCode, Body: raw}
}

// registerUser creates a fresh user through the API and returns its token.
func registerUser(t *testing.T, ts *testServer) (username, token string) {
	t.Helper()

	username = fmt.Sprintf("user_%s", uuid.NewString()[:8])
	resp := ts.do(t, http.MethodPost, "/api/register", "", map[string]string{
		"username": username,
		"password": "password-123",
		"email":    username + "@example.com",
		"fullName": "E2E User",
	})
	require.Equal(t, http.StatusCreated, resp.Status, string(resp.Body))

	token, _ = resp.Map(t)["accessToken"].(string)
	require.NotEmpty(t, token)
	return username, token
}

// promoteToAdmin grants the admin role the way cmd/promote does and logs
// in again for a token carrying the admin claim.
func promoteToAdmin(t *testing.T, ts *testServer, username string) string {
	t.Helper()

	_, err := userrepo.New(ts.Pool).UpdateRole(context.Background(), username, domain.UserRoleAdmin)
	require.NoError(t, err)

	resp := ts.do(t, http.MethodPost, "/api/login", "", map[string]string{
		"username": username,
		"password": "password-123",
	})
	require.Equal(t, http.StatusOK, resp.Status, string(resp.Body))

	token, _ := resp.Map(t)["accessToken"].(string)
	return token
}
