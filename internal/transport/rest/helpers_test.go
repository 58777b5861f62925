package rest

//go:generate moq -out planner_service_mock_test.go -pkg rest . plannerService
//go:generate moq -out catalog_service_mock_test.go -pkg rest . catalogService
//go:generate moq -out auth_service_mock_test.go -pkg rest . authService
//go:generate moq -out user_service_mock_test.go -pkg rest . userService

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/voyagewise-backend/pkg/ctxutil"
)

type testServer struct {
	planner *plannerServiceMock
	catalog *catalogServiceMock
	auth    *authServiceMock
	user    *userServiceMock
	handler http.Handler
}

func newTestServer() *testServer {
	ts := &testServer{
		planner: &plannerServiceMock{},
		catalog: &catalogServiceMock{},
		auth:    &authServiceMock{},
		user:    &userServiceMock{},
	}
	ts.handler = NewRouter(ts.handlers(), RouterOptions{})
	return ts
}

func (ts *testServer) handlers() Handlers {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return Handlers{
		Health:  NewHealthHandler(&dbPingerMock{}, "test"),
		Auth:    NewAuthHandler(ts.auth, log),
		Planner: NewPlannerHandler(ts.planner, log),
		Catalog: NewCatalogHandler(ts.catalog, log, 10, 1<<20),
		User:    NewUserHandler(ts.user, log),
	}
}

type principal struct {
	username string
	role     string
}

var (
	anonymous = principal{}
	alice     = principal{username: "alice", role: "user"}
	root      = principal{username: "root", role: "admin"}
)

func (ts *testServer) do(t *testing.T, who principal, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var rdr io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		rdr = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		rdr = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, rdr)
	if who.username != "" {
		ctx := ctxutil.WithUsername(req.Context(), who.username)
		req = req.WithContext(ctxutil.WithUserRole(ctx, who.role))
	}
	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v), "body: %s", rec.Body.String())
	return v
}
