//go:build integration

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/srs-review-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/srs-review-backend/internal/app"
	"github.com/heartmarshall/srs-review-backend/internal/config"
	"github.com/heartmarshall/srs-review-backend/pkg/ctxutil"
)

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	stack  *app.Stack
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// loadConfig builds the config from defaults plus the few required values,
// pointed at the shared test container.
func loadConfig(t *testing.T) *config.Config {
	t.Helper()
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("DATABASE_DSN", testhelper.DatabaseConfig(t).DSN)
	t.Setenv("AUTH_JWT_SECRET", "test-secret-at-least-32-chars-long!!")
	t.Setenv("RATE_LIMIT_ENABLED", "false")
	t.Setenv("SRS_TIMEZONE", "UTC")

	cfg, err := config.Load()
	require.NoError(t, err)
	return cfg
}

// setupTestServer builds the full application stack on a shared
// PostgreSQL container.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))

	st, err := app.Build(context.Background(), loadConfig(t), logger, pool)
	require.NoError(t, err)
	t.Cleanup(st.Close)

	srv := httptest.NewServer(st.Handler)
	t.Cleanup(srv.Close)

	return &testServer{URL: srv.URL, Client: srv.Client(), Pool: pool, stack: st}
}

func (ts *testServer) token(t *testing.T, userID uuid.UUID, role string) string {
	t.Helper()
	tok, err := ts.stack.Tokens.Issue(userID, role)
	require.NoError(t, err)
	return tok
}

// do sends a JSON request and decodes the response envelope into a map.
func (ts *testServer) do(t *testing.T, method, path, token string, body any) (int, map[string]any) {
	t.Helper()

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, ts.URL+path, rd)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var out map[string]any
	if len(bytes.TrimSpace(raw)) > 0 {
		require.NoError(t, json.Unmarshal(raw, &out), "body: %s", raw)
	}
	return resp.StatusCode, out
}

func dataMap(t *testing.T, body map[string]any) map[string]any {
	t.Helper()
	data, ok := body["data"].(map[string]any)
	require.True(t, ok, "expected data object, got %v", body)
	return data
}

func dataList(t *testing.T, body map[string]any) []any {
	t.Helper()
	data, ok := body["data"].([]any)
	require.True(t, ok, "expected data array, got %v", body)
	return data
}

func newUser(t *testing.T, ts *testServer) (uuid.UUID, string) {
	t.Helper()
	id := uuid.New()
	return id, ts.token(t, id, "")
}

func newAdmin(t *testing.T, ts *testServer) string {
	t.Helper()
	return ts.token(t, uuid.New(), ctxutil.RoleAdmin)
}
