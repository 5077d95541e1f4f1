package server_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oggyb/nearby/internal/config"
	"github.com/oggyb/nearby/internal/realtime"
	"github.com/oggyb/nearby/internal/server"
	"github.com/oggyb/nearby/internal/testutil"
)

type healthBody struct {
	Status      string            `json:"status"`
	Timestamp   string            `json:"timestamp"`
	Uptime      string            `json:"uptime"`
	Connections int               `json:"connections"`
	Checks      map[string]string `json:"checks"`
}

func newRouter(t *testing.T) (*testutil.Env, http.Handler) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	env := testutil.NewEnv(t)
	auth := realtime.NewAuthenticator(config.AuthConfig{JWTSecret: "secret"})
	return env, server.NewRouter(env.App, realtime.NewRegistry(), auth)
}

func getHealth(t *testing.T, h http.Handler) (*httptest.ResponseRecorder, healthBody) {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "health-1")
	h.ServeHTTP(w, req)

	var body healthBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestHealth_OK(t *testing.T) {
	_, h := newRouter(t)

	w, body := getHealth(t, h)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "health-1", w.Header().Get("X-Request-ID"))
	assert.Equal(t, "ok", body.Status)
	assert.NotEmpty(t, body.Timestamp)
	assert.NotEmpty(t, body.Uptime)
	assert.Equal(t, map[string]string{"database": "ok", "redis": "ok"}, body.Checks)
	assert.Zero(t, body.Connections)
}

func TestHealth_DegradedWhenRedisDown(t *testing.T) {
	env, h := newRouter(t)
	env.Redis.Close()

	w, body := getHealth(t, h)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "degraded", body.Status)
	assert.Equal(t, "ok", body.Checks["database"])
	assert.NotEqual(t, "ok", body.Checks["redis"])
}

func TestWebSocket_RequiresToken(t *testing.T) {
	_, h := newRouter(t)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ws", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
