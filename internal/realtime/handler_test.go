package realtime_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oggyb/nearby/internal/config"
	"github.com/oggyb/nearby/internal/logger"
	"github.com/oggyb/nearby/internal/realtime"
)

func newServer(t *testing.T) (*httptest.Server, *realtime.Registry, *realtime.Authenticator) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	reg := realtime.NewRegistry()
	auth := realtime.NewAuthenticator(config.AuthConfig{JWTSecret: "test-secret", Issuer: "nearby-auth"})

	r := gin.New()
	r.GET("/ws", realtime.Handler(reg, auth, logger.Discard()))
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, reg, auth
}

func wsURL(srv *httptest.Server, token string) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws?token=" + token
}

func TestHandler_DeliversToAuthenticatedUser(t *testing.T) {
	srv, reg, auth := newServer(t)

	token, err := auth.Issue("user-1", time.Minute)
	require.NoError(t, err)

	conn, _, err := websocket.DefaultDialer.Dial(wsURL(srv, token), nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return reg.IsConnected("user-1") }, time.Second, 10*time.Millisecond)

	n, err := reg.SendToUser("user-1", map[string]string{"type": "wave"})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)
	var got map[string]string
	require.NoError(t, json.Unmarshal(msg, &got))
	assert.Equal(t, "wave", got["type"])

	conn.Close()
	require.Eventually(t, func() bool { return !reg.IsConnected("user-1") }, time.Second, 10*time.Millisecond)
}

func TestHandler_RejectsBadTokens(t *testing.T) {
	srv, reg, _ := newServer(t)

	foreign := realtime.NewAuthenticator(config.AuthConfig{JWTSecret: "other-secret", Issuer: "nearby-auth"})
	forged, err := foreign.Issue("user-1", time.Minute)
	require.NoError(t, err)

	wrongIssuer := realtime.NewAuthenticator(config.AuthConfig{JWTSecret: "test-secret", Issuer: "someone-else"})
	misissued, err := wrongIssuer.Issue("user-1", time.Minute)
	require.NoError(t, err)

	for name, token := range map[string]string{"missing": "", "garbage": "abc", "forged": forged, "issuer": misissued} {
		_, resp, err := websocket.DefaultDialer.Dial(wsURL(srv, token), nil)
		require.Error(t, err, name)
		require.NotNil(t, resp, name)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, name)
	}
	assert.Zero(t, reg.Count())
}

func TestAuthenticator_ExpiredAndSubjectOnly(t *testing.T) {
	auth := realtime.NewAuthenticator(config.AuthConfig{JWTSecret: "s"})

	expired, err := auth.Issue("u", -time.Minute)
	require.NoError(t, err)
	_, err = auth.Parse(expired)
	assert.ErrorIs(t, err, realtime.ErrInvalidToken)

	token, err := auth.Issue("u", time.Minute)
	require.NoError(t, err)
	claims, err := auth.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "u", claims.UserID)

	disabled := realtime.NewAuthenticator(config.AuthConfig{})
	_, err = disabled.Parse(token)
	assert.ErrorIs(t, err, realtime.ErrInvalidToken)
}
