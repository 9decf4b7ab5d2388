package game

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandlerRouter(t *testing.T, origins []string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	h := NewHandler(newTestHub(nil), origins, zerolog.Nop())
	r := gin.New()
	h.Register(r)
	return r
}

func TestSessionHandlerRejectsUnknownOrigin(t *testing.T) {
	t.Parallel()
	r := newTestHandlerRouter(t, []string{"http://localhost:3000"})
	srv := httptest.NewServer(r)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	header := http.Header{"Origin": []string{"http://evil.example"}}

	conn, resp, err := websocket.DefaultDialer.Dial(url, header)
	require.Error(t, err)
	if conn != nil {
		conn.Close()
	}
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestSessionHandlerUpgradesAllowedOrigin(t *testing.T) {
	t.Parallel()
	r := newTestHandlerRouter(t, []string{"http://localhost:3000"})
	srv := httptest.NewServer(r)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	header := http.Header{"Origin": []string{"http://localhost:3000"}}

	conn, _, err := websocket.DefaultDialer.Dial(url, header)
	require.NoError(t, err)
	conn.Close()
}

func TestCharactersHandler(t *testing.T) {
	t.Parallel()
	r := newTestHandlerRouter(t, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/characters", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Characters []Character `json:"characters"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Characters, len(characters))
}

func TestQuotesHandler(t *testing.T) {
	t.Parallel()
	r := newTestHandlerRouter(t, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/quotes", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Quotes []Quote `json:"quotes"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Quotes, len(quotes))
}
