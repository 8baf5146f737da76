package server

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wutup-dev/wutup/internal/config"
)

func dialLive(t *testing.T, url string, header http.Header) *websocket.Conn {
	t.Helper()
	wsURL := "ws" + strings.TrimPrefix(url, "http") + "/live"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, header)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestLiveRender(t *testing.T) {
	ts := newTestServer(t, nil)
	conn := dialLive(t, ts.URL, nil)

	require.NoError(t, conn.WriteJSON(RenderRequest{
		Kind:      "events",
		Container: "current-event-stream",
		Names:     []string{"Picnic"},
	}))
	var reply LiveReply
	require.NoError(t, conn.ReadJSON(&reply))
	assert.Empty(t, reply.Error)
	assert.Contains(t, reply.HTML, "Picnic")
	assert.Contains(t, reply.HTML, "current-event-stream-declineButton")

	rows := 3
	require.NoError(t, conn.WriteJSON(RenderRequest{Kind: "guests", Container: "g", Rows: &rows}))
	reply = LiveReply{}
	require.NoError(t, conn.ReadJSON(&reply))
	assert.Equal(t, "E003", reply.Code)
	assert.Empty(t, reply.HTML)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("not json")))
	reply = LiveReply{}
	require.NoError(t, conn.ReadJSON(&reply))
	assert.Equal(t, "E060", reply.Code)

	require.NoError(t, conn.WriteJSON(RenderRequest{Kind: "guests", Container: "g", Names: []string{"Ana"}}))
	reply = LiveReply{}
	require.NoError(t, conn.ReadJSON(&reply))
	assert.Contains(t, reply.HTML, "Ana")
}

func TestLiveEmptyFrame(t *testing.T) {
	ts := newTestServer(t, nil)
	conn := dialLive(t, ts.URL, nil)

	for _, frame := range []string{"", `{"kind":"gue`} {
		require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(frame)))
		var reply LiveReply
		require.NoError(t, conn.ReadJSON(&reply), "frame %q", frame)
		assert.Equal(t, "E060", reply.Code)
	}

	require.NoError(t, conn.WriteJSON(RenderRequest{Kind: "guests", Container: "g", Names: []string{"Bo"}}))
	var reply LiveReply
	require.NoError(t, conn.ReadJSON(&reply))
	assert.Contains(t, reply.HTML, "Bo")
}

func TestIsDecodeError(t *testing.T) {
	assert.True(t, isDecodeError(io.ErrUnexpectedEOF))
	assert.True(t, isDecodeError(&json.SyntaxError{}))
	assert.False(t, isDecodeError(&websocket.CloseError{Code: websocket.CloseAbnormalClosure}))
	assert.False(t, isDecodeError(io.EOF))
}

func TestLiveRejectsCrossOrigin(t *testing.T) {
	ts := newTestServer(t, nil)
	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/live"

	header := http.Header{"Origin": []string{"http://evil.example"}}
	_, resp, err := websocket.DefaultDialer.Dial(wsURL, header)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestLiveAllowedOrigin(t *testing.T) {
	ts := newTestServer(t, func(c *config.Config) {
		c.Server.AllowedOrigins = []string{"http://app.example"}
	})
	conn := dialLive(t, ts.URL, http.Header{"Origin": []string{"http://app.example"}})
	require.NoError(t, conn.WriteJSON(RenderRequest{Kind: "guests", Container: "g"}))

	var reply LiveReply
	require.NoError(t, conn.ReadJSON(&reply))
	assert.Equal(t, "<tbody></tbody>", reply.HTML)
}

func TestOriginCheck(t *testing.T) {
	req, _ := http.NewRequest(http.MethodGet, "http://host.example/live", nil)
	assert.True(t, SameOriginCheck(req))

	req.Header.Set("Origin", "http://host.example")
	assert.True(t, SameOriginCheck(req))

	req.Header.Set("Origin", "http://other.example")
	assert.False(t, SameOriginCheck(req))
	assert.True(t, OriginCheck([]string{"*"})(req))
	assert.True(t, OriginCheck([]string{"http://other.example"})(req))
	assert.False(t, OriginCheck([]string{"http://third.example"})(req))
}
