package server

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/wutup-dev/wutup/internal/errors"
)

const (
	liveWriteTimeout = 10 * time.Second
	liveIdleTimeout  = 5 * time.Minute
)

// LiveReply answers one /live request: HTML on success, Error and Code
// otherwise.
type LiveReply struct {
	HTML  string `json:"html,omitempty"`
	Error string `json:"error,omitempty"`
	Code  string `json:"code,omitempty"`
}

// handleLive upgrades to a WebSocket and answers each RenderRequest with a
// LiveReply, in order, until the client closes the connection.
func (s *Server) handleLive(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	conn.SetReadLimit(maxRequestBody)
	ctx := r.Context()

	for {
		conn.SetReadDeadline(time.Now().Add(liveIdleTimeout))

		var req RenderRequest
		if err := conn.ReadJSON(&req); err != nil {
			if !isDecodeError(err) {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
					s.logger.Debug("live connection closed", "error", err)
				}
				return
			}
			resp := errorResponse(errors.FromError(err, "E060"))
			s.metrics.RecordLiveMessage("error")
			if !s.writeLive(conn, LiveReply{Error: resp.Error, Code: resp.Code}) {
				return
			}
			continue
		}

		var reply LiveReply
		html, err := s.fragment(ctx, req)
		if err != nil {
			resp := errorResponse(err)
			reply = LiveReply{Error: resp.Error, Code: resp.Code}
			s.metrics.RecordLiveMessage("error")
		} else {
			reply = LiveReply{HTML: html}
			s.metrics.RecordLiveMessage("ok")
		}
		if !s.writeLive(conn, reply) {
			return
		}
	}
}

// isDecodeError reports whether a ReadJSON failure came from the message
// body rather than the connection. An empty or truncated body surfaces as
// io.ErrUnexpectedEOF; a dropped connection is a *websocket.CloseError.
func isDecodeError(err error) bool {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	return stderrors.As(err, &syntaxErr) ||
		stderrors.As(err, &typeErr) ||
		stderrors.Is(err, io.ErrUnexpectedEOF)
}

func (s *Server) writeLive(conn *websocket.Conn, reply LiveReply) bool {
	conn.SetWriteDeadline(time.Now().Add(liveWriteTimeout))
	if err := conn.WriteJSON(reply); err != nil {
		s.logger.Debug("live write failed", "error", err)
		return false
	}
	return true
}
