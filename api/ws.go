package api

import (
	"encoding/json"
	"net/http"
	"net/url"
	"slices"

	"github.com/gorilla/websocket"

	"kanahighlight/model"
)

// wsReply is sent for every message read from the socket.
type wsReply struct {
	model.HighlightResponse
	Error string `json:"error,omitempty"`
}

func (s *Server) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" || len(s.origins) == 0 || slices.Contains(s.origins, "*") {
		return true
	}
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	return slices.Contains(s.origins, u.Scheme+"://"+u.Host)
}

// handleWebSocket reads highlight requests until the client goes away and
// answers each with the id it carried.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     s.checkOrigin,
	}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written the error response.
		s.log.Warning("websocket upgrade failed", "err", err)
		return
	}
	defer conn.Close()
	s.log.Debug("websocket connected", "remote", r.RemoteAddr)

	ctx := r.Context()
	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			s.log.Debug("websocket closed", "err", err)
			return
		}
		var req model.HighlightRequest
		if err := json.Unmarshal(msg, &req); err != nil {
			if err := conn.WriteJSON(wsReply{Error: "message must be a JSON highlight request"}); err != nil {
				return
			}
			continue
		}
		resp, err := s.Highlight(ctx, req)
		reply := wsReply{HighlightResponse: resp}
		if err != nil {
			reply.Error = err.Error()
		}
		if err := conn.WriteJSON(reply); err != nil {
			s.log.Warning("websocket write failed", "err", err)
			return
		}
	}
}
