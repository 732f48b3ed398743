package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/admybrand/adbot-gateway/internal/gateway"
	"github.com/admybrand/adbot-gateway/internal/metrics"
)

// WebSocket message types
const (
	MessageTypeAnswer    = "answer"
	MessageTypeError     = "error"
	MessageTypeHeartbeat = "heartbeat"
)

// WSMessage is an outbound WebSocket message.
type WSMessage struct {
	Type      string    `json:"type"`
	ID        string    `json:"id,omitempty"`
	Content   string    `json:"content,omitempty"`
	Source    string    `json:"source,omitempty"`
	Note      string    `json:"note,omitempty"`
	Error     string    `json:"error,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// WSRequest is an incoming WebSocket chat message.
type WSRequest struct {
	Message string `json:"message"`
}

// defaultAllowedOrigins are the development origins permitted when no
// allow list is configured.
var defaultAllowedOrigins = []string{
	"http://localhost:3000",
	"http://localhost:5173",
}

// newUpgrader builds a WebSocket upgrader that enforces the given origin
// allow list. Requests without an Origin header (non-browser clients) are
// always permitted; "*" allows any origin.
func newUpgrader(allowedOrigins []string) websocket.Upgrader {
	origins := allowedOrigins
	if len(origins) == 0 {
		origins = defaultAllowedOrigins
	}

	return websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			if origin == "" {
				return true
			}
			for _, allowed := range origins {
				if allowed == "*" {
					return true
				}
				if strings.EqualFold(allowed, origin) {
					return true
				}
			}
			return false
		},
	}
}

// WSConnection represents an active WebSocket chat connection.
type WSConnection struct {
	conn      *websocket.Conn
	server    *Server
	mu        sync.Mutex
	ctx       context.Context
	cancel    context.CancelFunc
	sessionID string
}

// handleChatStream handles WebSocket connections for chat.
func (s *Server) handleChatStream(w http.ResponseWriter, r *http.Request) {
	upgrader := newUpgrader(s.config.Server.AllowedOrigins)
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("WebSocket upgrade error", zap.Error(err))
		return
	}

	ctx, cancel := context.WithCancel(s.ctx)

	wsConn := &WSConnection{
		conn:      conn,
		server:    s,
		ctx:       ctx,
		cancel:    cancel,
		sessionID: fmt.Sprintf("ws-%d", time.Now().UnixNano()),
	}

	metrics.WebSocketConnections.Inc()
	s.log.Info("WebSocket connection established", zap.String("session_id", wsConn.sessionID))

	wsConn.handle()
}

// handle manages the WebSocket connection lifecycle.
func (wsc *WSConnection) handle() {
	defer func() {
		wsc.cancel()
		wsc.conn.Close()
		metrics.WebSocketConnections.Dec()
		wsc.server.log.Info("WebSocket connection closed", zap.String("session_id", wsc.sessionID))
	}()

	go wsc.heartbeat()

	for {
		select {
		case <-wsc.ctx.Done():
			return
		default:
			var req WSRequest
			err := wsc.conn.ReadJSON(&req)
			if err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
					wsc.server.log.Warn("WebSocket read error",
						zap.String("session_id", wsc.sessionID),
						zap.Error(err))
				}
				return
			}

			metrics.WebSocketMessagesTotal.WithLabelValues("inbound").Inc()
			wsc.handleChatRequest(&req)
		}
	}
}

// handleChatRequest routes one chat message through the gateway.
func (wsc *WSConnection) handleChatRequest(req *WSRequest) {
	resp, err := wsc.server.gateway.Send(wsc.ctx, req.Message)
	if err != nil {
		if errors.Is(err, gateway.ErrEmptyMessage) {
			wsc.sendError("Message is required")
			return
		}
		wsc.sendError("Internal error")
		return
	}

	wsc.send(&WSMessage{
		Type:      MessageTypeAnswer,
		ID:        resp.ID,
		Content:   resp.Text,
		Source:    string(resp.Source),
		Note:      resp.Note,
		Timestamp: resp.Timestamp,
	})
}

// send sends a message to the client.
func (wsc *WSConnection) send(msg *WSMessage) error {
	wsc.mu.Lock()
	defer wsc.mu.Unlock()

	metrics.WebSocketMessagesTotal.WithLabelValues("outbound").Inc()
	wsc.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
	return wsc.conn.WriteJSON(msg)
}

// sendError sends an error message to the client.
func (wsc *WSConnection) sendError(errMsg string) {
	wsc.send(&WSMessage{
		Type:      MessageTypeError,
		Error:     errMsg,
		Timestamp: time.Now(),
	})
}

// heartbeat sends periodic heartbeat messages.
func (wsc *WSConnection) heartbeat() {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-wsc.ctx.Done():
			return
		case <-ticker.C:
			wsc.send(&WSMessage{
				Type:      MessageTypeHeartbeat,
				Timestamp: time.Now(),
			})
		}
	}
}
