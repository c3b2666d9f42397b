package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"phasor/internal/phasor"
	"phasor/pkg/core/logging"
)

// WebSocket upgrader with permissive settings for local use
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Local tool, any origin may connect
	},
}

// WebSocketHandler serves live conversion: the page sends a convert
// message on every input change and receives the result immediately.
type WebSocketHandler struct {
	defaults phasor.Options
	logger   *logging.Logger
}

// NewWebSocketHandler creates a new websocket handler
func NewWebSocketHandler(defaults phasor.Options, logger *logging.Logger) *WebSocketHandler {
	return &WebSocketHandler{
		defaults: defaults,
		logger:   logger,
	}
}

// WSMessage represents an incoming websocket message
type WSMessage struct {
	Type    string          `json:"type"`    // "convert", "ping"
	Payload json.RawMessage `json:"payload"` // Message-specific payload
}

// WSResponse represents an outgoing websocket message
type WSResponse struct {
	Type    string      `json:"type"`    // "result", "error", "pong"
	Payload interface{} `json:"payload"` // Response-specific payload
}

// WSErrorPayload represents an error payload
type WSErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ServeHTTP handles the websocket upgrade and connection
func (h *WebSocketHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("WebSocket upgrade failed", "error", err)
		return
	}
	h.handleConnection(conn)
}

// handleConnection handles a single websocket connection
func (h *WebSocketHandler) handleConnection(conn *websocket.Conn) {
	defer conn.Close()

	connID := uuid.NewString()
	h.logger.Info("WebSocket connection established",
		"conn_id", connID,
		"remote", conn.RemoteAddr().String(),
	)

	conn.SetReadDeadline(time.Now().Add(120 * time.Second))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(120 * time.Second))
		return nil
	})

	for {
		var msg WSMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.logger.Error("WebSocket read error", "conn_id", connID, "error", err)
			} else {
				h.logger.Info("WebSocket connection closed", "conn_id", connID)
			}
			return
		}
		conn.SetReadDeadline(time.Now().Add(120 * time.Second))

		switch msg.Type {
		case "ping":
			h.sendResponse(conn, connID, WSResponse{Type: "pong"})

		case "convert":
			var payload ConvertRequest
			if err := json.Unmarshal(msg.Payload, &payload); err != nil {
				h.sendError(conn, connID, "invalid_payload", "Invalid convert payload")
				continue
			}

			resp, err := convert(payload, h.defaults)
			if err != nil {
				h.sendError(conn, connID, "invalid_request", err.Error())
				continue
			}
			h.sendResponse(conn, connID, WSResponse{Type: "result", Payload: resp})

		default:
			h.sendError(conn, connID, "unknown_type", "Unknown message type: "+msg.Type)
		}
	}
}

func (h *WebSocketHandler) sendResponse(conn *websocket.Conn, connID string, resp WSResponse) {
	if err := conn.WriteJSON(resp); err != nil {
		h.logger.Error("WebSocket write error", "conn_id", connID, "error", err)
	}
}

func (h *WebSocketHandler) sendError(conn *websocket.Conn, connID, code, message string) {
	h.sendResponse(conn, connID, WSResponse{
		Type:    "error",
		Payload: WSErrorPayload{Code: code, Message: message},
	})
}
