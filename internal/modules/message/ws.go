package message

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"serveez/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// wsClientFrame is what a connected client may send.
type wsClientFrame struct {
	Type             string `json:"type"`
	ToUserID         int64  `json:"to_user_id,omitempty"`
	Content          string `json:"content,omitempty"`
	BookingID        *int64 `json:"booking_id,omitempty"`
	ServiceListingID *int64 `json:"service_listing_id,omitempty"`
}

type wsServerFrame struct {
	Type    string      `json:"type"`
	Data    interface{} `json:"data,omitempty"`
	Code    string      `json:"code,omitempty"`
	Message string      `json:"message,omitempty"`
}

type WSHandler struct {
	hub        *Hub
	jwtService *jwt.Service
	service    *Service
}

func NewWSHandler(hub *Hub, jwtService *jwt.Service, service *Service) *WSHandler {
	return &WSHandler{hub: hub, jwtService: jwtService, service: service}
}

// HandleWebSocket upgrades GET /ws/messages?token=JWT. Auth goes through a
// query parameter because browsers cannot set headers on websocket dials.
func (h *WSHandler) HandleWebSocket(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Token is required. Use ?token=YOUR_JWT_TOKEN"})
		return
	}

	claims, err := h.jwtService.ValidateToken(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}

	userID := claims.UserID
	h.hub.Register(userID, conn)
	log.Printf("user %d connected via websocket", userID)

	defer func() {
		h.hub.Unregister(userID)
		log.Printf("user %d disconnected from websocket", userID)
	}()

	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	})

	go h.pingLoop(conn)

	h.readLoop(conn, userID)
}

func (h *WSHandler) pingLoop(conn *websocket.Conn) {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
			return
		}
	}
}

func (h *WSHandler) readLoop(conn *websocket.Conn, userID int64) {
	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseAbnormalClosure) {
				log.Printf("websocket error for user %d: %v", userID, err)
			}
			return
		}

		var frame wsClientFrame
		if err := json.Unmarshal(raw, &frame); err != nil {
			h.sendError(conn, "INVALID_JSON", "Failed to parse message")
			continue
		}

		switch frame.Type {
		case "message":
			h.handleSend(conn, userID, frame)
		case "ping":
			_ = conn.WriteJSON(wsServerFrame{Type: "pong"})
		default:
			h.sendError(conn, "UNKNOWN_TYPE", "Unknown message type: "+frame.Type)
		}
	}
}

func (h *WSHandler) handleSend(conn *websocket.Conn, senderID int64, frame wsClientFrame) {
	m, err := h.service.Send(context.Background(), senderID, SendMessageRequest{
		ToUserID:         frame.ToUserID,
		Content:          frame.Content,
		BookingID:        frame.BookingID,
		ServiceListingID: frame.ServiceListingID,
	})
	if err != nil {
		switch err {
		case ErrBookingNotFound:
			h.sendError(conn, "NOT_FOUND", "Booking not found")
		case ErrForbidden:
			h.sendError(conn, "FORBIDDEN", "You are not a participant of this booking")
		case ErrBadRecipient:
			h.sendError(conn, "INVALID_RECIPIENT", "Recipient is not a participant of this booking")
		case ErrValidation:
			h.sendError(conn, "VALIDATION_ERROR", "Recipient and content are required")
		default:
			h.sendError(conn, "SEND_FAILED", "Failed to send message")
		}
		return
	}

	// Sender gets an echo as delivery confirmation. The recipient is pushed
	// by the service through the hub.
	_ = conn.WriteJSON(wsServerFrame{Type: "message", Data: m})
}

func (h *WSHandler) sendError(conn *websocket.Conn, code, message string) {
	_ = conn.WriteJSON(wsServerFrame{Type: "error", Code: code, Message: message})
}
