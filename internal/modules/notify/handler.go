package notify

import (
	"log"
	"net/http"
	"time"

	"nextassist/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true }, // Allow all origins (configure in prod)
}

// Handler upgrades authenticated clients to a websocket and keeps the
// connection registered in the hub until it drops.
type Handler struct {
	hub        *Hub
	jwtService *jwt.Service
}

func NewHandler(hub *Hub, jwtService *jwt.Service) *Handler {
	return &Handler{hub: hub, jwtService: jwtService}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/ws", h.HandleWebSocket)
}

// HandleWebSocket authenticates via ?token= query parameter because
// browsers cannot set headers on websocket upgrades.
func (h *Handler) HandleWebSocket(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Token is required. Use ?token=YOUR_JWT_TOKEN",
		})
		return
	}

	claims, err := h.jwtService.ValidateToken(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Invalid or expired token",
		})
		return
	}

	userID := claims.UserID

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}

	wc := NewConn(conn)
	h.hub.Register(userID, wc)
	log.Printf("User %s connected via WebSocket", userID)

	defer func() {
		h.hub.Unregister(userID)
		conn.Close()
		log.Printf("User %s disconnected from WebSocket", userID)
	}()

	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	go h.pingLoop(wc)

	h.readLoop(conn, wc, userID)
}

func (h *Handler) pingLoop(wc *Conn) {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		if err := wc.Ping(); err != nil {
			return
		}
	}
}

// readLoop drains client frames. The notification channel is
// server-push only; the single client message understood is "ping".
// Reads stay on the raw connection (single reader); replies go through
// the write lock.
func (h *Handler) readLoop(conn *websocket.Conn, wc *Conn, userID string) {
	for {
		_, rawMsg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket error for user %s: %v", userID, err)
			}
			return
		}

		if string(rawMsg) == `{"type":"ping"}` {
			wc.WriteJSON(NewPongEvent())
		}
	}
}
