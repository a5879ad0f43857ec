package realtime

import (
	"net/http"
	"time"

	"artgallery/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

type Handler struct {
	hub      *Hub
	upgrader websocket.Upgrader
	log      *zap.Logger
}

// NewHandler builds the websocket endpoint. A nil checkOrigin falls back to
// gorilla's same-origin check.
func NewHandler(hub *Hub, checkOrigin func(r *http.Request) bool, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     checkOrigin,
		},
		log: log,
	}
}

// RegisterRoutes expects a group that already runs the session middleware.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/ws", h.Connect)
}

// Connect upgrades the request and keeps the socket until the client leaves.
// Messages from the client are ignored, the feed is one way.
func (h *Handler) Connect(c *gin.Context) {
	sessionID := c.GetString("session_id")
	if sessionID == "" {
		response.Error(c, http.StatusBadRequest, response.CodeInvalidRequest, "Session is required")
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// upgrader already wrote the error response
		h.log.Debug("websocket upgrade failed", zap.Error(err))
		return
	}

	cl := h.hub.register(sessionID, conn)
	defer h.hub.unregister(sessionID, cl)

	conn.SetReadLimit(512)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(pingPeriod)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				cl.writeMu.Lock()
				err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(h.hub.writeTimeout))
				cl.writeMu.Unlock()
				if err != nil {
					return
				}
			}
		}
	}()
	defer close(done)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
