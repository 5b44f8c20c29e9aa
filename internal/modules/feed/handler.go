package feed

import (
	"net/http"

	"campusfood/internal/pkg/response"

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

type Handler struct {
	hub *Hub
}

func NewHandler(hub *Hub) *Handler {
	return &Handler{hub: hub}
}

func (h *Handler) RegisterRoutes(public *gin.RouterGroup) {
	public.GET("/feed/reviews", h.Stream)
}

// Stream upgrades the connection and keeps it subscribed until the client
// goes away. The read loop only consumes control frames.
func (h *Handler) Stream(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "WebSocket upgrade failed")
		return
	}

	h.hub.Subscribe(conn)
	defer h.hub.Unsubscribe(conn)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
