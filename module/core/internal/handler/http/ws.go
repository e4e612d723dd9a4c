package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/mutti-dev/famloc/module/core/domain"
	"github.com/mutti-dev/famloc/pkg/ws"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// origin checks are the gateway's job
	CheckOrigin: func(*http.Request) bool { return true },
}

type memberResolver interface {
	GetMember(ctx context.Context, memberID string) (*domain.Member, error)
}

// WSHandler attaches a connection to the member's user room and, when
// the member has a circle, the circle room.
type WSHandler struct {
	hub     *ws.Hub
	members memberResolver
	logger  *zap.Logger
}

func NewWSHandler(hub *ws.Hub, members memberResolver, logger *zap.Logger) *WSHandler {
	return &WSHandler{hub: hub, members: members, logger: logger}
}

func (h *WSHandler) Register(r *gin.RouterGroup) {
	r.GET("/ws", h.Attach)
}

func (h *WSHandler) Attach(c *gin.Context) {
	memberID := c.Query("member_id")
	if memberID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "member_id is required"})
		return
	}

	member, err := h.members.GetMember(c.Request.Context(), memberID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "member not found"})
		return
	}

	rooms := []string{member.ID}
	if member.CircleID != "" {
		rooms = append(rooms, member.CircleID)
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	client := ws.NewClient(h.hub, conn, rooms)
	client.Register()
	go client.WritePump()
	go client.ReadPump()
}
