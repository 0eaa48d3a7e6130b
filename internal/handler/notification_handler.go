package handler

import (
	"ai-realestate-be/internal/pkg/logger"
	"ai-realestate-be/internal/pkg/serverutils"
	internalWS "ai-realestate-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// ViewCounter reports how many conversation views are mounted.
type ViewCounter interface {
	Count() int
}

type NotificationHandler struct {
	hub    *internalWS.Hub
	views  ViewCounter
	logger logger.ILogger
}

func NewNotificationHandler(hub *internalWS.Hub, views ViewCounter, log logger.ILogger) *NotificationHandler {
	return &NotificationHandler{
		hub:    hub,
		views:  views,
		logger: log,
	}
}

// ServeWs upgrades to a WebSocket that receives a {"type":"storage"} frame
// after every committed store change.
func (h *NotificationHandler) ServeWs(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}
	return websocket.New(func(conn *websocket.Conn) {
		h.logger.Info("NotificationHandler", "Starting WebSocket session", map[string]interface{}{"remote": conn.RemoteAddr().String()})
		internalWS.ServeWs(h.hub, conn)
		h.logger.Info("NotificationHandler", "WebSocket session ended", map[string]interface{}{"remote": conn.RemoteAddr().String()})
	})(c)
}

func (h *NotificationHandler) Stats(c *fiber.Ctx) error {
	return c.JSON(serverutils.SuccessResponse("Success get websocket stats", fiber.Map{
		"clients": h.hub.ClientCount(),
		"views":   h.views.Count(),
	}))
}

func (h *NotificationHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/ws", h.ServeWs)
	router.Get("/ws/stats", h.Stats)
}
