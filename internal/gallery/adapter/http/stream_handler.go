package http

import (
	"time"

	"wedding-clickz/internal/gallery/domain/model"
	"wedding-clickz/internal/shared/eventbus"
	"wedding-clickz/internal/shared/logger"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	streamWriteWait = 10 * time.Second
	streamPingEvery = 30 * time.Second
	streamBuffer    = 32
)

// StreamHandler pushes upload notifications to connected guests over
// WebSocket so the live gallery refreshes without polling.
type StreamHandler struct {
	bus *eventbus.EventBus
	log logger.Logger
}

// NewStreamHandler creates a new StreamHandler.
func NewStreamHandler(bus *eventbus.EventBus, log logger.Logger) *StreamHandler {
	return &StreamHandler{
		bus: bus,
		log: log,
	}
}

// RegisterRoutes registers the WebSocket endpoint.
func (h *StreamHandler) RegisterRoutes(router fiber.Router) {
	// Middleware to ensure it's a WebSocket upgrade request
	router.Use("/photos/stream", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			c.Locals("allowed", true)
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})

	router.Get("/photos/stream", websocket.New(h.handleConnection))
}

// handleConnection forwards bus events to the client until it disconnects.
func (h *StreamHandler) handleConnection(conn *websocket.Conn) {
	sub := h.bus.Subscribe(streamBuffer)
	defer h.bus.Unsubscribe(sub.ID)

	h.log.Info("Gallery stream connected",
		zap.String("subscriptionID", sub.ID))

	// Reader goroutine: the client never sends payloads, but reading is
	// required to observe close frames.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(streamPingEvery)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			h.log.Info("Gallery stream disconnected",
				zap.String("subscriptionID", sub.ID))
			return
		case event, ok := <-sub.C:
			if !ok {
				return
			}
			// The guest gallery shows wedding photos only
			if payload, ok := event.Payload.(model.PhotoUploadedEvent); ok && payload.Kind != model.KindWedding {
				continue
			}
			conn.SetWriteDeadline(time.Now().Add(streamWriteWait))
			if err := conn.WriteJSON(event); err != nil {
				h.log.Error("Gallery stream write failed",
					zap.String("subscriptionID", sub.ID),
					zap.Error(err))
				return
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(streamWriteWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
