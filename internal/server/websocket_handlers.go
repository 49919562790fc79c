package server

import (
	"context"
	"log"

	"evtele/internal/observability"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// WebsocketHandler handles connections to the live event feed. The feed is
// public and read-only: subscribers pick a scope with a join frame and receive
// comment and counter events for it; posting still goes through the REST API.
func (s *Server) WebsocketHandler() fiber.Handler {
	wsLogger := observability.NewWSLogger(s.hub.Name())

	return websocket.New(func(conn *websocket.Conn) {
		ctx := context.Background()

		// An Authorization header is optional here; it only attributes the
		// connection in logs.
		userID, _ := conn.Locals("userID").(uint)

		client, err := s.hub.Register(userID, conn)
		if err != nil {
			log.Printf("WebSocket: failed to register connection: %v", err)
			_ = conn.WriteMessage(websocket.TextMessage, []byte(`{"error":"`+err.Error()+`"}`))
			_ = conn.Close()
			return
		}

		wsLogger.LogConnect(ctx, userID, "")

		// Optional ?scope= query joins immediately, saving a round trip.
		if scope := conn.Query("scope"); scope != "" {
			if err := s.hub.JoinScope(client, scope); err != nil {
				client.TrySend([]byte(`{"type":"error","payload":{"reason":"join_rejected"}}`))
			}
		}

		go client.WritePump()

		// Read pump runs in the main handler goroutine (blocking).
		client.ReadPump()

		wsLogger.LogDisconnect(ctx, userID, s.hub.Scope(client), "connection closed")
	})
}

// WebsocketUpgradeRequired rejects plain HTTP requests on websocket routes.
func WebsocketUpgradeRequired(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}
