package api

import (
	"github.com/akshaan07/pilltime/internal/models"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

func (handler *Handler) ChangeFeedUpgrade(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}
	return c.Next()
}

// ChangeFeedSocket streams the user's change events until the client
// disconnects. Events carry table and action only; clients re-fetch.
func (handler *Handler) ChangeFeedSocket(conn *websocket.Conn) {
	defer conn.Close()

	user, ok := conn.Locals(contextUserKey).(*models.User)
	if !ok || user == nil {
		return
	}

	subscriberID, events, err := handler.feed.Subscribe(user.ID)
	if err != nil {
		return
	}
	defer handler.feed.Unsubscribe(subscriberID)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case event, open := <-events:
			if !open {
				return
			}
			if err := conn.WriteJSON(event); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}
