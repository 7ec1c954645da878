package handlers

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

type wsMsg struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// Events streams engine notifications over a websocket. The first message is
// a full snapshot; every later message is one state transition.
func (h *Handler) Events(c echo.Context) error {
	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// the upgrader has already written the error response
		h.logger.Warn("ws: upgrade failed", zap.Error(err))
		return nil
	}
	defer conn.Close()

	events, unsubscribe := h.engine.Subscribe()
	defer unsubscribe()

	if err := conn.WriteJSON(wsMsg{Type: "snapshot", Data: h.engine.Snapshot()}); err != nil {
		h.logger.Debug("ws: write error", zap.Error(err))
		return nil
	}

	// Clients only listen; reading is how a disconnect is noticed.
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if err := conn.WriteJSON(wsMsg{Type: "event", Data: ev}); err != nil {
				h.logger.Debug("ws: write error", zap.Error(err))
				return nil
			}
		case <-closed:
			return nil
		case <-h.runCtx.Done():
			return nil
		}
	}
}
