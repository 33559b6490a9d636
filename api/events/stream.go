// Package events streams engine events to websocket clients.
package events

import (
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/eagowl/fleet-optimizer/core/events"
	"github.com/eagowl/fleet-optimizer/core/logger"
	"github.com/eagowl/fleet-optimizer/internal/eventbus"
)

// subscriberBuffer sizes the per-client event buffer; a client that cannot
// drain fast enough misses events rather than stalling the engine.
const subscriberBuffer = 64

var upgrader = websocket.Upgrader{
	CheckOrigin: func(*http.Request) bool { return true },
}

type frame struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// NewStreamHandler returns the handler for GET /events/ws. Each connected
// client receives run and fuel-check events as JSON frames until it closes
// the connection.
func NewStreamHandler(bus eventbus.EventBus, log logger.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Warnf("websocket upgrade: %v", err)
			return
		}
		defer func() { _ = conn.Close() }()

		sub := bus.SubscribeBuffered(subscriberBuffer)
		defer bus.Unsubscribe(sub)

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
			case <-done:
				return
			case ev, ok := <-sub:
				if !ok {
					return
				}
				f, send := toFrame(ev)
				if !send {
					continue
				}
				if err := conn.WriteJSON(f); err != nil {
					return
				}
			}
		}
	})
}

func toFrame(ev eventbus.Event) (frame, bool) {
	switch e := ev.(type) {
	case events.RunCompleted:
		return frame{Type: "run_completed", Data: e}, true
	case events.FuelChecked:
		return frame{Type: "fuel_checked", Data: e}, true
	default:
		return frame{}, false
	}
}
