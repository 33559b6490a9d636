package events

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/eagowl/fleet-optimizer/core/events"
	"github.com/eagowl/fleet-optimizer/core/model"
	"github.com/eagowl/fleet-optimizer/infra/logger"
	"github.com/eagowl/fleet-optimizer/internal/eventbus"
)

func TestStreamDeliversRunEvents(t *testing.T) {
	bus := eventbus.New()
	defer bus.Close()
	srv := httptest.NewServer(NewStreamHandler(bus, logger.NopLogger{}))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/events/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer func() { _ = conn.Close() }()

	// Give the handler time to subscribe before publishing.
	time.Sleep(50 * time.Millisecond)
	bus.Publish(events.RunCompleted{Run: model.OptimizationRun{ID: "r1"}, Assigned: 2})
	bus.Publish(events.RecommendationsIssued{Count: 1}) // not streamed
	bus.Publish(events.FuelChecked{Report: model.FuelReport{VehicleID: "v1"}})

	if err := conn.SetReadDeadline(time.Now().Add(2 * time.Second)); err != nil {
		t.Fatalf("deadline: %v", err)
	}
	_, msg, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var f struct {
		Type string          `json:"type"`
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(msg, &f); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if f.Type != "run_completed" {
		t.Fatalf("frame type = %q", f.Type)
	}

	_, msg, err = conn.ReadMessage()
	if err != nil {
		t.Fatalf("read second frame: %v", err)
	}
	if err := json.Unmarshal(msg, &f); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if f.Type != "fuel_checked" {
		t.Fatalf("frame type = %q, recommendation events must be skipped", f.Type)
	}
}

func TestStreamEndsWhenBusCloses(t *testing.T) {
	bus := eventbus.New()
	srv := httptest.NewServer(NewStreamHandler(bus, logger.NopLogger{}))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/events/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer func() { _ = conn.Close() }()

	time.Sleep(50 * time.Millisecond)
	bus.Close()

	if err := conn.SetReadDeadline(time.Now().Add(2 * time.Second)); err != nil {
		t.Fatalf("deadline: %v", err)
	}
	if _, _, err := conn.ReadMessage(); err == nil {
		t.Fatal("expected connection to end after bus close")
	}
}
