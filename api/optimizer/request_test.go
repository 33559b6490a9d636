package optimizer

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestOptimizeRequestCoercion(t *testing.T) {
	body := `{
		"deliveries": [
			{"id": "d1", "latitude": "48.85", "longitude": 2.35, "priority": "2", "estimated_duration": 20}
		],
		"vehicles": [
			{"id": "v1", "fuel_level": "45", "current_lat": 48.8, "current_lon": 2.3}
		]
	}`
	var req OptimizeRequest
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	deliveries, vehicles, err := req.Models()
	if err != nil {
		t.Fatalf("models: %v", err)
	}
	d := deliveries[0]
	if d.Latitude != 48.85 || d.Longitude != 2.35 {
		t.Fatalf("coordinates not coerced: %+v", d)
	}
	if d.Priority != 2 || d.EstimatedDuration != 20 {
		t.Fatalf("priority/duration: %+v", d)
	}
	v := vehicles[0]
	if v.FuelLevel != 45 || v.CurrentLat != 48.8 {
		t.Fatalf("vehicle not coerced: %+v", v)
	}
}

func TestOptimizeRequestDefaults(t *testing.T) {
	body := `{"deliveries": [{"latitude": 1, "longitude": 2}], "vehicles": [{}]}`
	var req OptimizeRequest
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	deliveries, vehicles, err := req.Models()
	if err != nil {
		t.Fatalf("models: %v", err)
	}
	d := deliveries[0]
	if d.ID == "" || d.Name != "Delivery Point" {
		t.Fatalf("delivery defaults: %+v", d)
	}
	if d.Priority != 3 || d.EstimatedDuration != 15 {
		t.Fatalf("delivery defaults: %+v", d)
	}
	if d.TimeWindowStart != "09:00" || d.TimeWindowEnd != "17:00" {
		t.Fatalf("time window defaults: %+v", d)
	}
	v := vehicles[0]
	if v.ID == "" || v.DriverName != "Unknown" {
		t.Fatalf("vehicle defaults: %+v", v)
	}
	if v.Capacity != 1000 || v.FuelLevel != 50 || v.MaxFuel != 60 {
		t.Fatalf("vehicle defaults: %+v", v)
	}
	if v.CurrentLat != 0 || v.CurrentLon != 0 {
		t.Fatalf("vehicle defaults: %+v", v)
	}
}

func TestOptimizeRequestRejectsJunkNumber(t *testing.T) {
	body := `{"deliveries": [{"latitude": "north", "longitude": 2}]}`
	var req OptimizeRequest
	err := json.Unmarshal([]byte(body), &req)
	if err == nil {
		t.Fatal("expected coercion error")
	}
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestOptimizeRequestRequiresCoordinates(t *testing.T) {
	var req OptimizeRequest
	if err := json.Unmarshal([]byte(`{"deliveries": [{"latitude": 1}]}`), &req); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	_, _, err := req.Models()
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestOptimizeRequestClampsPriority(t *testing.T) {
	body := `{"deliveries": [
		{"latitude": 1, "longitude": 2, "priority": 9},
		{"latitude": 1, "longitude": 2, "priority": 0}
	]}`
	var req OptimizeRequest
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	deliveries, _, err := req.Models()
	if err != nil {
		t.Fatalf("models: %v", err)
	}
	if deliveries[0].Priority != 5 || deliveries[1].Priority != 1 {
		t.Fatalf("priority not clamped: %d %d", deliveries[0].Priority, deliveries[1].Priority)
	}
}

func TestFuelRequestDefaults(t *testing.T) {
	var req FuelRequest
	if err := json.Unmarshal([]byte(`{}`), &req); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	v, dist := req.Models()
	if v.ID != "unknown" {
		t.Fatalf("vehicle id = %q", v.ID)
	}
	if dist != 0 {
		t.Fatalf("distance = %v", dist)
	}
}

func TestFuelRequestValues(t *testing.T) {
	body := `{"vehicle": {"id": "v1", "fuel_level": 3, "max_fuel": 60}, "route_distance": "120.5"}`
	var req FuelRequest
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	v, dist := req.Models()
	if v.ID != "v1" || v.FuelLevel != 3 {
		t.Fatalf("vehicle: %+v", v)
	}
	if dist != 120.5 {
		t.Fatalf("distance = %v", dist)
	}
}
