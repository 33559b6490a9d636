package optimizer

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/eagowl/fleet-optimizer/core/model"
)

// ErrValidation marks request payloads rejected before any processing: a
// numeric field that cannot be coerced or a missing required coordinate.
var ErrValidation = errors.New("invalid request")

// Number is a float64 that also accepts numeric JSON strings, matching the
// loose payloads fleet integrations send ("48.85" and 48.85 are both valid).
// A present but non-numeric value fails the whole request.
type Number float64

func (n *Number) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return fmt.Errorf("%w: %v", ErrValidation, err)
		}
		s = strings.TrimSpace(str)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("%w: not a number: %s", ErrValidation, s)
	}
	*n = Number(f)
	return nil
}

// DeliveryPayload is one delivery stop as submitted by the caller. Optional
// fields fall back to defaults; latitude and longitude are required.
type DeliveryPayload struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	Latitude          *Number `json:"latitude"`
	Longitude         *Number `json:"longitude"`
	Priority          *Number `json:"priority"`
	TimeWindowStart   string  `json:"time_window_start"`
	TimeWindowEnd     string  `json:"time_window_end"`
	EstimatedDuration *Number `json:"estimated_duration"`
}

// Model converts the payload into a DeliveryStop, applying defaults and
// clamping priority into [1,5].
func (p DeliveryPayload) Model() (model.DeliveryStop, error) {
	if p.Latitude == nil || p.Longitude == nil {
		return model.DeliveryStop{}, fmt.Errorf("%w: latitude and longitude are required", ErrValidation)
	}
	d := model.DeliveryStop{
		ID:                p.ID,
		Name:              p.Name,
		Latitude:          float64(*p.Latitude),
		Longitude:         float64(*p.Longitude),
		Priority:          3,
		TimeWindowStart:   p.TimeWindowStart,
		TimeWindowEnd:     p.TimeWindowEnd,
		EstimatedDuration: 15,
	}
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	if d.Name == "" {
		d.Name = "Delivery Point"
	}
	if p.Priority != nil {
		d.Priority = int(*p.Priority)
	}
	if d.Priority < 1 {
		d.Priority = 1
	}
	if d.Priority > 5 {
		d.Priority = 5
	}
	if p.EstimatedDuration != nil {
		d.EstimatedDuration = int(*p.EstimatedDuration)
	}
	if d.TimeWindowStart == "" {
		d.TimeWindowStart = "09:00"
	}
	if d.TimeWindowEnd == "" {
		d.TimeWindowEnd = "17:00"
	}
	return d, nil
}

// VehiclePayload is one fleet vehicle as submitted by the caller. Every
// field is optional.
type VehiclePayload struct {
	ID         string  `json:"id"`
	DriverName string  `json:"driver_name"`
	Capacity   *Number `json:"capacity"`
	CurrentLat *Number `json:"current_lat"`
	CurrentLon *Number `json:"current_lon"`
	FuelLevel  *Number `json:"fuel_level"`
	MaxFuel    *Number `json:"max_fuel"`
}

// Model converts the payload into a Vehicle, using fallbackID when no id
// was submitted.
func (p VehiclePayload) Model(fallbackID string) model.Vehicle {
	v := model.Vehicle{
		ID:         p.ID,
		DriverName: p.DriverName,
		Capacity:   model.DefaultCapacity,
		FuelLevel:  model.DefaultFuelLevel,
		MaxFuel:    model.DefaultMaxFuel,
	}
	if v.ID == "" {
		v.ID = fallbackID
	}
	if v.DriverName == "" {
		v.DriverName = model.DefaultDriverName
	}
	if p.Capacity != nil {
		v.Capacity = float64(*p.Capacity)
	}
	if p.CurrentLat != nil {
		v.CurrentLat = float64(*p.CurrentLat)
	}
	if p.CurrentLon != nil {
		v.CurrentLon = float64(*p.CurrentLon)
	}
	if p.FuelLevel != nil {
		v.FuelLevel = float64(*p.FuelLevel)
	}
	if p.MaxFuel != nil {
		v.MaxFuel = float64(*p.MaxFuel)
	}
	return v
}

// OptimizeRequest is the body of POST /optimize.
type OptimizeRequest struct {
	Deliveries []DeliveryPayload `json:"deliveries"`
	Vehicles   []VehiclePayload  `json:"vehicles"`
}

// Models converts the request into engine inputs.
func (r OptimizeRequest) Models() ([]model.DeliveryStop, []model.Vehicle, error) {
	deliveries := make([]model.DeliveryStop, 0, len(r.Deliveries))
	for i, p := range r.Deliveries {
		d, err := p.Model()
		if err != nil {
			return nil, nil, fmt.Errorf("delivery %d: %w", i, err)
		}
		deliveries = append(deliveries, d)
	}
	vehicles := make([]model.Vehicle, 0, len(r.Vehicles))
	for _, p := range r.Vehicles {
		vehicles = append(vehicles, p.Model(uuid.NewString()))
	}
	return deliveries, vehicles, nil
}

// FuelRequest is the body of POST /fuel-efficiency.
type FuelRequest struct {
	Vehicle       VehiclePayload `json:"vehicle"`
	RouteDistance *Number        `json:"route_distance"`
}

// Models converts the request into a vehicle snapshot and route distance.
func (r FuelRequest) Models() (model.Vehicle, float64) {
	v := r.Vehicle.Model("unknown")
	dist := 0.0
	if r.RouteDistance != nil {
		dist = float64(*r.RouteDistance)
	}
	return v, dist
}
