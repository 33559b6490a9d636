package metrics

import (
	"context"

	"github.com/eagowl/fleet-optimizer/core/events"
	coremetrics "github.com/eagowl/fleet-optimizer/core/metrics"
	"github.com/eagowl/fleet-optimizer/internal/eventbus"
)

// StartEventCollector subscribes to the event bus and records metrics for
// telemetry events. It stops when the context is canceled.
func StartEventCollector(ctx context.Context, bus eventbus.EventBus, sink coremetrics.Sink) {
	if bus == nil || sink == nil {
		return
	}
	sub := bus.Subscribe()
	go func() {
		defer bus.Unsubscribe(sub)
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-sub:
				if !ok {
					return
				}
				switch e := ev.(type) {
				case events.VehicleSeen:
					if r, ok := sink.(coremetrics.VehicleStateRecorder); ok {
						_ = r.RecordVehicleState(coremetrics.VehicleStateEvent{Vehicle: e.Vehicle, Time: e.Time})
					}
					if r, ok := sink.(coremetrics.FleetSizeRecorder); ok {
						_ = r.RecordFleetSize(e.FleetSize)
					}
				}
			}
		}
	}()
}
