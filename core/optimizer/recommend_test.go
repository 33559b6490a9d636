package optimizer

import (
	"strings"
	"testing"

	"github.com/eagowl/fleet-optimizer/core/ledger"
	"github.com/eagowl/fleet-optimizer/core/model"
)

func vehicleWithFuel(id string, level, max float64) model.Vehicle {
	return model.Vehicle{ID: id, DriverName: "driver-" + id, FuelLevel: level, MaxFuel: max}
}

func TestRecommendFuelThresholds(t *testing.T) {
	r := NewRecommendationEngine()

	cases := []struct {
		name     string
		level    float64
		wantType string
	}{
		{"critical", 10, model.RecommendationFuelAlert},
		{"just below alert", 19.99, model.RecommendationFuelAlert},
		{"alert boundary is warning", 20, model.RecommendationFuelWarning},
		{"low", 30, model.RecommendationFuelWarning},
		{"just below warn", 39.99, model.RecommendationFuelWarning},
		{"warn boundary is fine", 40, ""},
		{"healthy", 80, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			recs := r.Recommend([]model.Vehicle{vehicleWithFuel("v1", tc.level, 100)}, nil)
			if tc.wantType == "" {
				if len(recs) != 0 {
					t.Fatalf("expected no recommendation got %+v", recs)
				}
				return
			}
			if len(recs) != 1 {
				t.Fatalf("expected 1 recommendation got %d", len(recs))
			}
			if recs[0].Type != tc.wantType {
				t.Fatalf("expected %s got %s", tc.wantType, recs[0].Type)
			}
			if recs[0].VehicleID != "v1" || recs[0].DriverName != "driver-v1" {
				t.Fatalf("vehicle fields missing: %+v", recs[0])
			}
			if recs[0].FuelPercent == nil || *recs[0].FuelPercent != tc.level {
				t.Fatalf("fuel percentage not carried: %+v", recs[0].FuelPercent)
			}
		})
	}
}

func TestRecommendAlertPriority(t *testing.T) {
	r := NewRecommendationEngine()

	recs := r.Recommend([]model.Vehicle{vehicleWithFuel("v1", 5, 100)}, nil)
	if len(recs) != 1 || recs[0].Priority != model.RecommendationPriorityHigh {
		t.Fatalf("expected a high-priority alert got %+v", recs)
	}
	recs = r.Recommend([]model.Vehicle{vehicleWithFuel("v1", 25, 100)}, nil)
	if len(recs) != 1 || recs[0].Priority != model.RecommendationPriorityMedium {
		t.Fatalf("expected a medium-priority warning got %+v", recs)
	}
}

func TestRecommendLowEfficiencyWindow(t *testing.T) {
	r := NewRecommendationEngine()
	led := ledger.NewMemory(100)
	for i := 0; i < 5; i++ {
		led.Record(model.OptimizationRun{EfficiencyScore: 0.5})
	}

	recs := r.Recommend(nil, led)
	if len(recs) != 1 {
		t.Fatalf("expected 1 recommendation got %d", len(recs))
	}
	rec := recs[0]
	if rec.Type != model.RecommendationEfficiency || rec.Priority != model.RecommendationPriorityMedium {
		t.Fatalf("unexpected recommendation: %+v", rec)
	}
	if !strings.Contains(rec.Message, "(50.0%)") {
		t.Fatalf("message should carry the mean percentage: %q", rec.Message)
	}
	if rec.VehicleID != "" || rec.FuelPercent != nil {
		t.Fatalf("fleet-wide entry must not carry vehicle fields: %+v", rec)
	}
}

func TestRecommendHealthyEfficiency(t *testing.T) {
	r := NewRecommendationEngine()
	led := ledger.NewMemory(100)
	for i := 0; i < 5; i++ {
		led.Record(model.OptimizationRun{EfficiencyScore: 0.9})
	}

	if recs := r.Recommend(nil, led); len(recs) != 0 {
		t.Fatalf("expected no recommendation got %+v", recs)
	}
}

func TestRecommendPartialWindowSkipped(t *testing.T) {
	r := NewRecommendationEngine()
	led := ledger.NewMemory(100)
	for i := 0; i < 4; i++ {
		led.Record(model.OptimizationRun{EfficiencyScore: 0.1})
	}

	if recs := r.Recommend(nil, led); len(recs) != 0 {
		t.Fatalf("window is not full yet, got %+v", recs)
	}
}

func TestRecommendNilLedger(t *testing.T) {
	r := NewRecommendationEngine()
	recs := r.Recommend([]model.Vehicle{vehicleWithFuel("v1", 90, 100)}, nil)
	if recs == nil {
		t.Fatal("result must never be nil")
	}
	if len(recs) != 0 {
		t.Fatalf("expected empty got %+v", recs)
	}
}

func TestRecommendCombined(t *testing.T) {
	r := NewRecommendationEngine()
	led := ledger.NewMemory(100)
	for i := 0; i < 5; i++ {
		led.Record(model.OptimizationRun{EfficiencyScore: 0.4})
	}
	vehicles := []model.Vehicle{
		vehicleWithFuel("v1", 10, 100),
		vehicleWithFuel("v2", 90, 100),
		vehicleWithFuel("v3", 30, 100),
	}

	recs := r.Recommend(vehicles, led)
	if len(recs) != 3 {
		t.Fatalf("expected alert, warning and efficiency entries, got %+v", recs)
	}
	if recs[0].Type != model.RecommendationFuelAlert || recs[0].VehicleID != "v1" {
		t.Errorf("first should be the v1 alert: %+v", recs[0])
	}
	if recs[1].Type != model.RecommendationFuelWarning || recs[1].VehicleID != "v3" {
		t.Errorf("second should be the v3 warning: %+v", recs[1])
	}
	if recs[2].Type != model.RecommendationEfficiency {
		t.Errorf("last should be the fleet efficiency entry: %+v", recs[2])
	}
}
