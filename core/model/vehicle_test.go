package model

import "testing"

func TestVehicleFuelRatio(t *testing.T) {
	v := Vehicle{FuelLevel: 30, MaxFuel: 60}
	if r := v.FuelRatio(); r != 0.5 {
		t.Fatalf("expected 0.5 got %v", r)
	}
}

func TestVehicleFuelRatioZeroTank(t *testing.T) {
	v := Vehicle{FuelLevel: 30, MaxFuel: 0}
	if r := v.FuelRatio(); r != 0 {
		t.Fatalf("expected 0 got %v", r)
	}
	v.MaxFuel = -1
	if r := v.FuelRatio(); r != 0 {
		t.Fatalf("expected 0 for negative tank got %v", r)
	}
}

func TestVehicleFuelPercent(t *testing.T) {
	v := Vehicle{FuelLevel: 15, MaxFuel: 60}
	if p := v.FuelPercent(); p != 25 {
		t.Fatalf("expected 25 got %v", p)
	}
}
