// Package fleetstate tracks the last known state of each fleet vehicle.
// It is fed by optimize submissions and by the MQTT telemetry listener, and
// read when building recommendations and health reports.
package fleetstate

import (
	"sync"

	"github.com/eagowl/fleet-optimizer/core/model"
)

type Store interface {
	// Set upserts a single vehicle snapshot.
	Set(v model.Vehicle)
	// ReplaceAll swaps the tracked fleet for the given snapshot.
	ReplaceAll(vs []model.Vehicle)
	// List returns the fleet in insertion order.
	List() []model.Vehicle
	Len() int
}

// MemoryStore is an in-memory Store guarded by a RWMutex. Iteration order is
// the order vehicles were first seen, so recommendation output follows the
// order of the last submitted fleet.
type MemoryStore struct {
	mu    sync.RWMutex
	order []string
	data  map[string]model.Vehicle
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: map[string]model.Vehicle{}}
}

func (s *MemoryStore) Set(v model.Vehicle) {
	s.mu.Lock()
	if _, ok := s.data[v.ID]; !ok {
		s.order = append(s.order, v.ID)
	}
	s.data[v.ID] = v
	s.mu.Unlock()
}

func (s *MemoryStore) ReplaceAll(vs []model.Vehicle) {
	s.mu.Lock()
	s.order = make([]string, 0, len(vs))
	s.data = make(map[string]model.Vehicle, len(vs))
	for _, v := range vs {
		if _, ok := s.data[v.ID]; !ok {
			s.order = append(s.order, v.ID)
		}
		s.data[v.ID] = v
	}
	s.mu.Unlock()
}

func (s *MemoryStore) List() []model.Vehicle {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Vehicle, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.data[id])
	}
	return out
}

func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}
