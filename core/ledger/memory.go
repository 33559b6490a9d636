package ledger

import (
	"sync"

	"github.com/eagowl/fleet-optimizer/core/model"
)

// DefaultCapacity bounds the in-memory ledger when no capacity is configured.
const DefaultCapacity = 100

// Memory is a bounded in-memory Ledger backed by a ring buffer. Once the
// capacity is reached each new run evicts the oldest one.
type Memory struct {
	mu    sync.Mutex
	buf   []model.OptimizationRun
	next  int
	size  int
	total int
}

// NewMemory returns a Memory ledger retaining up to capacity runs.
// Non-positive capacities fall back to DefaultCapacity.
func NewMemory(capacity int) *Memory {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Memory{buf: make([]model.OptimizationRun, capacity)}
}

// Record appends the run, evicting the oldest entry when full.
func (m *Memory) Record(run model.OptimizationRun) {
	m.mu.Lock()
	m.buf[m.next] = run
	m.next = (m.next + 1) % len(m.buf)
	if m.size < len(m.buf) {
		m.size++
	}
	m.total++
	m.mu.Unlock()
}

// Recent returns up to n of the most recent runs, oldest first.
func (m *Memory) Recent(n int) []model.OptimizationRun {
	m.mu.Lock()
	defer m.mu.Unlock()
	if n <= 0 || m.size == 0 {
		return []model.OptimizationRun{}
	}
	if n > m.size {
		n = m.size
	}
	start := m.next - n
	if start < 0 {
		start += len(m.buf)
	}
	out := make([]model.OptimizationRun, n)
	for i := range out {
		out[i] = m.buf[(start+i)%len(m.buf)]
	}
	return out
}

// Len reports the number of retained runs.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.size
}

// Count reports the number of runs recorded since creation.
func (m *Memory) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.total
}
