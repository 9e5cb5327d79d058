package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"home_patterns/internal/models"
)

// EventMemory is an in-process EventRepo. The status API reads it from HTTP
// goroutines, hence the mutex.
type EventMemory struct {
	mu     sync.RWMutex
	events []models.HomeEvent
}

func NewEventMemory() *EventMemory { return &EventMemory{} }

func (m *EventMemory) Append(_ context.Context, e models.HomeEvent) error {
	e = normalizeEvent(e)
	m.mu.Lock()
	m.events = append(m.events, e)
	m.mu.Unlock()
	return nil
}

func (m *EventMemory) List(_ context.Context, from, to time.Time, typ string) ([]models.HomeEvent, error) {
	typ = normalizeType(typ)
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.HomeEvent, 0, len(m.events))
	for _, e := range m.events {
		if !from.IsZero() && e.OccurredAt.Before(from) {
			continue
		}
		if !to.IsZero() && e.OccurredAt.After(to) {
			continue
		}
		if typ != "" && e.Type != typ {
			continue
		}
		out = append(out, e)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].OccurredAt.Before(out[j].OccurredAt) })
	return out, nil
}

// StateMemory is an in-process StateRepo.
type StateMemory struct {
	mu    sync.RWMutex
	state map[string]models.DeviceSnapshot
}

func NewStateMemory() *StateMemory {
	return &StateMemory{state: make(map[string]models.DeviceSnapshot)}
}

func (m *StateMemory) Save(_ context.Context, snaps ...models.DeviceSnapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range snaps {
		if s.UpdatedAt.IsZero() {
			s.UpdatedAt = time.Now()
		}
		s.UpdatedAt = s.UpdatedAt.UTC()
		m.state[s.Device] = s
	}
	return nil
}

func (m *StateMemory) List(_ context.Context) ([]models.DeviceSnapshot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.DeviceSnapshot, 0, len(m.state))
	for _, s := range m.state {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Device < out[j].Device })
	return out, nil
}
