package service

import (
	"context"
	"time"

	"home_patterns/internal/models"
	"home_patterns/internal/repository"
)

// HistoryView is the invoker's state as recorded in the journal: executed and
// undone command descriptions, oldest first.
type HistoryView struct {
	Session  string   `json:"session,omitempty"`
	Executed []string `json:"executed"`
	Undone   []string `json:"undone"`
}

// HistoryService rebuilds the latest remote session's histories from the
// journal. It only reads; nothing is fed back into a Remote.
type HistoryService struct {
	eventRepo repository.EventRepo
}

func NewHistoryService(eventRepo repository.EventRepo) *HistoryService {
	return &HistoryService{eventRepo: eventRepo}
}

func (s *HistoryService) Histories(ctx context.Context) (HistoryView, error) {
	events, err := s.eventRepo.List(ctx, time.Time{}, time.Time{}, "")
	if err != nil {
		return HistoryView{}, err
	}
	return replayHistory(events), nil
}

func isTransition(typ string) bool {
	return typ == models.EventExecute || typ == models.EventUndo || typ == models.EventRedo
}

// replayHistory applies the transitions of the session that wrote the last
// transition, in journal order. The "executed" count recorded with each
// event reproduces any max-history trimming.
func replayHistory(events []models.HomeEvent) HistoryView {
	view := HistoryView{Executed: []string{}, Undone: []string{}}

	found := false
	for i := len(events) - 1; i >= 0; i-- {
		if isTransition(events[i].Type) {
			view.Session = metaString(events[i].Metadata, "session")
			found = true
			break
		}
	}
	if !found {
		return view
	}

	for _, e := range events {
		if !isTransition(e.Type) || metaString(e.Metadata, "session") != view.Session {
			continue
		}
		switch e.Type {
		case models.EventExecute:
			view.Executed = append(view.Executed, e.Description)
			view.Undone = view.Undone[:0]
		case models.EventUndo:
			if n := len(view.Executed); n > 0 {
				view.Undone = append(view.Undone, view.Executed[n-1])
				view.Executed = view.Executed[:n-1]
			}
		case models.EventRedo:
			if n := len(view.Undone); n > 0 {
				view.Executed = append(view.Executed, view.Undone[n-1])
				view.Undone = view.Undone[:n-1]
			}
		}
		if keep, ok := metaInt(e.Metadata, "executed"); ok && keep >= 0 && len(view.Executed) > keep {
			view.Executed = view.Executed[len(view.Executed)-keep:]
		}
	}
	return view
}

func metaString(meta any, key string) string {
	m, ok := meta.(map[string]any)
	if !ok {
		return ""
	}
	v, _ := m[key].(string)
	return v
}

// metaInt reads a count that is an int in memory and a float64 after a JSON
// round trip through SQLite.
func metaInt(meta any, key string) (int, bool) {
	m, ok := meta.(map[string]any)
	if !ok {
		return 0, false
	}
	switch v := m[key].(type) {
	case int:
		return v, true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}
