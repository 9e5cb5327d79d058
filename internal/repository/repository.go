package repository

import (
	"context"
	"database/sql"
	"time"

	"home_patterns/internal/models"
)

// EventRepo is the append-only journal of remote transitions and readings.
type EventRepo interface {
	Append(ctx context.Context, e models.HomeEvent) error
	List(ctx context.Context, from, to time.Time, typ string) ([]models.HomeEvent, error)
}

// StateRepo keeps the latest snapshot per device.
type StateRepo interface {
	Save(ctx context.Context, snaps ...models.DeviceSnapshot) error
	List(ctx context.Context) ([]models.DeviceSnapshot, error)
}

type Repository struct {
	StateRepo StateRepo
	EventRepo EventRepo
}

// NewRepository backs both repos with SQLite.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		StateRepo: NewStateSQLite(db),
		EventRepo: NewEventSQLite(db),
	}
}

// NewMemoryRepository keeps everything in process memory. Used when no
// database path is configured.
func NewMemoryRepository() *Repository {
	return &Repository{
		StateRepo: NewStateMemory(),
		EventRepo: NewEventMemory(),
	}
}
