package repository_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"home_patterns/internal/models"
	"home_patterns/internal/repository"
	"home_patterns/internal/repository/db"
)

func TestSQLiteJournal_RoundTrip(t *testing.T) {
	conn, err := db.InitDB(filepath.Join(t.TempDir(), "journal.db"))
	if err != nil {
		t.Fatalf("InitDB: %v", err)
	}
	defer conn.Close()

	repos := repository.NewRepository(conn)
	ctx := context.Background()
	at := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)

	if err := repos.EventRepo.Append(ctx, models.HomeEvent{
		OccurredAt:  at,
		Type:        models.EventExecute,
		Description: "increase thermostat by 5°C",
		Metadata:    map[string]any{"temperature_c": 5},
	}); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := repos.EventRepo.Append(ctx, models.HomeEvent{
		OccurredAt:  at.Add(time.Minute),
		Type:        models.EventUndo,
		Description: "increase thermostat by 5°C",
	}); err != nil {
		t.Fatalf("Append: %v", err)
	}

	undos, err := repos.EventRepo.List(ctx, time.Time{}, time.Time{}, "undo")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(undos) != 1 || undos[0].Type != models.EventUndo {
		t.Fatalf("unexpected undo events: %+v", undos)
	}

	temp := 5.0
	if err := repos.StateRepo.Save(ctx,
		models.DeviceSnapshot{Device: models.DeviceThermostat, TemperatureC: &temp, UpdatedAt: at},
		models.DeviceSnapshot{Device: models.DeviceLight, Status: "OFF", UpdatedAt: at},
	); err != nil {
		t.Fatalf("Save: %v", err)
	}
	temp = 10
	if err := repos.StateRepo.Save(ctx,
		models.DeviceSnapshot{Device: models.DeviceThermostat, TemperatureC: &temp, UpdatedAt: at.Add(time.Minute)},
	); err != nil {
		t.Fatalf("Save: %v", err)
	}

	snaps, err := repos.StateRepo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(snaps) != 2 {
		t.Fatalf("want 2 devices, got %d", len(snaps))
	}
	if snaps[1].Device != models.DeviceThermostat || snaps[1].TemperatureC == nil || *snaps[1].TemperatureC != 10 {
		t.Fatalf("thermostat snapshot = %+v", snaps[1])
	}
}
