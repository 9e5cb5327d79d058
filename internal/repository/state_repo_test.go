package repository

import (
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"

	"home_patterns/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
)

type sqlmockArgumentFunc func(v driver.Value) bool

func (f sqlmockArgumentFunc) Match(v driver.Value) bool { return f(v) }

func TestStateSave_UpsertsEachDeviceInTx(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStateSQLite(db)

	tokyo := time.FixedZone("JST", 9*3600)
	at := time.Date(2025, 5, 1, 9, 0, 0, 0, tokyo)
	temp := 10.0

	isRecentUTC := sqlmockArgumentFunc(func(v driver.Value) bool {
		tm, ok := v.(time.Time)
		if !ok || tm.Location() != time.UTC {
			return false
		}
		now := time.Now().UTC()
		return !tm.Before(now.Add(-5*time.Second)) && !tm.After(now.Add(5*time.Second))
	})

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO device_state")).
		WithArgs("thermostat", nil, 10.0, at.UTC()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO device_state")).
		WithArgs("light", "ON", nil, isRecentUTC).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Save(ctx(t),
		models.DeviceSnapshot{Device: models.DeviceThermostat, TemperatureC: &temp, UpdatedAt: at},
		models.DeviceSnapshot{Device: models.DeviceLight, Status: "ON"},
	)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestStateSave_ExecErrorRollsBack(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStateSQLite(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO device_state")).WillReturnError(errors.New("db down"))
	mock.ExpectRollback()

	if err := repo.Save(ctx(t), models.DeviceSnapshot{Device: models.DeviceFan, Status: "OFF"}); err == nil {
		t.Fatalf("expected error")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestStateSave_NoSnapshotsIsNoop(t *testing.T) {
	db, mock := newMockDB(t)
	if err := NewStateSQLite(db).Save(ctx(t)); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unexpected db calls: %v", err)
	}
}

func TestStateList_MapsNullableColumns(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStateSQLite(db)

	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"device", "status", "temp_c", "updated_at"}).
		AddRow("fan", "OFF", nil, now).
		AddRow("thermostat", nil, 5.5, now)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT device, status, temp_c, updated_at")).WillReturnRows(rows)

	got, err := repo.List(ctx(t))
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("want 2, got %d", len(got))
	}
	if got[0].Status != "OFF" || got[0].TemperatureC != nil {
		t.Fatalf("fan = %+v", got[0])
	}
	if got[1].Status != "" || got[1].TemperatureC == nil || *got[1].TemperatureC != 5.5 {
		t.Fatalf("thermostat = %+v", got[1])
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
