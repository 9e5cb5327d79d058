package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"home_patterns/internal/models"
)

type StateSQLite struct {
	db *sql.DB
}

func NewStateSQLite(db *sql.DB) *StateSQLite {
	return &StateSQLite{db: db}
}

const (
	upsertDeviceStateSQL = `
		INSERT INTO device_state (device, status, temp_c, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(device) DO UPDATE SET
			status=excluded.status,
			temp_c=excluded.temp_c,
			updated_at=excluded.updated_at
	`

	selectDeviceStateSQL = `
		SELECT device, status, temp_c, updated_at
		FROM device_state ORDER BY device ASC
	`
)

func nullableStatus(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullableTemp(t *float64) sql.NullFloat64 {
	if t == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *t, Valid: true}
}

// Save upserts every snapshot in one transaction. A zero UpdatedAt is
// stamped with the current time.
func (r *StateSQLite) Save(ctx context.Context, snaps ...models.DeviceSnapshot) error {
	if len(snaps) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin device state tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, s := range snaps {
		ts := s.UpdatedAt
		if ts.IsZero() {
			ts = time.Now()
		}
		if _, err := tx.ExecContext(ctx, upsertDeviceStateSQL,
			s.Device,
			nullableStatus(s.Status),
			nullableTemp(s.TemperatureC),
			ts.UTC(),
		); err != nil {
			return fmt.Errorf("save device %q: %w", s.Device, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit device state: %w", err)
	}
	return nil
}

// List returns all stored snapshots ordered by device name.
func (r *StateSQLite) List(ctx context.Context) ([]models.DeviceSnapshot, error) {
	rows, err := r.db.QueryContext(ctx, selectDeviceStateSQL)
	if err != nil {
		return nil, fmt.Errorf("query device state: %w", err)
	}
	defer rows.Close()

	var out []models.DeviceSnapshot
	for rows.Next() {
		var (
			s      models.DeviceSnapshot
			status sql.NullString
			temp   sql.NullFloat64
		)
		if err := rows.Scan(&s.Device, &status, &temp, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan device state: %w", err)
		}
		if status.Valid {
			s.Status = status.String
		}
		if temp.Valid {
			v := temp.Float64
			s.TemperatureC = &v
		}
		s.UpdatedAt = s.UpdatedAt.UTC()
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
