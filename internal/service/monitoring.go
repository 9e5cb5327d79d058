package service

import (
	"context"
	"time"

	"home_patterns/internal/home"
	"home_patterns/internal/models"
	"home_patterns/internal/repository"
)

type MonitoringService struct {
	stateRepo repository.StateRepo
	devices   *home.Devices
}

// NewMonitoringService reads snapshots from stateRepo. devices may be nil; when
// set, it provides the baseline for a journal that has no snapshots yet.
func NewMonitoringService(stateRepo repository.StateRepo, devices *home.Devices) *MonitoringService {
	return &MonitoringService{stateRepo: stateRepo, devices: devices}
}

// Devices returns the latest stored snapshot per device.
func (s *MonitoringService) Devices(ctx context.Context) ([]models.DeviceSnapshot, error) {
	snaps, err := s.stateRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(snaps) == 0 && s.devices != nil {
		return s.devices.Snapshots(time.Now()), nil
	}
	for i := range snaps {
		snaps[i].UpdatedAt = toUTC(snaps[i].UpdatedAt)
	}
	return snaps, nil
}

// toUTC normalizes non-zero time to UTC, preserving zero values.
func toUTC(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.UTC()
}
