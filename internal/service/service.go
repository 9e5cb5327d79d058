package service

import (
	"context"

	"home_patterns/internal/home"
	"home_patterns/internal/logger"
	"home_patterns/internal/models"
	"home_patterns/internal/remote"
	"home_patterns/internal/repository"
)

// Remote drives the invoker and journals every transition.
type Remote interface {
	SetCommand(cmd remote.Command)
	Execute(ctx context.Context) error
	Undo(ctx context.Context) error
	Redo(ctx context.Context) error
	History() []string
	Undone() []string
}

// Monitoring exposes read-only device snapshots.
type Monitoring interface {
	Devices(ctx context.Context) ([]models.DeviceSnapshot, error)
}

// EventLog exposes the journal with filtering.
type EventLog interface {
	List(ctx context.Context, f LogFilter) ([]models.HomeEvent, error)
}

// HistoryReader exposes the remote's histories as journaled.
type HistoryReader interface {
	Histories(ctx context.Context) (HistoryView, error)
}

// Service aggregates the sub-services handed to the CLI and the status API.
type Service struct {
	Remote
	Monitoring
	EventLog
	HistoryReader
}

// NewService wires the repositories, the invoker and its receivers.
func NewService(repos *repository.Repository, ctl *remote.Remote, devices *home.Devices, log *logger.Logger) *Service {
	return &Service{
		Remote:        NewRemoteService(ctl, devices, repos.StateRepo, repos.EventRepo, log),
		Monitoring:    NewMonitoringService(repos.StateRepo, devices),
		EventLog:      NewEventLogService(repos.EventRepo),
		HistoryReader: NewHistoryService(repos.EventRepo),
	}
}

// NewStatusService wires only the read side used by the status API. devices
// supplies the baseline snapshot before anything has been journaled.
func NewStatusService(repos *repository.Repository, devices *home.Devices) *Service {
	return &Service{
		Monitoring:    NewMonitoringService(repos.StateRepo, devices),
		EventLog:      NewEventLogService(repos.EventRepo),
		HistoryReader: NewHistoryService(repos.EventRepo),
	}
}
