package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"home_patterns/internal/home"
	"home_patterns/internal/logger"
	"home_patterns/internal/models"
	"home_patterns/internal/remote"
	"home_patterns/internal/repository"

	"github.com/google/uuid"
)

// ErrJournal marks failures to record a transition. The transition itself has
// already been applied when it is returned.
var ErrJournal = errors.New("journal write failed")

// RemoteService drives the invoker and journals each transition. Events carry
// a per-service session id so the journal can be read back one session at a
// time.
type RemoteService struct {
	session   string
	remote    *remote.Remote
	devices   *home.Devices
	stateRepo repository.StateRepo
	eventRepo repository.EventRepo
	log       *logger.Logger
	now       func() time.Time
}

func NewRemoteService(
	ctl *remote.Remote,
	devices *home.Devices,
	stateRepo repository.StateRepo,
	eventRepo repository.EventRepo,
	log *logger.Logger,
) *RemoteService {
	if log == nil {
		log = logger.Nop()
	}
	return &RemoteService{
		session:   uuid.NewString(),
		remote:    ctl,
		devices:   devices,
		stateRepo: stateRepo,
		eventRepo: eventRepo,
		log:       log,
		now:       time.Now,
	}
}

func (s *RemoteService) SetCommand(cmd remote.Command) {
	s.remote.SetCommand(cmd)
}

// Execute runs the bound command and journals it.
func (s *RemoteService) Execute(ctx context.Context) error {
	cmd := s.remote.Current()
	if err := s.remote.ExecuteCommand(); err != nil {
		return err
	}
	return s.record(ctx, models.EventExecute, cmd)
}

// Undo reverses the latest command. An empty history is journaled as
// SKIPPED and remote.ErrNothingToUndo is returned.
func (s *RemoteService) Undo(ctx context.Context) error {
	cmd, _ := s.remote.PeekUndo()
	if err := s.remote.UndoCommand(); err != nil {
		s.skip(ctx, err)
		return err
	}
	return s.record(ctx, models.EventUndo, cmd)
}

// Redo re-applies the latest undone command. An empty history is journaled
// as SKIPPED and remote.ErrNothingToRedo is returned.
func (s *RemoteService) Redo(ctx context.Context) error {
	cmd, _ := s.remote.PeekRedo()
	if err := s.remote.RedoCommand(); err != nil {
		s.skip(ctx, err)
		return err
	}
	return s.record(ctx, models.EventRedo, cmd)
}

// Session identifies this service's events in the journal.
func (s *RemoteService) Session() string { return s.session }

func (s *RemoteService) History() []string { return s.remote.History() }
func (s *RemoteService) Undone() []string  { return s.remote.Undone() }

func (s *RemoteService) record(ctx context.Context, typ string, cmd remote.Command) error {
	now := s.now().UTC()
	ev := models.HomeEvent{
		EventID:     uuid.NewString(),
		OccurredAt:  now,
		Type:        typ,
		Description: cmd.Description(),
		Metadata: map[string]any{
			"session":    s.session,
			"command_id": cmd.ID(),
			"kind":       string(cmd.Kind()),
			"executed":   s.remote.UndoCount(),
			"undone":     s.remote.RedoCount(),
		},
	}
	if err := s.eventRepo.Append(ctx, ev); err != nil {
		s.log.Errorw("journal_append_failed", "err", err, "type", typ, "command_id", cmd.ID())
		return fmt.Errorf("%w: append %s: %w", ErrJournal, typ, err)
	}
	if err := s.stateRepo.Save(ctx, s.devices.Snapshots(now)...); err != nil {
		s.log.Errorw("device_state_save_failed", "err", err, "type", typ)
		return fmt.Errorf("%w: save device state: %w", ErrJournal, err)
	}

	s.log.Infow("remote_transition",
		"type", typ,
		"command", cmd.Description(),
		"executed", s.remote.UndoCount(),
		"undone", s.remote.RedoCount(),
	)
	return nil
}

// skip journals an empty-history request. Journal failures are only logged
// so the caller still sees the original sentinel.
func (s *RemoteService) skip(ctx context.Context, cause error) {
	if !remote.IsEmptyHistory(cause) {
		return
	}
	err := s.eventRepo.Append(ctx, models.HomeEvent{
		EventID:     uuid.NewString(),
		OccurredAt:  s.now().UTC(),
		Type:        models.EventSkipped,
		Description: cause.Error(),
		Metadata:    map[string]any{"session": s.session},
	})
	if err != nil {
		s.log.Errorw("journal_append_failed", "err", err, "type", models.EventSkipped)
	}
	s.log.Infow("remote_transition_skipped", "reason", cause.Error())
}
