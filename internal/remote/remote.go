package remote

import (
	"fmt"
	"io"
	"os"

	"home_patterns/internal/logger"
)

// Console notices for empty-history requests.
const (
	msgNothingToUndo = "There is no command to undo!"
	msgNothingToRedo = "There is no command to redo!"
)

// Remote is the invoker. It holds the currently bound command and the
// executed/undone stacks (most recent last). It is not safe for concurrent use.
type Remote struct {
	command  Command
	executed []Command
	undone   []Command

	maxHistory int // 0 means unbounded
	console    io.Writer
	log        *logger.Logger
}

// Option configures a Remote.
type Option func(*Remote)

// WithLogger sets the diagnostics logger.
func WithLogger(l *logger.Logger) Option {
	return func(r *Remote) {
		if l != nil {
			r.log = l
		}
	}
}

// WithConsole sets where empty-history notices are printed.
func WithConsole(w io.Writer) Option {
	return func(r *Remote) {
		if w != nil {
			r.console = w
		}
	}
}

// WithMaxHistory bounds the executed stack. When exceeded, the oldest entries
// are dropped and can no longer be undone.
func WithMaxHistory(n int) Option {
	return func(r *Remote) {
		if n > 0 {
			r.maxHistory = n
		}
	}
}

// New creates a Remote with no command bound.
func New(opts ...Option) *Remote {
	r := &Remote{
		console: os.Stdout,
		log:     logger.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// SetCommand binds cmd as the command the next ExecuteCommand runs.
// Recorded history is left untouched.
func (r *Remote) SetCommand(cmd Command) {
	r.command = cmd
	if cmd != nil {
		r.log.Debugw("remote_set_command", "command", cmd.Description(), "id", cmd.ID())
	}
}

// Current returns the bound command, or nil.
func (r *Remote) Current() Command {
	return r.command
}

// ExecuteCommand runs the bound command, records it, and invalidates redo.
func (r *Remote) ExecuteCommand() error {
	if r.command == nil {
		return ErrNoCommand
	}
	r.command.Execute()
	r.push(r.command)
	r.undone = nil

	r.log.Debugw("remote_execute",
		"command", r.command.Description(),
		"id", r.command.ID(),
		"executed", len(r.executed),
	)
	return nil
}

// push appends to the executed stack, trimming the oldest entries when bounded.
func (r *Remote) push(cmd Command) {
	r.executed = append(r.executed, cmd)
	if r.maxHistory > 0 && len(r.executed) > r.maxHistory {
		excess := len(r.executed) - r.maxHistory
		r.executed = r.executed[excess:]
		r.log.Debugw("remote_history_trimmed", "dropped", excess)
	}
}

// UndoCommand reverses the most recently executed command and makes it
// redoable. With nothing to undo it prints a notice and returns
// ErrNothingToUndo; no state changes.
func (r *Remote) UndoCommand() error {
	if len(r.executed) == 0 {
		fmt.Fprintln(r.console, msgNothingToUndo)
		r.log.Debugw("remote_undo_skipped")
		return ErrNothingToUndo
	}

	last := r.executed[len(r.executed)-1]
	last.Undo()
	r.executed = r.executed[:len(r.executed)-1]
	r.undone = append(r.undone, last)

	r.log.Debugw("remote_undo", "command", last.Description(), "id", last.ID())
	return nil
}

// RedoCommand re-executes the most recently undone command. With nothing to
// redo it prints a notice and returns ErrNothingToRedo; no state changes.
func (r *Remote) RedoCommand() error {
	if len(r.undone) == 0 {
		fmt.Fprintln(r.console, msgNothingToRedo)
		r.log.Debugw("remote_redo_skipped")
		return ErrNothingToRedo
	}

	last := r.undone[len(r.undone)-1]
	last.Execute()
	r.undone = r.undone[:len(r.undone)-1]
	r.push(last)

	r.log.Debugw("remote_redo", "command", last.Description(), "id", last.ID())
	return nil
}

// PeekUndo returns the command UndoCommand would reverse.
func (r *Remote) PeekUndo() (Command, bool) {
	if len(r.executed) == 0 {
		return nil, false
	}
	return r.executed[len(r.executed)-1], true
}

// PeekRedo returns the command RedoCommand would re-execute.
func (r *Remote) PeekRedo() (Command, bool) {
	if len(r.undone) == 0 {
		return nil, false
	}
	return r.undone[len(r.undone)-1], true
}

func (r *Remote) CanUndo() bool  { return len(r.executed) > 0 }
func (r *Remote) CanRedo() bool  { return len(r.undone) > 0 }
func (r *Remote) UndoCount() int { return len(r.executed) }
func (r *Remote) RedoCount() int { return len(r.undone) }

// History describes the executed stack, oldest first.
func (r *Remote) History() []string {
	return describe(r.executed)
}

// Undone describes the undone stack, oldest first.
func (r *Remote) Undone() []string {
	return describe(r.undone)
}

// Clear drops both stacks. The bound command is kept.
func (r *Remote) Clear() {
	r.executed = nil
	r.undone = nil
}

func describe(cmds []Command) []string {
	out := make([]string, len(cmds))
	for i, c := range cmds {
		out[i] = c.Description()
	}
	return out
}
