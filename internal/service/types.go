package service

import "time"

// LogFilter selects journal events.
type LogFilter struct {
	From  time.Time // inclusive; zero means no lower bound
	To    time.Time // inclusive; zero means no upper bound
	Type  string    // "", "EXECUTE", "UNDO", "REDO", "SKIPPED", "READING"
	Limit int       // keep only the newest Limit events; 0 means all
}
