package service

import (
	"context"
	"time"

	"home_patterns/internal/home"
	"home_patterns/internal/logger"
	"home_patterns/internal/models"
	"home_patterns/internal/repository"
)

// readingTimeout bounds a single journal write from an observer callback,
// which has no caller context.
const readingTimeout = 5 * time.Second

// ReadingJournal is a weather station observer that journals every reading.
type ReadingJournal struct {
	eventRepo repository.EventRepo
	source    string
	log       *logger.Logger
}

func NewReadingJournal(eventRepo repository.EventRepo, source string, log *logger.Logger) *ReadingJournal {
	if log == nil {
		log = logger.Nop()
	}
	return &ReadingJournal{eventRepo: eventRepo, source: source, log: log}
}

// Update implements observer.Observer.
func (j *ReadingJournal) Update(temperature float64) {
	ctx, cancel := context.WithTimeout(context.Background(), readingTimeout)
	defer cancel()

	err := j.eventRepo.Append(ctx, models.HomeEvent{
		Type:        models.EventReading,
		Description: home.FormatCelsius(temperature) + "°C",
		Metadata: map[string]any{
			"source":        j.source,
			"temperature_c": temperature,
		},
	})
	if err != nil {
		j.log.Errorw("journal_append_failed", "err", err, "type", models.EventReading)
	}
}
