package digest

import (
	"context"
	"fmt"
	"log"
	"time"
)

// Scheduler fires the daily digest run once per day at a fixed local time.
type Scheduler struct {
	orchestrator *Orchestrator
	hour         int
	minute       int
}

// NewScheduler parses at as "HH:MM" local time.
func NewScheduler(orchestrator *Orchestrator, at string) (*Scheduler, error) {
	t, err := time.Parse("15:04", at)
	if err != nil {
		return nil, fmt.Errorf("invalid digest time %q: %w", at, err)
	}

	return &Scheduler{
		orchestrator: orchestrator,
		hour:         t.Hour(),
		minute:       t.Minute(),
	}, nil
}

func (s *Scheduler) Start(ctx context.Context) error {
	for {
		next := s.nextRun(time.Now())
		log.Printf("[INFO] next daily digest scheduled at %s", next.Format(time.RFC3339))

		timer := time.NewTimer(time.Until(next))
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
			s.orchestrator.RunDaily(ctx)
		}
	}
}

func (s *Scheduler) nextRun(now time.Time) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), s.hour, s.minute, 0, 0, now.Location())
	if !next.After(now) {
		next = next.Add(24 * time.Hour)
	}
	return next
}
