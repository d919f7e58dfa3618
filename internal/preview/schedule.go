package preview

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"
)

// scheduler wraps gocron for the optional periodic full rebuild.
type scheduler struct {
	inner gocron.Scheduler
}

// newScheduler creates a scheduler firing trigger every interval.
func newScheduler(interval time.Duration, trigger func()) (*scheduler, error) {
	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}
	_, err = s.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(trigger),
		gocron.WithName("periodic-rebuild"),
	)
	if err != nil {
		_ = s.Shutdown()
		return nil, fmt.Errorf("failed to create rebuild job: %w", err)
	}
	return &scheduler{inner: s}, nil
}

func (s *scheduler) Start() {
	slog.Info("Starting periodic rebuild schedule")
	s.inner.Start()
}

func (s *scheduler) Stop() {
	if err := s.inner.Shutdown(); err != nil {
		slog.Warn("Scheduler shutdown failed", "error", err)
	}
}
