package session

import (
	"fmt"
	"log"
	"time"

	"github.com/go-co-op/gocron/v2"
)

// Sweeper periodically closes idle sessions.
type Sweeper struct {
	scheduler gocron.Scheduler
}

// NewSweeper schedules m.Sweep(ttl) every interval. Call Start to run it.
func NewSweeper(m *Manager, interval, ttl time.Duration) (*Sweeper, error) {
	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("creating scheduler: %w", err)
	}
	_, err = s.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			if n := m.Sweep(ttl); n > 0 {
				log.Printf("session: swept %d idle sessions", n)
			}
		}),
		gocron.WithName("session-sweep"),
	)
	if err != nil {
		_ = s.Shutdown()
		return nil, fmt.Errorf("scheduling session sweep: %w", err)
	}
	return &Sweeper{scheduler: s}, nil
}

// Start begins sweeping.
func (s *Sweeper) Start() { s.scheduler.Start() }

// Stop waits for a running sweep and stops the scheduler.
func (s *Sweeper) Stop() error { return s.scheduler.Shutdown() }
