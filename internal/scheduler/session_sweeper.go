// Package scheduler runs periodic maintenance jobs.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"teide-booking/internal/data/repository"
	"teide-booking/internal/metrics"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const sweepTimeout = 30 * time.Second

// SessionSweeper deletes expired durable sessions in bulk. Verification also
// sweeps lazily, so this only keeps the table small between logins.
type SessionSweeper struct {
	cron     *cron.Cron
	sessions repository.SessionRepository
	now      func() time.Time
	log      *zap.Logger
}

func NewSessionSweeper(schedule string, sessions repository.SessionRepository, log *zap.Logger) (*SessionSweeper, error) {
	log = log.With(zap.String("job", "session_sweep"))
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.PrintfLogger(zap.NewStdLog(log)))))

	s := &SessionSweeper{
		cron:     c,
		sessions: sessions,
		now:      time.Now,
		log:      log,
	}
	if _, err := c.AddFunc(schedule, s.Sweep); err != nil {
		return nil, fmt.Errorf("schedule session sweep %q: %w", schedule, err)
	}
	return s, nil
}

func (s *SessionSweeper) Start() {
	s.log.Info("Session sweeper started")
	s.cron.Start()
}

// Stop waits for a running sweep to finish or ctx to expire.
func (s *SessionSweeper) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
		s.log.Warn("Session sweeper did not stop in time")
	}
}

func (s *SessionSweeper) Sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
	defer cancel()

	n, err := s.sessions.DeleteExpired(ctx, s.now())
	if err != nil {
		s.log.Error("Failed to sweep expired sessions", zap.Error(err))
		return
	}

	metrics.SessionsSwept.Add(float64(n))
	if n > 0 {
		s.log.Info("Expired sessions swept", zap.Int64("count", n))
	}
}
