package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"teide-booking/internal/data/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubSessions struct {
	swept int64
	at    time.Time
	err   error
}

func (s *stubSessions) Create(context.Context, *entity.Session) error { return nil }
func (s *stubSessions) FindValid(context.Context, string, time.Time) (*entity.Session, error) {
	return nil, nil
}
func (s *stubSessions) Delete(context.Context, string) error { return nil }
func (s *stubSessions) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	s.at = now
	return s.swept, s.err
}

func TestSweepDeletesExpired(t *testing.T) {
	stub := &stubSessions{swept: 3}
	sweeper, err := NewSessionSweeper("@every 1h", stub, zap.NewNop())
	require.NoError(t, err)

	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	sweeper.now = func() time.Time { return fixed }

	sweeper.Sweep()
	assert.Equal(t, fixed, stub.at)
}

func TestSweepToleratesStoreErrors(t *testing.T) {
	stub := &stubSessions{err: errors.New("connection refused")}
	sweeper, err := NewSessionSweeper("@hourly", stub, zap.NewNop())
	require.NoError(t, err)

	assert.NotPanics(t, sweeper.Sweep)
}

func TestNewSessionSweeperRejectsBadSchedule(t *testing.T) {
	_, err := NewSessionSweeper("every now and then", &stubSessions{}, zap.NewNop())
	assert.Error(t, err)
}

func TestStartStop(t *testing.T) {
	sweeper, err := NewSessionSweeper("@every 1h", &stubSessions{}, zap.NewNop())
	require.NoError(t, err)

	sweeper.Start()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	sweeper.Stop(ctx)
}
