package infra

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

type countingRefresher struct {
	calls atomic.Int32
	err   error
}

func (r *countingRefresher) Refresh(ctx context.Context) error {
	r.calls.Add(1)
	if _, ok := ctx.Deadline(); !ok {
		return errors.New("refresh context has no deadline")
	}
	return r.err
}

func TestSchedulerRunsRefresh(t *testing.T) {
	r := &countingRefresher{}
	s := NewScheduler(r, "@every 1s", zerolog.Nop())
	if err := s.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer s.Stop()

	deadline := time.Now().Add(5 * time.Second)
	for r.calls.Load() == 0 && time.Now().Before(deadline) {
		time.Sleep(50 * time.Millisecond)
	}
	if r.calls.Load() == 0 {
		t.Error("refresh never ran")
	}
}

func TestSchedulerRejectsBadSchedule(t *testing.T) {
	s := NewScheduler(&countingRefresher{}, "every now and then", zerolog.Nop())
	if err := s.Start(); err == nil {
		s.Stop()
		t.Error("Start with invalid schedule succeeded, want error")
	}
}

func TestRunNowPropagatesError(t *testing.T) {
	want := errors.New("api down")
	r := &countingRefresher{err: want}
	s := NewScheduler(r, "@every 1m", zerolog.Nop())

	if err := s.RunNow(); !errors.Is(err, want) {
		t.Errorf("RunNow() = %v, want %v", err, want)
	}
	if r.calls.Load() != 1 {
		t.Errorf("calls = %d, want 1", r.calls.Load())
	}
}
