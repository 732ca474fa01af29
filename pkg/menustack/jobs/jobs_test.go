package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/oxport/menustack/pkg/menustack/internal"
)

func newRunner(t *testing.T) *Runner {
	t.Helper()
	r := NewRunner(context.Background(), internal.DiscardLogger())
	t.Cleanup(r.Shutdown)
	return r
}

func wait(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("job did not finish")
	}
}

func TestJobDone(t *testing.T) {
	r := newRunner(t)
	release := make(chan struct{})

	j := Go(r, "load", func(ctx context.Context) (string, error) {
		<-release
		return "campaign.sav", nil
	})

	if j.Poll() != StatusPending {
		t.Fatalf("Poll() = %v before completion", j.Poll())
	}
	if _, err := j.Result(); err == nil {
		t.Error("Result() on pending job returned nil error")
	}

	close(release)
	wait(t, j.Done())

	if j.Poll() != StatusDone {
		t.Fatalf("Poll() = %v, want done", j.Poll())
	}
	got, err := j.Result()
	if err != nil || got != "campaign.sav" {
		t.Errorf("Result() = %q, %v", got, err)
	}
}

func TestJobFailed(t *testing.T) {
	r := newRunner(t)
	wantErr := errors.New("disk read error")

	j := Go(r, "load", func(ctx context.Context) (int, error) {
		return 0, wantErr
	})
	wait(t, j.Done())

	if j.Poll() != StatusFailed {
		t.Fatalf("Poll() = %v, want failed", j.Poll())
	}
	if _, err := j.Result(); !errors.Is(err, wantErr) {
		t.Errorf("Result() error = %v, want %v", err, wantErr)
	}
}

func TestJobPanicIsFailure(t *testing.T) {
	r := newRunner(t)

	j := Go(r, "broken", func(ctx context.Context) (int, error) {
		panic("corrupt header")
	})
	wait(t, j.Done())

	if j.Poll() != StatusFailed {
		t.Fatalf("Poll() = %v, want failed", j.Poll())
	}
}

func TestDiscardDropsResult(t *testing.T) {
	r := newRunner(t)
	release := make(chan struct{})

	j := Go(r, "save", func(ctx context.Context) (int, error) {
		<-release
		return 42, nil
	})

	j.Discard()
	close(release)
	wait(t, j.Done())

	if j.Poll() != StatusPending {
		t.Errorf("Poll() = %v after discard, want pending", j.Poll())
	}
	if !j.Discarded() {
		t.Error("Discarded() = false")
	}
}

func TestShutdownCancelsContext(t *testing.T) {
	r := NewRunner(context.Background(), internal.DiscardLogger())

	j := Go(r, "wait", func(ctx context.Context) (struct{}, error) {
		<-ctx.Done()
		return struct{}{}, ctx.Err()
	})

	r.Shutdown()

	select {
	case <-j.Done():
	default:
		t.Fatal("Shutdown returned before job finished")
	}
	if _, err := j.Result(); !errors.Is(err, context.Canceled) {
		t.Errorf("Result() error = %v, want context.Canceled", err)
	}
}
