package menustack

import (
	"testing"
	"time"
)

func TestTimer(t *testing.T) {
	now := time.Unix(100, 0)
	fired := 0
	timer := NewTimer(time.Second, func() { fired++ })
	timer.SetClock(func() time.Time { return now })

	timer.Think()
	if fired != 0 {
		t.Fatal("stopped timer fired")
	}

	timer.Start()
	now = now.Add(999 * time.Millisecond)
	timer.Think()
	if fired != 0 {
		t.Fatal("timer fired early")
	}

	now = now.Add(time.Millisecond)
	timer.Think()
	if fired != 1 {
		t.Fatalf("fired = %d, want 1", fired)
	}

	// A long stall yields one call, not a burst.
	now = now.Add(10 * time.Second)
	timer.Think()
	timer.Think()
	if fired != 2 {
		t.Errorf("fired = %d after stall, want 2", fired)
	}

	timer.Stop()
	now = now.Add(time.Hour)
	timer.Think()
	if fired != 2 || timer.Running() {
		t.Errorf("stopped timer fired or still running")
	}
}

func TestTimerSetIntervalRearms(t *testing.T) {
	now := time.Unix(0, 0)
	fired := 0
	timer := NewTimer(time.Second, func() { fired++ })
	timer.SetClock(func() time.Time { return now })
	timer.Start()

	now = now.Add(900 * time.Millisecond)
	timer.SetInterval(500 * time.Millisecond)
	now = now.Add(400 * time.Millisecond)
	timer.Think()
	if fired != 0 {
		t.Fatal("fired before rearmed deadline")
	}
	now = now.Add(100 * time.Millisecond)
	timer.Think()
	if fired != 1 {
		t.Errorf("fired = %d, want 1", fired)
	}
}
