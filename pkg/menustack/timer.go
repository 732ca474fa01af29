package menustack

import "time"

// Timer is a periodic callback advanced cooperatively from a screen's Think.
// It never runs on its own goroutine, so the callback may use the screen's
// Navigator and state freely.
type Timer struct {
	interval time.Duration
	onTimer  func()
	running  bool
	next     time.Time
	now      func() time.Time
}

// NewTimer creates a stopped timer that calls fn every interval.
func NewTimer(interval time.Duration, fn func()) *Timer {
	return &Timer{
		interval: interval,
		onTimer:  fn,
		now:      time.Now,
	}
}

// SetClock replaces the time source.
func (t *Timer) SetClock(now func() time.Time) {
	t.now = now
}

// Start (re)arms the timer; the first call to fn is one interval from now.
func (t *Timer) Start() {
	t.running = true
	t.next = t.now().Add(t.interval)
}

// Stop disarms the timer.
func (t *Timer) Stop() {
	t.running = false
}

// Running reports whether the timer is armed.
func (t *Timer) Running() bool {
	return t.running
}

// SetInterval changes the period. A running timer is rearmed.
func (t *Timer) SetInterval(interval time.Duration) {
	t.interval = interval
	if t.running {
		t.Start()
	}
}

// Think fires fn at most once per call when the deadline has passed.
// A late tick does not cause a burst of catch-up calls.
func (t *Timer) Think() {
	if !t.running || t.interval <= 0 {
		return
	}
	now := t.now()
	if now.Before(t.next) {
		return
	}
	t.next = now.Add(t.interval)
	if t.onTimer != nil {
		t.onTimer()
	}
}
