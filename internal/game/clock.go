package game

import "time"

// Clock abstracts wall-clock time so delayed resolutions and price
// refreshes can be driven by a fake clock in tests.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// timer is a one-shot deadline: armed at T, due at T+delay.
type timer struct {
	deadline time.Time
	armed    bool
}

func (t *timer) arm(now time.Time, delay time.Duration) {
	t.deadline = now.Add(delay)
	t.armed = true
}

func (t *timer) stop() { t.armed = false }

func (t *timer) pending() bool { return t.armed }

// due reports whether the deadline has passed, disarming the timer if so.
func (t *timer) due(now time.Time) bool {
	if !t.armed || now.Before(t.deadline) {
		return false
	}
	t.armed = false
	return true
}
