package game

import (
	"testing"
	"time"
)

func newTestLog() *MessageLog {
	return NewMessageLog(10, 500*time.Millisecond, 2*time.Second, 1500*time.Millisecond)
}

func TestMessagesExpireAndPurge(t *testing.T) {
	l := newTestLog()
	t0 := time.Now()

	l.Add(t0, "first", SevInfo)
	l.Add(t0.Add(time.Second), "second", SevSuccess)

	if got := len(l.Active(t0.Add(2 * time.Second))); got != 2 {
		t.Errorf("active at 2s = %d, want 2", got)
	}

	// Lifetime is 4s total: the first expires at t0+4s, the second at t0+5s.
	active := l.Active(t0.Add(4100 * time.Millisecond))
	if len(active) != 1 || active[0].Text != "second" {
		t.Errorf("active at 4.1s = %+v, want just the second", active)
	}
	if got := len(l.Active(t0.Add(6 * time.Second))); got != 0 {
		t.Errorf("active at 6s = %d, want 0", got)
	}
}

func TestAlphaEnvelope(t *testing.T) {
	l := newTestLog()
	t0 := time.Now()
	l.Add(t0, "hello", SevInfo)
	m := l.Active(t0)[0]

	cases := []struct {
		at   time.Duration
		want float64
	}{
		{0, 0},
		{250 * time.Millisecond, 0.5}, // halfway through fade-in
		{500 * time.Millisecond, 1},
		{2 * time.Second, 1},                  // holding
		{3250 * time.Millisecond, 0.5},        // halfway through fade-out
		{4 * time.Second, 0},                  // expired
		{10 * time.Second, 0},
	}
	for _, tc := range cases {
		got := l.Alpha(m, t0.Add(tc.at))
		if diff := got - tc.want; diff > 0.01 || diff < -0.01 {
			t.Errorf("alpha at %v = %v, want %v", tc.at, got, tc.want)
		}
	}
}

func TestLogEvictsOldestWhenFull(t *testing.T) {
	l := NewMessageLog(3, time.Second, time.Minute, time.Second)
	t0 := time.Now()
	for i, text := range []string{"a", "b", "c", "d"} {
		l.Add(t0.Add(time.Duration(i)*time.Millisecond), text, SevInfo)
	}
	active := l.Active(t0.Add(time.Second))
	if len(active) != 3 {
		t.Fatalf("len = %d, want 3", len(active))
	}
	if active[0].Text != "b" || active[2].Text != "d" {
		t.Errorf("kept %q..%q, want b..d", active[0].Text, active[2].Text)
	}
}

func TestMessagesCarryDistinctIDs(t *testing.T) {
	l := newTestLog()
	t0 := time.Now()
	l.Add(t0, "one", SevInfo)
	l.Add(t0, "two", SevInfo)
	active := l.Active(t0)
	if active[0].ID == active[1].ID {
		t.Error("messages should carry distinct IDs")
	}
}

func TestClearDropsEverything(t *testing.T) {
	l := newTestLog()
	t0 := time.Now()
	l.Add(t0, "one", SevInfo)
	l.Clear()
	if len(l.Active(t0)) != 0 {
		t.Error("cleared log should be empty")
	}
}
