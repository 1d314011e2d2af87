package gameloop

import (
	"testing"
	"time"
)

// fakeClock advances by work on every Now call, so the time between the
// loop's two Now calls models the frame's update+render cost.
type fakeClock struct {
	now   time.Duration
	work  time.Duration
	slept time.Duration
}

func (c *fakeClock) Now() time.Duration {
	c.now += c.work
	return c.now
}

func (c *fakeClock) Sleep(d time.Duration) {
	c.slept += d
	c.now += d
}

func TestFastMachineSleepsAndHoldsRate(t *testing.T) {
	dt := 20 * time.Millisecond
	l := New(dt)
	clock := &fakeClock{work: time.Millisecond} // frames much cheaper than dt

	updates := 0
	renders := 0
	for range 10 {
		l.Step(clock, func(d time.Duration) {
			if d != dt {
				t.Fatalf("update dt = %v, want %v", d, dt)
			}
			updates++
		}, func() { renders++ })
	}

	if updates != 10 || renders != 10 {
		t.Fatalf("updates=%d renders=%d, want 10 each", updates, renders)
	}
	if clock.slept == 0 {
		t.Fatal("fast machine should sleep to hold the update rate")
	}
}

func TestSlowMachineCapsUpdates(t *testing.T) {
	dt := 20 * time.Millisecond
	l := New(dt)
	clock := &fakeClock{work: 100 * time.Millisecond} // frames cost 5 updates

	var perStep []int
	for range 5 {
		n := 0
		l.Step(clock, func(time.Duration) { n++ }, func() {})
		perStep = append(perStep, n)
	}

	for i, n := range perStep {
		if n > MaxUpdatesPerStep {
			t.Fatalf("step %d ran %d updates, cap is %d", i, n, MaxUpdatesPerStep)
		}
	}
	// After the first step the loop is permanently behind and should run at
	// the cap.
	if perStep[len(perStep)-1] != MaxUpdatesPerStep {
		t.Fatalf("slow machine should run at the cap, got %v", perStep)
	}
	if clock.slept != 0 {
		t.Fatal("slow machine should never sleep")
	}
}

func TestAdvanceRunsOwedUpdates(t *testing.T) {
	dt := 20 * time.Millisecond
	l := New(dt)

	// Half a dt owes nothing; another half owes exactly one.
	if n := l.Advance(10*time.Millisecond, func(time.Duration) {}); n != 0 {
		t.Fatalf("10ms frame ran %d updates, want 0", n)
	}
	if n := l.Advance(10*time.Millisecond, func(time.Duration) {}); n != 1 {
		t.Fatalf("second 10ms frame ran %d updates, want 1", n)
	}

	// A 50ms frame owes two updates with 10ms of lag left over.
	if n := l.Advance(50*time.Millisecond, func(d time.Duration) {
		if d != dt {
			t.Fatalf("update dt = %v, want %v", d, dt)
		}
	}); n != 2 {
		t.Fatalf("50ms frame ran %d updates, want 2", n)
	}
	if l.tLag != 10*time.Millisecond {
		t.Fatalf("lag = %v, want 10ms", l.tLag)
	}
}

func TestAdvanceCapsAndDropsExcessLag(t *testing.T) {
	dt := 20 * time.Millisecond
	l := New(dt)

	n := l.Advance(500*time.Millisecond, func(time.Duration) {})
	if n != MaxUpdatesPerStep {
		t.Fatalf("huge frame ran %d updates, cap is %d", n, MaxUpdatesPerStep)
	}
	if l.tLag != 0 {
		t.Fatalf("excess lag should be dropped, got %v", l.tLag)
	}
}

func TestLagDoesNotGoNegative(t *testing.T) {
	dt := 20 * time.Millisecond
	l := New(dt)
	clock := &fakeClock{work: time.Millisecond}
	l.Step(clock, func(time.Duration) {}, func() {})
	if l.tLag < 0 {
		t.Fatalf("lag went negative: %v", l.tLag)
	}
}
