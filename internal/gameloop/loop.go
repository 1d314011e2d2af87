// Package gameloop runs a fixed-timestep simulation loop: physics updates at
// a constant dt regardless of how fast frames render, with a cap on catch-up
// updates so a slow machine does not spiral. Pattern after
// https://gameprogrammingpatterns.com/game-loop.html
package gameloop

import "time"

// MaxUpdatesPerStep bounds the catch-up updates in one Step. Clamping avoids
// the spiral of death on slow machines: otherwise the next loop iteration
// would be late again, forever.
const MaxUpdatesPerStep = 4

// Clock abstracts time for the loop so tests can drive it deterministically.
type Clock interface {
	// Now returns the elapsed time on a monotonic clock.
	Now() time.Duration
	// Sleep blocks for d.
	Sleep(d time.Duration)
}

// RealClock is the wall clock.
type RealClock struct {
	start time.Time
}

// NewRealClock returns a clock measuring from now.
func NewRealClock() *RealClock {
	return &RealClock{start: time.Now()}
}

func (c *RealClock) Now() time.Duration     { return time.Since(c.start) }
func (c *RealClock) Sleep(d time.Duration)  { time.Sleep(d) }

// Loop is a fixed-timestep game loop. Each Step runs however many fixed-size
// updates are owed (capped), renders once, then sleeps off any surplus to
// hold a consistent update rate.
type Loop struct {
	dtUpdate time.Duration
	tLag     time.Duration
}

// New returns a loop with the given fixed update interval.
func New(dtUpdate time.Duration) *Loop {
	return &Loop{dtUpdate: dtUpdate}
}

// DtUpdate returns the fixed update interval.
func (l *Loop) DtUpdate() time.Duration { return l.dtUpdate }

// Step runs one render frame's worth of the loop: owed updates (at least one,
// at most MaxUpdatesPerStep), one render, then a sleep on fast machines.
func (l *Loop) Step(clock Clock, update func(dt time.Duration), render func()) {
	t0 := clock.Now()

	updatesNeeded := int(l.tLag/l.dtUpdate) + 1
	n := updatesNeeded
	if n > MaxUpdatesPerStep {
		n = MaxUpdatesPerStep
	}
	for i := 0; i < n; i++ {
		update(l.dtUpdate)
	}

	render()

	t1 := clock.Now()
	l.tLag += t1 - t0

	if l.tLag < l.dtUpdate {
		clock.Sleep(l.dtUpdate - l.tLag)
	}

	// Pretend all owed updates ran, clamped ones included, so lag does not
	// accumulate without bound.
	l.tLag -= l.dtUpdate * time.Duration(updatesNeeded)
	if l.tLag < 0 {
		l.tLag = 0
	}
}

// Advance is the loop body for an externally paced render loop (one that
// already sleeps, like a vsync'd frame loop): it accrues frameTime into the
// lag, runs the owed fixed-size updates up to MaxUpdatesPerStep, and returns
// how many ran. Excess lag beyond the cap is dropped.
func (l *Loop) Advance(frameTime time.Duration, update func(dt time.Duration)) int {
	l.tLag += frameTime

	n := 0
	for l.tLag >= l.dtUpdate && n < MaxUpdatesPerStep {
		update(l.dtUpdate)
		l.tLag -= l.dtUpdate
		n++
	}
	if n == MaxUpdatesPerStep && l.tLag >= l.dtUpdate {
		l.tLag = 0
	}
	return n
}
