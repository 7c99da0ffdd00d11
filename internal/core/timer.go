package core

import "time"

// FixedStep advances a frame clock by a constant duration per tick. The
// game loop runs at a steady ticks-per-second rate, so simulated time is
// derived from the tick count rather than the wall clock.
type FixedStep struct {
	step  time.Duration
	now   time.Duration
	ticks uint64
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{}
	fs.SetTPS(tps)
	return fs
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
}

// Step returns the duration of one tick.
func (f *FixedStep) Step() time.Duration { return f.step }

// Tick advances the clock by one step and returns the new time.
func (f *FixedStep) Tick() time.Duration {
	f.now += f.step
	f.ticks++
	return f.now
}

// Now returns the simulated time since the clock started.
func (f *FixedStep) Now() time.Duration { return f.now }

// Ticks returns the number of ticks taken so far.
func (f *FixedStep) Ticks() uint64 { return f.ticks }
