package core

import (
	"math"
	"time"
)

// FixedStep paces simulation steps at a speed given in steps per second.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given speed.
// The first check after construction always steps.
func NewFixedStep(speed float64) *FixedStep {
	fs := &FixedStep{}
	fs.SetSpeed(speed)
	fs.accumulator = fs.step
	return fs
}

// SetSpeed changes the step rate. Non-positive or non-finite speeds fall back
// to one step per second.
func (f *FixedStep) SetSpeed(speed float64) {
	if speed <= 0 || math.IsNaN(speed) || math.IsInf(speed, 0) {
		speed = 1
	}
	f.step = time.Duration(float64(time.Second) / speed)
	if f.step <= 0 {
		f.step = time.Nanosecond
	}
}

// Interval returns the time between steps.
func (f *FixedStep) Interval() time.Duration { return f.step }

// ShouldStep reports whether the simulation should advance by one step based
// on the wall clock.
func (f *FixedStep) ShouldStep() bool {
	now := time.Now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	return f.Advance(delta)
}

// Advance adds delta to the accumulator and reports whether one step is due.
// At most one step is reported per call; any surplus carries over.
func (f *FixedStep) Advance(delta time.Duration) bool {
	if delta > 0 {
		f.accumulator += delta
	}
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}

// Pause drops accumulated time and forgets the last wall-clock sample so that
// resuming does not trigger a burst of catch-up steps.
func (f *FixedStep) Pause() {
	f.accumulator = 0
	f.last = time.Time{}
}
