package core

import (
	"math"
	"testing"
	"time"
)

func TestFixedStepFirstCheckSteps(t *testing.T) {
	fs := NewFixedStep(4)
	if !fs.Advance(0) {
		t.Fatal("first check should step immediately")
	}
	if fs.Advance(0) {
		t.Fatal("no time elapsed, should not step again")
	}
}

func TestFixedStepAtMostOncePerInterval(t *testing.T) {
	fs := NewFixedStep(4)
	fs.Advance(0)

	if fs.Interval() != 250*time.Millisecond {
		t.Fatalf("interval = %v, want 250ms", fs.Interval())
	}
	if fs.Advance(100 * time.Millisecond) {
		t.Fatal("stepped before the interval elapsed")
	}
	if !fs.Advance(150 * time.Millisecond) {
		t.Fatal("expected a step once 250ms accumulated")
	}

	// A long frame yields one step per call while the backlog drains.
	steps := 0
	if fs.Advance(time.Second) {
		steps++
	}
	for fs.Advance(0) {
		steps++
	}
	if steps != 4 {
		t.Fatalf("expected 4 steps for 1s at 4/s, got %d", steps)
	}
}

func TestFixedStepFallbackSpeed(t *testing.T) {
	for _, speed := range []float64{0, -2, math.NaN(), math.Inf(1)} {
		fs := NewFixedStep(speed)
		if fs.Interval() != time.Second {
			t.Fatalf("speed %v: interval = %v, want 1s", speed, fs.Interval())
		}
	}
}

func TestFixedStepPauseDropsBacklog(t *testing.T) {
	fs := NewFixedStep(10)
	fs.Advance(0)
	fs.Advance(time.Second)
	fs.Pause()
	if fs.Advance(0) {
		t.Fatal("pause should discard the accumulated backlog")
	}
}
