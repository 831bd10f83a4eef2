package systems

import (
	"testing"
	"time"

	cfg "github.com/automoto/cyber-defender/config"
)

func advance(t0 time.Time, ms float64) time.Time {
	return t0.Add(time.Duration(ms * float64(time.Millisecond)))
}

// TestClockFirstFrameRunsNothing verifies the first observed frame
// only establishes the baseline.
func TestClockFirstFrameRunsNothing(t *testing.T) {
	c := NewClock()
	if steps := c.Steps(time.Now()); steps != 0 {
		t.Fatalf("first frame ran %d steps, want 0", steps)
	}
}

// TestClockAccumulates verifies sub-tick frames bank time until a full
// tick is available.
func TestClockAccumulates(t *testing.T) {
	c := NewClock()
	t0 := time.Now()
	c.Steps(t0)

	half := cfg.Sim.TickMS / 2
	t1 := advance(t0, half)
	if steps := c.Steps(t1); steps != 0 {
		t.Fatalf("half tick ran %d steps, want 0", steps)
	}

	t2 := advance(t1, half+1)
	if steps := c.Steps(t2); steps != 1 {
		t.Fatalf("accumulated tick ran %d steps, want 1", steps)
	}
}

// TestClockStepCap verifies a long stall cannot trigger more than
// MaxStepsPerFrame catch-up ticks, and that the excess is dropped
// rather than banked.
func TestClockStepCap(t *testing.T) {
	c := NewClock()
	t0 := time.Now()
	c.Steps(t0)

	t1 := advance(t0, cfg.Sim.MaxFrameMS)
	if steps := c.Steps(t1); steps != cfg.Sim.MaxStepsPerFrame {
		t.Fatalf("stalled frame ran %d steps, want %d", steps, cfg.Sim.MaxStepsPerFrame)
	}

	// The dropped remainder must not leak into the next frame.
	t2 := advance(t1, 1)
	if steps := c.Steps(t2); steps != 0 {
		t.Fatalf("frame after stall ran %d steps, want 0", steps)
	}
}

// TestClockClampsFrameDelta verifies a delta far beyond MaxFrameMS is
// treated as MaxFrameMS.
func TestClockClampsFrameDelta(t *testing.T) {
	c := NewClock()
	t0 := time.Now()
	c.Steps(t0)

	t1 := advance(t0, 60_000)
	steps := c.Steps(t1)
	if steps != cfg.Sim.MaxStepsPerFrame {
		t.Fatalf("minute-long stall ran %d steps, want %d", steps, cfg.Sim.MaxStepsPerFrame)
	}
}

// TestClockBackwardTime verifies a non-monotonic clock sample is
// treated as a zero-length frame.
func TestClockBackwardTime(t *testing.T) {
	c := NewClock()
	t0 := time.Now()
	c.Steps(t0)

	if steps := c.Steps(advance(t0, -100)); steps != 0 {
		t.Fatalf("backward frame ran %d steps, want 0", steps)
	}
}
