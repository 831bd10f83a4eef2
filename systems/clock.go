package systems

import (
	"time"

	cfg "github.com/automoto/cyber-defender/config"
)

// Clock bridges variable real-frame timing to the fixed logical tick.
// Each animation frame feeds its wall-clock delta into an accumulator;
// the simulation runs one tick per full TickMS in the accumulator, up
// to MaxStepsPerFrame. Frame deltas are clamped to MaxFrameMS so a
// suspended window cannot trigger a catch-up spiral on resume.
type Clock struct {
	last    time.Time
	acc     float64
	started bool
}

func NewClock() *Clock {
	return &Clock{}
}

// Steps returns how many fixed ticks the frame at now should run.
func (c *Clock) Steps(now time.Time) int {
	if !c.started {
		c.started = true
		c.last = now
		return 0
	}

	frameMS := float64(now.Sub(c.last)) / float64(time.Millisecond)
	c.last = now
	if frameMS < 0 {
		frameMS = 0
	}
	if frameMS > cfg.Sim.MaxFrameMS {
		frameMS = cfg.Sim.MaxFrameMS
	}
	c.acc += frameMS

	steps := 0
	for c.acc >= cfg.Sim.TickMS && steps < cfg.Sim.MaxStepsPerFrame {
		c.acc -= cfg.Sim.TickMS
		steps++
	}

	// Whatever the step cap could not absorb is dropped, not banked;
	// banking it would just defer the spiral by one frame.
	if c.acc >= cfg.Sim.TickMS {
		c.acc = 0
	}

	return steps
}
