package systems

import (
	"testing"

	"github.com/automoto/cyber-defender/components"
	cfg "github.com/automoto/cyber-defender/config"
)

func frame(actions ...cfg.ActionID) [cfg.ActionCount]bool {
	var f [cfg.ActionCount]bool
	for _, a := range actions {
		f[a] = true
	}
	return f
}

// TestLatchEdges verifies the press/hold/release lifecycle of one
// action across three latched frames.
func TestLatchEdges(t *testing.T) {
	input := &components.InputData{}

	LatchFrame(input, frame(cfg.ActionFire))
	st := GetAction(input, cfg.ActionFire)
	if !st.Pressed || !st.JustPressed || st.JustReleased {
		t.Fatalf("after press: %+v", st)
	}

	LatchFrame(input, frame(cfg.ActionFire))
	st = GetAction(input, cfg.ActionFire)
	if !st.Pressed || st.JustPressed || st.JustReleased {
		t.Fatalf("while held: %+v", st)
	}

	LatchFrame(input, frame())
	st = GetAction(input, cfg.ActionFire)
	if st.Pressed || st.JustPressed || !st.JustReleased {
		t.Fatalf("after release: %+v", st)
	}

	LatchFrame(input, frame())
	st = GetAction(input, cfg.ActionFire)
	if st.Pressed || st.JustPressed || st.JustReleased {
		t.Fatalf("at rest: %+v", st)
	}
}

// TestLatchIndependentActions verifies one action's edges do not bleed
// into another's.
func TestLatchIndependentActions(t *testing.T) {
	input := &components.InputData{}

	LatchFrame(input, frame(cfg.ActionMoveLeft))
	LatchFrame(input, frame(cfg.ActionMoveLeft, cfg.ActionFire))

	left := GetAction(input, cfg.ActionMoveLeft)
	fire := GetAction(input, cfg.ActionFire)

	if left.JustPressed {
		t.Error("held action reported JustPressed")
	}
	if !left.Pressed {
		t.Error("held action lost Pressed")
	}
	if !fire.JustPressed {
		t.Error("new action missed JustPressed")
	}
}

// TestCarriedHoldDoesNotEdge verifies a key already held when the
// first polled frame arrives never registers as JustPressed: the key
// must be released and pressed again.
func TestCarriedHoldDoesNotEdge(t *testing.T) {
	input := &components.InputData{}

	latchPolled(input, frame(cfg.ActionFire))
	if st := GetAction(input, cfg.ActionFire); st.JustPressed {
		t.Fatal("carried-over hold edged on the first frame")
	} else if !st.Pressed {
		t.Fatal("carried-over hold lost Pressed")
	}

	latchPolled(input, frame(cfg.ActionFire))
	if GetAction(input, cfg.ActionFire).JustPressed {
		t.Fatal("carried-over hold edged while still held")
	}

	latchPolled(input, frame())
	latchPolled(input, frame(cfg.ActionFire))
	if !GetAction(input, cfg.ActionFire).JustPressed {
		t.Fatal("fresh press after release did not edge")
	}
}

// TestRepeatRequiresRelease verifies a held key produces exactly one
// JustPressed until released and pressed again.
func TestRepeatRequiresRelease(t *testing.T) {
	input := &components.InputData{}

	edges := 0
	script := [][cfg.ActionCount]bool{
		frame(cfg.ActionFire),
		frame(cfg.ActionFire),
		frame(cfg.ActionFire),
		frame(),
		frame(cfg.ActionFire),
	}
	for _, f := range script {
		LatchFrame(input, f)
		if GetAction(input, cfg.ActionFire).JustPressed {
			edges++
		}
	}
	if edges != 2 {
		t.Fatalf("saw %d rising edges, want 2", edges)
	}
}
