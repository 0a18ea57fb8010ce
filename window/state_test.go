package window

import "testing"

func TestPressedStatePressHoldRelease(t *testing.T) {
	s := newPressedState()

	s.recordPress("A")
	snap := s.snapshot()
	if d, ok := snap.Down["A"]; !ok || d != 1 {
		t.Fatalf("expected A held for 1 tick, got %d (ok=%v)", d, ok)
	}

	snap = s.snapshot()
	if d := snap.Down["A"]; d != 2 {
		t.Fatalf("expected A held for 2 ticks, got %d", d)
	}

	s.recordRelease("A")
	snap = s.snapshot()
	if d, ok := snap.Down["A"]; !ok || d >= 0 {
		t.Fatalf("expected A released with negative duration, got %d (ok=%v)", d, ok)
	}

	snap = s.snapshot()
	if _, ok := snap.Down["A"]; ok {
		t.Fatalf("expected A to be gone after the release was observed, still present: %v", snap.Down)
	}
}

func TestPressedStateMouseScrollFocusResize(t *testing.T) {
	s := newPressedState()
	s.setMouse(12, 34)
	s.addScroll(3)
	s.addScroll(-1)
	s.setFocus(false)
	s.markResized()

	snap := s.snapshot()
	if snap.Mx != 12 || snap.My != 34 {
		t.Fatalf("expected mouse at (12,34), got (%d,%d)", snap.Mx, snap.My)
	}
	if snap.Scroll != 2 {
		t.Fatalf("expected accumulated scroll 2, got %d", snap.Scroll)
	}
	if snap.Focus {
		t.Fatalf("expected focus false")
	}
	if !snap.Resized {
		t.Fatalf("expected resized true on first snapshot after markResized")
	}

	snap = s.snapshot()
	if snap.Scroll != 0 {
		t.Fatalf("expected scroll to reset after snapshot, got %d", snap.Scroll)
	}
	if snap.Resized {
		t.Fatalf("expected resized to reset after snapshot")
	}
}

func TestPressedStateDoubleReleaseIsNoop(t *testing.T) {
	s := newPressedState()
	s.recordPress("Lm")
	s.recordRelease("Lm")
	s.recordRelease("Lm")
	snap := s.snapshot()
	if d := snap.Down["Lm"]; d >= 0 {
		t.Fatalf("expected Lm to stay released-negative, got %d", d)
	}
}
