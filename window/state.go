package window

import "sync"

// pressedState accumulates glfw callback events into a pollable Pressed
// snapshot, the same consolidation gazed-vu's device/input.go does with a
// goroutine and channels; here the callbacks already run on the polling
// goroutine so a mutex is enough.
type pressedState struct {
	mu      sync.Mutex
	mx, my  int
	scroll  int
	focus   bool
	resized bool
	down    map[string]int
}

func newPressedState() *pressedState {
	return &pressedState{focus: true, down: map[string]int{}}
}

func (s *pressedState) recordPress(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.down[name]; !ok {
		s.down[name] = 0
	}
}

func (s *pressedState) recordRelease(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if v, ok := s.down[name]; ok && v >= 0 {
		s.down[name] = v + keyReleased
	}
}

func (s *pressedState) setMouse(x, y int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mx, s.my = x, y
}

func (s *pressedState) addScroll(delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scroll += delta
}

func (s *pressedState) setFocus(focus bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.focus = focus
}

func (s *pressedState) markResized() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resized = true
}

// snapshot advances held-key durations, clones the current state into a
// Pressed the caller owns, drops released keys, and clears the one-shot
// resized/scroll fields, mirroring gazed-vu's updateDurations+clone pair.
func (s *pressedState) snapshot() *Pressed {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k, v := range s.down {
		if v >= 0 {
			s.down[k] = v + 1
		}
	}
	out := &Pressed{
		Mx:      s.mx,
		My:      s.my,
		Scroll:  s.scroll,
		Focus:   s.focus,
		Resized: s.resized,
		Down:    make(map[string]int, len(s.down)),
	}
	for k, v := range s.down {
		out.Down[k] = v
		if v < 0 {
			delete(s.down, k)
		}
	}
	s.resized = false
	s.scroll = 0
	return out
}
