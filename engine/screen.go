package engine

// Screen tracks the full-screen fade overlay
// Opacity 0 is fully visible, 255 fully covered by the fade color
type Screen struct {
	opacity  float64
	target   float64
	duration int
	white    bool
}

// NewScreen returns an unfaded screen
func NewScreen() *Screen {
	return &Screen{}
}

// FadeOut covers the screen over duration frames
// A non-positive duration covers it immediately
func (s *Screen) FadeOut(duration int, white bool) {
	s.start(255, duration, white)
}

// FadeIn uncovers the screen over duration frames
func (s *Screen) FadeIn(duration int, white bool) {
	s.start(0, duration, white)
}

func (s *Screen) start(target float64, duration int, white bool) {
	s.white = white
	s.target = target
	if duration <= 0 {
		s.opacity = target
		s.duration = 0
		return
	}
	s.duration = duration
}

// Update advances the fade by one frame
func (s *Screen) Update() {
	if s.duration <= 0 {
		return
	}
	s.opacity += (s.target - s.opacity) / float64(s.duration)
	s.duration--
	if s.duration == 0 {
		s.opacity = s.target
	}
}

// IsFading reports whether a fade is in progress
func (s *Screen) IsFading() bool {
	return s.duration > 0
}

// Opacity returns the overlay coverage in 0..255
func (s *Screen) Opacity() uint8 {
	return uint8(s.opacity + 0.5)
}

// White reports whether the overlay color is white
func (s *Screen) White() bool {
	return s.white
}
