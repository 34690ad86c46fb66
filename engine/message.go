package engine

// MessageWindow is a FIFO of lines shown one at a time
// When full, the oldest line is dropped
type MessageWindow struct {
	lines    []string
	capacity int
}

// NewMessageWindow creates a window holding up to capacity lines
func NewMessageWindow(capacity int) *MessageWindow {
	if capacity <= 0 {
		capacity = 1
	}
	return &MessageWindow{capacity: capacity}
}

// Add appends a line
func (w *MessageWindow) Add(text string) {
	if len(w.lines) == w.capacity {
		w.lines = w.lines[1:]
	}
	w.lines = append(w.lines, text)
}

// Current returns the line on display
func (w *MessageWindow) Current() (string, bool) {
	if len(w.lines) == 0 {
		return "", false
	}
	return w.lines[0], true
}

// Dismiss removes the line on display
func (w *MessageWindow) Dismiss() {
	if len(w.lines) > 0 {
		w.lines = w.lines[1:]
	}
}

// Len returns the number of queued lines including the current one
func (w *MessageWindow) Len() int {
	return len(w.lines)
}

// Clear drops all lines
func (w *MessageWindow) Clear() {
	w.lines = w.lines[:0]
}
