package parameter

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond
)

// Event Queue Limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = 255

	// InputChannelSize buffers terminal events between the poller and the game loop
	InputChannelSize = 64
)

// Host Start Position
// The return point is only a destination; the game always begins here
const (
	StartMap = 1
	StartX   = 10
	StartY   = 5
)

// Transfer Pipeline
const (
	// TransferFadeFrames is the host fade duration used by cross-map transfers
	TransferFadeFrames = 24

	// MessageWindowCapacity bounds queued message lines
	MessageWindowCapacity = 32
)
