package event

import (
	"sync/atomic"

	"github.com/lixenwraith/returnspell/parameter"
)

// EventQueue is a fixed-size ring of game events
// Many goroutines may Push (input poller, scripts, game loop); only the game
// loop may Consume. A slot's published flag is set after the event is written,
// so the consumer never reads a half-written slot.
//
// When full, the oldest unread event is overwritten and counted as dropped
type EventQueue struct {
	events    [parameter.EventQueueSize]GameEvent
	published [parameter.EventQueueSize]atomic.Bool
	head      atomic.Uint64 // next slot to read
	tail      atomic.Uint64 // next slot to write
	dropped   atomic.Uint64
}

// NewEventQueue returns an empty queue
func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push claims the next slot and publishes ev into it
func (eq *EventQueue) Push(ev GameEvent) {
	var slot uint64
	for {
		slot = eq.tail.Load()
		if eq.tail.CompareAndSwap(slot, slot+1) {
			break
		}
	}

	idx := slot & parameter.EventBufferMask
	eq.events[idx] = ev
	eq.published[idx].Store(true)

	// Reader fell a full ring behind: skip it past the overwritten slot
	head := eq.head.Load()
	if slot+1-head > parameter.EventQueueSize {
		if eq.head.CompareAndSwap(head, slot+1-parameter.EventQueueSize) {
			eq.dropped.Add(1)
		}
	}
}

// Consume removes and returns every published event in push order
// Stops early at a slot whose writer has not finished
func (eq *EventQueue) Consume() []GameEvent {
	for {
		head := eq.head.Load()
		tail := eq.tail.Load()
		if tail == head {
			return nil
		}

		n := tail - head
		if n > parameter.EventQueueSize {
			n = parameter.EventQueueSize
			head = tail - parameter.EventQueueSize
		}

		out := make([]GameEvent, 0, n)
		for i := uint64(0); i < n; i++ {
			idx := (head + i) & parameter.EventBufferMask
			if !eq.published[idx].Load() {
				break
			}
			out = append(out, eq.events[idx])
			eq.published[idx].Store(false)
		}

		if eq.head.CompareAndSwap(head, head+uint64(len(out))) {
			if len(out) == 0 {
				return nil
			}
			return out
		}
	}
}

// Len returns the approximate number of unread events
func (eq *EventQueue) Len() int {
	head, tail := eq.head.Load(), eq.tail.Load()
	if tail <= head {
		return 0
	}
	return int(min(tail-head, parameter.EventQueueSize))
}

// Dropped returns how many events were overwritten before being read
func (eq *EventQueue) Dropped() uint64 {
	return eq.dropped.Load()
}
