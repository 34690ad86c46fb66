package event

// Handler receives routed events with the loop context T
type Handler[T any] interface {
	HandleEvent(ctx T, ev GameEvent)
	// EventTypes lists the types the handler subscribes to; read once at Register
	EventTypes() []EventType
}

// Router fans queued events out to subscribed handlers
// Dispatch is single-threaded and handlers of one type run in registration order
type Router[T any] struct {
	handlers map[EventType][]Handler[T]
	queue    *EventQueue
	// Unhandled, when set, sees every event no handler subscribed to
	Unhandled func(ev GameEvent)
}

// NewRouter creates a router draining queue
func NewRouter[T any](queue *EventQueue) *Router[T] {
	return &Router[T]{
		handlers: make(map[EventType][]Handler[T]),
		queue:    queue,
	}
}

// Register subscribes handler to its declared types
func (r *Router[T]) Register(handler Handler[T]) {
	for _, t := range handler.EventTypes() {
		r.handlers[t] = append(r.handlers[t], handler)
	}
}

// DispatchAll drains the queue once and returns how many events it consumed
// Events pushed during dispatch wait for the next call
func (r *Router[T]) DispatchAll(ctx T) int {
	events := r.queue.Consume()
	for _, ev := range events {
		hs := r.handlers[ev.Type]
		if len(hs) == 0 && r.Unhandled != nil {
			r.Unhandled(ev)
			continue
		}
		for _, h := range hs {
			h.HandleEvent(ctx, ev)
		}
	}
	return len(events)
}

// HasHandlers reports whether anything subscribed to t
func (r *Router[T]) HasHandlers(t EventType) bool {
	return len(r.handlers[t]) > 0
}

// HandlerCount returns the number of subscribers to t
func (r *Router[T]) HandlerCount(t EventType) int {
	return len(r.handlers[t])
}
