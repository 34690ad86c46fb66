package event

import "testing"

type recordingHandler struct {
	name  string
	types []EventType
	log   *[]string
}

func (h *recordingHandler) HandleEvent(ctx *int, ev GameEvent) {
	*ctx++
	*h.log = append(*h.log, h.name+":"+GetEventName(ev.Type))
}

func (h *recordingHandler) EventTypes() []EventType {
	return h.types
}

func TestRouterDispatchOrder(t *testing.T) {
	InitRegistry()

	eq := NewEventQueue()
	r := NewRouter[*int](eq)

	var log []string
	r.Register(&recordingHandler{name: "a", types: []EventType{EventSoundRequest, EventMessageRequest}, log: &log})
	r.Register(&recordingHandler{name: "b", types: []EventType{EventSoundRequest}, log: &log})

	eq.Push(GameEvent{Type: EventSoundRequest})
	eq.Push(GameEvent{Type: EventMessageRequest})
	eq.Push(GameEvent{Type: EventQuitRequest})

	calls := 0
	if n := r.DispatchAll(&calls); n != 3 {
		t.Errorf("Expected 3 consumed events, got %d", n)
	}

	want := []string{
		"a:EventSoundRequest",
		"b:EventSoundRequest",
		"a:EventMessageRequest",
	}
	if len(log) != len(want) {
		t.Fatalf("Expected %d handler calls, got %v", len(want), log)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("Call %d: expected %s, got %s", i, want[i], log[i])
		}
	}
	if calls != 3 {
		t.Errorf("Expected context mutated 3 times, got %d", calls)
	}

	if !r.HasHandlers(EventSoundRequest) || r.HandlerCount(EventSoundRequest) != 2 {
		t.Error("Expected two handlers for EventSoundRequest")
	}
	if r.HasHandlers(EventQuitRequest) {
		t.Error("Expected no handlers for EventQuitRequest")
	}
}

func TestRegistryLookup(t *testing.T) {
	InitRegistry()

	et, ok := GetEventType("EventTransferReserved")
	if !ok || et != EventTransferReserved {
		t.Fatalf("Expected EventTransferReserved, got %v (ok=%v)", et, ok)
	}
	if GetEventName(EventTick) != "Tick" {
		t.Error("Expected zero event to be named Tick")
	}

	p, ok := NewPayloadStruct(EventTransferReserved).(*TransferPayload)
	if !ok || p == nil {
		t.Errorf("Expected *TransferPayload, got %T", NewPayloadStruct(EventTransferReserved))
	}
	if NewPayloadStruct(EventQuitRequest) != nil {
		t.Error("Expected nil payload for EventQuitRequest")
	}

	if et, ok := GetEventType("BattleToggle"); !ok || et != EventBattleToggle {
		t.Errorf("Expected short name lookup to find EventBattleToggle, got %v", et)
	}
	if got := EventType(999).String(); got != "EventType(999)" {
		t.Errorf("Expected fallback name, got %q", got)
	}
}

func TestRouterUnhandled(t *testing.T) {
	InitRegistry()

	eq := NewEventQueue()
	r := NewRouter[*int](eq)
	var log []string
	r.Register(&recordingHandler{name: "a", types: []EventType{EventSoundRequest}, log: &log})

	var missed []EventType
	r.Unhandled = func(ev GameEvent) { missed = append(missed, ev.Type) }

	eq.Push(GameEvent{Type: EventSoundRequest})
	eq.Push(GameEvent{Type: EventQuitRequest})

	calls := 0
	r.DispatchAll(&calls)
	if len(log) != 1 || len(missed) != 1 || missed[0] != EventQuitRequest {
		t.Errorf("Expected one handled and one unhandled event, got %v / %v", log, missed)
	}
}

func TestDecodePayload(t *testing.T) {
	InitRegistry()

	p, err := DecodePayload(EventTransferReserved, map[string]any{
		"map_id": int64(2), "x": int64(4), "y": int64(6), "fade_type": int64(1),
	})
	if err != nil {
		t.Fatalf("DecodePayload: %v", err)
	}
	tp := p.(*TransferPayload)
	if tp.MapID != 2 || tp.X != 4 || tp.Y != 6 || tp.FadeType != 1 {
		t.Errorf("Unexpected payload %+v", tp)
	}

	p, err = DecodePayload(EventPluginCommand, map[string]any{
		"plugin": "SimpleReturnSpell", "command": "setReturnPoint",
		"args": map[string]any{"mapId": int64(3)},
	})
	if err != nil {
		t.Fatalf("DecodePayload: %v", err)
	}
	pc := p.(*PluginCommandPayload)
	if pc.Command != "setReturnPoint" || pc.Args["mapId"] != int64(3) {
		t.Errorf("Unexpected payload %+v", pc)
	}

	if _, err := DecodePayload(EventQuitRequest, map[string]any{"x": int64(1)}); err == nil {
		t.Error("Expected error for fields on a payload-less event")
	}
	if _, err := DecodePayload(EventSaveRequest, map[string]any{"bogus": int64(1)}); err == nil {
		t.Error("Expected error for unknown field")
	}
	if p, err := DecodePayload(EventBattleToggle, nil); err != nil || p != nil {
		t.Errorf("Expected nil payload, got %v, %v", p, err)
	}
}
