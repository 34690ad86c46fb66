package event

import (
	"bytes"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
)

var (
	// ErrUnknownEvent is returned when a name is not in the registry
	ErrUnknownEvent = errors.New("unknown event")
	// ErrNoPayload is returned when fields are given for a payload-less event
	ErrNoPayload = errors.New("event takes no payload")
)

type registration struct {
	name    string
	payload reflect.Type // nil for payload-less events
}

var (
	registryOnce sync.Once
	byName       = make(map[string]EventType)
	byType       = make(map[EventType]registration)
)

// RegisterType binds name to et; sample is a pointer to the payload struct or nil
func RegisterType(name string, et EventType, sample any) {
	reg := registration{name: name}
	if sample != nil {
		t := reflect.TypeOf(sample)
		if t.Kind() == reflect.Pointer {
			t = t.Elem()
		}
		reg.payload = t
	}
	byName[name] = et
	byType[et] = reg
}

// GetEventType looks an event up by name; the "Event" prefix is optional
func GetEventType(name string) (EventType, bool) {
	if strings.EqualFold(name, "Tick") {
		return EventTick, true
	}
	if et, ok := byName[name]; ok {
		return et, true
	}
	et, ok := byName["Event"+name]
	return et, ok
}

// GetEventName returns the registered name of et, empty if unregistered
func GetEventName(et EventType) string {
	if et == EventTick {
		return "Tick"
	}
	return byType[et].name
}

// String implements fmt.Stringer for log fields
func (et EventType) String() string {
	if name := GetEventName(et); name != "" {
		return name
	}
	return fmt.Sprintf("EventType(%d)", int(et))
}

// NewPayloadStruct returns a pointer to a zero payload for et, nil if it has none
func NewPayloadStruct(et EventType) any {
	t := byType[et].payload
	if t == nil {
		return nil
	}
	return reflect.New(t).Interface()
}

// DecodePayload builds the payload for et from loosely typed fields keyed by
// the payload's toml names; unknown keys are rejected
func DecodePayload(et EventType, fields map[string]any) (any, error) {
	payload := NewPayloadStruct(et)
	if payload == nil {
		if len(fields) > 0 {
			return nil, fmt.Errorf("%s: %w", et, ErrNoPayload)
		}
		return nil, nil
	}
	if len(fields) == 0 {
		return payload, nil
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(fields); err != nil {
		return nil, fmt.Errorf("%s payload: %w", et, err)
	}
	md, err := toml.Decode(buf.String(), payload)
	if err != nil {
		return nil, fmt.Errorf("%s payload: %w", et, err)
	}
	if extra := md.Undecoded(); len(extra) > 0 {
		return nil, fmt.Errorf("%s payload: unknown field %q", et, extra[0].String())
	}
	return payload, nil
}

// InitRegistry registers every game event; repeated calls are no-ops
func InitRegistry() {
	registryOnce.Do(func() {
		for _, r := range []struct {
			name   string
			et     EventType
			sample any
		}{
			{"EventPluginCommand", EventPluginCommand, &PluginCommandPayload{}},
			{"EventSoundRequest", EventSoundRequest, &SoundRequestPayload{}},
			{"EventMessageRequest", EventMessageRequest, &MessageRequestPayload{}},
			{"EventMessageDismiss", EventMessageDismiss, nil},
			{"EventPlayerMoveRequest", EventPlayerMoveRequest, &PlayerMovePayload{}},
			{"EventPlayerLocated", EventPlayerLocated, &PlayerLocatedPayload{}},
			{"EventTransferReserved", EventTransferReserved, &TransferPayload{}},
			{"EventTransferComplete", EventTransferComplete, &TransferPayload{}},
			{"EventTransferFailed", EventTransferFailed, &TransferPayload{}},
			{"EventFadeStart", EventFadeStart, &FadePayload{}},
			{"EventBattleToggle", EventBattleToggle, nil},
			{"EventSaveRequest", EventSaveRequest, &SlotPayload{}},
			{"EventLoadRequest", EventLoadRequest, &SlotPayload{}},
			{"EventQuitRequest", EventQuitRequest, nil},
		} {
			RegisterType(r.name, r.et, r.sample)
		}
	})
}
