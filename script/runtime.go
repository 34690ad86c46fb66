// Package script exposes the return spell to Lua scripts
package script

import (
	"fmt"
	"math"
	"strings"

	"github.com/Shopify/go-lua"
	"go.uber.org/zap"

	"github.com/lixenwraith/returnspell/core"
	"github.com/lixenwraith/returnspell/event"
)

// Binding is the scripting surface of the return spell
type Binding interface {
	RunReturnSpell() error
	SetReturnPoint(mapID, x, y any)
	GetPoint() core.ReturnPoint
}

// Emitter queues game events; scripts reach the rest of the game through it
type Emitter interface {
	Push(et event.EventType, payload any)
}

// Runtime is one Lua state with the return spell globals installed
// Not safe for concurrent use; run scripts on the game loop
type Runtime struct {
	state  *lua.State
	logger *zap.Logger
}

// NewRuntime creates a Lua state bound to b; a nil emit disables pushEvent
func NewRuntime(b Binding, emit Emitter, logger *zap.Logger) *Runtime {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &Runtime{
		state:  lua.NewState(),
		logger: logger.Named("script"),
	}
	lua.OpenLibraries(r.state)
	r.register(b)
	if emit != nil {
		r.registerEvents(emit)
	}
	return r
}

func (r *Runtime) register(b Binding) {
	r.state.Register("runReturnSpell", func(l *lua.State) int {
		if err := b.RunReturnSpell(); err != nil {
			lua.Errorf(l, "%s", err.Error())
		}
		return 0
	})

	r.state.Register("setReturnPoint", func(l *lua.State) int {
		b.SetReturnPoint(toGo(l, 1), toGo(l, 2), toGo(l, 3))
		return 0
	})

	r.state.Register("getReturnPoint", func(l *lua.State) int {
		p := b.GetPoint()
		l.NewTable()
		l.PushInteger(p.MapID)
		l.SetField(-2, "mapId")
		l.PushInteger(p.X)
		l.SetField(-2, "x")
		l.PushInteger(p.Y)
		l.SetField(-2, "y")
		return 1
	})

	// print goes to the log; stdout belongs to the terminal UI
	r.state.Register("print", func(l *lua.State) int {
		n := l.Top()
		parts := make([]string, 0, n)
		for i := 1; i <= n; i++ {
			s, _ := lua.ToStringMeta(l, i)
			l.Pop(1)
			parts = append(parts, s)
		}
		r.logger.Info(strings.Join(parts, "\t"))
		return 0
	})
}

// registerEvents installs pushEvent(name [, fields]), which queues any
// registered game event; fields use the payload's toml names
func (r *Runtime) registerEvents(emit Emitter) {
	event.InitRegistry()
	r.state.Register("pushEvent", func(l *lua.State) int {
		name := lua.CheckString(l, 1)
		et, ok := event.GetEventType(name)
		if !ok {
			lua.Errorf(l, "%s: %s", event.ErrUnknownEvent.Error(), name)
		}
		var fields map[string]any
		if l.TypeOf(2) == lua.TypeTable {
			fields = toMap(l, 2)
		}
		payload, err := event.DecodePayload(et, fields)
		if err != nil {
			lua.Errorf(l, "%s", err.Error())
		}
		emit.Push(et, payload)
		r.logger.Debug("event pushed", zap.Stringer("type", et))
		return 0
	})
}

// DoString runs a chunk of Lua source
func (r *Runtime) DoString(code string) error {
	if err := lua.DoString(r.state, code); err != nil {
		return fmt.Errorf("lua: %w", err)
	}
	return nil
}

// DoFile runs a Lua file
func (r *Runtime) DoFile(path string) error {
	if err := lua.DoFile(r.state, path); err != nil {
		return fmt.Errorf("lua %s: %w", path, err)
	}
	r.logger.Debug("script executed", zap.String("path", path))
	return nil
}

// toMap copies the string-keyed entries of the table at index
// Integral numbers become int64 so they decode into integer fields
func toMap(l *lua.State, index int) map[string]any {
	index = l.AbsIndex(index)
	out := make(map[string]any)
	l.PushNil()
	for l.Next(index) {
		if l.TypeOf(-2) == lua.TypeString {
			key, _ := l.ToString(-2)
			switch l.TypeOf(-1) {
			case lua.TypeTable:
				out[key] = toMap(l, -1)
			case lua.TypeNumber:
				v, _ := l.ToNumber(-1)
				if v == math.Trunc(v) {
					out[key] = int64(v)
				} else {
					out[key] = v
				}
			default:
				if v := toGo(l, -1); v != nil {
					out[key] = v
				}
			}
		}
		l.Pop(1)
	}
	return out
}

// toGo converts a Lua argument to a loosely typed Go value; none and nil yield nil
func toGo(l *lua.State, index int) any {
	switch l.TypeOf(index) {
	case lua.TypeString:
		v, _ := l.ToString(index)
		return v
	case lua.TypeNumber:
		v, _ := l.ToNumber(index)
		return v
	case lua.TypeBoolean:
		return l.ToBoolean(index)
	default:
		return nil
	}
}
