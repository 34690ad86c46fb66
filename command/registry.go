// Package command routes host plugin commands to registered functions
package command

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/lixenwraith/returnspell/event"
)

// Sentinel errors
var (
	ErrUnknownCommand   = errors.New("unknown plugin command")
	ErrDuplicateCommand = errors.New("plugin command already registered")
)

// Func executes one plugin command; args are the raw, uncoerced host values
type Func func(args map[string]any) error

type key struct {
	plugin string
	name   string
}

// Registry maps (plugin, command) pairs to functions
type Registry struct {
	mu       sync.RWMutex
	commands map[key]Func
	logger   *zap.Logger
}

// NewRegistry creates an empty command registry
func NewRegistry(logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{
		commands: make(map[key]Func),
		logger:   logger.Named("command"),
	}
}

// Register adds a command under plugin
func (r *Registry) Register(plugin, name string, fn Func) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	k := key{plugin, name}
	if _, exists := r.commands[k]; exists {
		return fmt.Errorf("%s/%s: %w", plugin, name, ErrDuplicateCommand)
	}
	r.commands[k] = fn
	return nil
}

// Lookup retrieves a command by plugin and name
func (r *Registry) Lookup(plugin, name string) (Func, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.commands[key{plugin, name}]
	return fn, ok
}

// Names returns "plugin/command" identifiers, sorted
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.commands))
	for k := range r.commands {
		names = append(names, k.plugin+"/"+k.name)
	}
	sort.Strings(names)
	return names
}

// Dispatch runs a registered command
func (r *Registry) Dispatch(plugin, name string, args map[string]any) error {
	fn, ok := r.Lookup(plugin, name)
	if !ok {
		return fmt.Errorf("%s/%s: %w", plugin, name, ErrUnknownCommand)
	}
	if args == nil {
		args = map[string]any{}
	}
	return fn(args)
}

// Handler routes EventPluginCommand events into a registry
type Handler[T any] struct {
	registry *Registry
}

// NewHandler creates an event handler over r for any router context
func NewHandler[T any](r *Registry) *Handler[T] {
	return &Handler[T]{registry: r}
}

func (h *Handler[T]) EventTypes() []event.EventType {
	return []event.EventType{event.EventPluginCommand}
}

func (h *Handler[T]) HandleEvent(_ T, ev event.GameEvent) {
	p, ok := ev.Payload.(*event.PluginCommandPayload)
	if !ok {
		return
	}
	if err := h.registry.Dispatch(p.Plugin, p.Command, p.Args); err != nil {
		h.registry.logger.Warn("plugin command failed",
			zap.String("plugin", p.Plugin),
			zap.String("command", p.Command),
			zap.Error(err),
		)
	}
}
