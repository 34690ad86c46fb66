package service

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

var (
	ErrDuplicateService = errors.New("service already registered")
	ErrUnknownService   = errors.New("unknown service")
	ErrDependencyCycle  = errors.New("service dependency cycle")
)

// Hub owns a set of services and drives their lifecycle in dependency order
// Stop runs in reverse start order
type Hub struct {
	mu       sync.Mutex
	services map[string]Service
	args     map[string][]any
	order    []string
	started  []string
	logger   *zap.Logger
}

// NewHub creates an empty hub
func NewHub(logger *zap.Logger) *Hub {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Hub{
		services: make(map[string]Service),
		args:     make(map[string][]any),
		logger:   logger.Named("service"),
	}
}

// Register adds a service with the args passed to its Init
func (h *Hub) Register(s Service, args ...any) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	name := s.Name()
	if _, ok := h.services[name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateService, name)
	}
	h.services[name] = s
	h.args[name] = args
	h.order = append(h.order, name)
	return nil
}

// Get returns a registered service by name
func (h *Hub) Get(name string) (Service, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	s, ok := h.services[name]
	return s, ok
}

// resolveOrder returns registration order adjusted so dependencies come first
func (h *Hub) resolveOrder() ([]string, error) {
	const (
		unvisited = iota
		visiting
		done
	)
	state := make(map[string]int, len(h.services))
	out := make([]string, 0, len(h.services))

	var visit func(name string) error
	visit = func(name string) error {
		switch state[name] {
		case visiting:
			return fmt.Errorf("%w at %s", ErrDependencyCycle, name)
		case done:
			return nil
		}
		s, ok := h.services[name]
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownService, name)
		}
		state[name] = visiting
		for _, dep := range s.Dependencies() {
			if err := visit(dep); err != nil {
				return err
			}
		}
		state[name] = done
		out = append(out, name)
		return nil
	}

	for _, name := range h.order {
		if err := visit(name); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Start initializes then starts every service in dependency order
// On failure, services already started are stopped
func (h *Hub) Start() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	order, err := h.resolveOrder()
	if err != nil {
		return err
	}

	for _, name := range order {
		if err := h.services[name].Init(h.args[name]...); err != nil {
			return fmt.Errorf("init %s: %w", name, err)
		}
		h.logger.Debug("service initialized", zap.String("service", name))
	}

	for _, name := range order {
		if err := h.services[name].Start(); err != nil {
			h.stopLocked()
			return fmt.Errorf("start %s: %w", name, err)
		}
		h.started = append(h.started, name)
		h.logger.Debug("service started", zap.String("service", name))
	}
	return nil
}

// Stop halts started services in reverse order and returns the joined errors
func (h *Hub) Stop() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.stopLocked()
}

func (h *Hub) stopLocked() error {
	var errs []error
	for i := len(h.started) - 1; i >= 0; i-- {
		name := h.started[i]
		if err := h.services[name].Stop(); err != nil {
			h.logger.Warn("service stop failed", zap.String("service", name), zap.Error(err))
			errs = append(errs, fmt.Errorf("stop %s: %w", name, err))
		}
	}
	h.started = h.started[:0]
	return errors.Join(errs...)
}
