package script

import (
	"os"

	"go.uber.org/zap"
)

// ScriptService owns the Lua runtime and the optional startup script
type ScriptService struct {
	binding Binding
	emit    Emitter
	logger  *zap.Logger
	runtime *Runtime
	path    string
}

// NewService creates a script service over b; emit may be nil
func NewService(b Binding, emit Emitter, logger *zap.Logger) *ScriptService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScriptService{binding: b, emit: emit, logger: logger}
}

// Name implements Service
func (s *ScriptService) Name() string {
	return "script"
}

// Dependencies implements Service
func (s *ScriptService) Dependencies() []string {
	return []string{"audio"}
}

// Init implements Service
// args[0]: string - startup script path, empty for none
func (s *ScriptService) Init(args ...any) error {
	if len(args) > 0 {
		if path, ok := args[0].(string); ok {
			s.path = path
		}
	}
	return nil
}

// Start implements Service
// The startup script is verified here and executed later by RunStartup
func (s *ScriptService) Start() error {
	if s.path != "" {
		if _, err := os.Stat(s.path); err != nil {
			return err
		}
	}
	s.runtime = NewRuntime(s.binding, s.emit, s.logger)
	return nil
}

// Stop implements Service
func (s *ScriptService) Stop() error {
	s.runtime = nil
	return nil
}

// Runtime returns the live Lua runtime, nil before Start
func (s *ScriptService) Runtime() *Runtime {
	return s.runtime
}

// RunStartup executes the startup script; call on the game loop
func (s *ScriptService) RunStartup() error {
	if s.path == "" || s.runtime == nil {
		return nil
	}
	return s.runtime.DoFile(s.path)
}
