package service

// Service is a long-lived subsystem owned by the Hub (audio output, scripting)
// The Hub calls Init in dependency order, then Start on each, then Stop in
// reverse on shutdown
type Service interface {
	// Name is the key other services list in Dependencies
	Name() string

	// Dependencies names services that must be initialized first; nil for none
	Dependencies() []string

	// Init receives the service-specific args given to Hub.Register
	Init(args ...any) error

	// Start runs once every service has initialized
	Start() error

	// Stop releases resources; a second call is a no-op
	Stop() error
}
