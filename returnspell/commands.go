package returnspell

import (
	"errors"

	"github.com/lixenwraith/returnspell/command"
	"github.com/lixenwraith/returnspell/config"
	"github.com/lixenwraith/returnspell/i18n"
	"github.com/lixenwraith/returnspell/parameter"
)

// RegisterCommands installs the Return and setReturnPoint plugin commands
func (s *Service) RegisterCommands(r *command.Registry) error {
	return errors.Join(
		r.Register(parameter.PluginName, parameter.CommandReturn, func(map[string]any) error {
			return s.RunReturnSpell()
		}),
		r.Register(parameter.PluginName, parameter.CommandSetReturnPoint, func(map[string]any) error {
			s.RegisterCurrentPosition()
			return nil
		}),
	)
}

// RunReturnSpell is the scripting entry point for Run
// An in-flight rejection is swallowed since scripts cannot act on it
func (s *Service) RunReturnSpell() error {
	err := s.Run()
	if errors.Is(err, ErrReturnInFlight) {
		return nil
	}
	return err
}

// SetReturnPoint is the scripting entry point for SetPoint with raw values
// Map id falls back to 1, coordinates to 0
func (s *Service) SetReturnPoint(mapID, x, y any) {
	s.SetPoint(
		config.CoerceInt(mapID, 1),
		config.CoerceInt(x, 0),
		config.CoerceInt(y, 0),
	)
}

// RegisterCurrentPosition stores the player's current map and tile and confirms it
func (s *Service) RegisterCurrentPosition() {
	x, y := s.host.PlayerPosition()
	s.SetPoint(s.host.MapID(), x, y)
	s.host.ShowMessage(s.text.Text(i18n.KeyReturnRegistered))
}
