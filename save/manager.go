// Package save persists game sessions as TOML slot files
package save

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/returnspell/core"
	"github.com/lixenwraith/returnspell/engine"
)

// FormatVersion is written into every save file
const FormatVersion = 1

// Sentinel errors
var (
	ErrNoSave          = errors.New("save slot is empty")
	ErrVersionMismatch = errors.New("unsupported save version")
)

// Data is one save slot
type Data struct {
	Version   int                `toml:"version"`
	SavedAt   time.Time          `toml:"saved_at"`
	MapID     int                `toml:"map_id"`
	PlayerX   int                `toml:"player_x"`
	PlayerY   int                `toml:"player_y"`
	Direction core.Direction     `toml:"direction"`
	System    engine.SystemState `toml:"system"`
}

// Manager handles save/load for numbered slots
type Manager struct {
	basePath string
}

// NewManager creates a manager with the given base directory
func NewManager(basePath string) *Manager {
	return &Manager{basePath: basePath}
}

// FilePath returns the path for a slot file
func (m *Manager) FilePath(slot int) string {
	return filepath.Join(m.basePath, fmt.Sprintf("slot%d.toml", slot))
}

// Exists checks if a slot file exists
func (m *Manager) Exists(slot int) bool {
	_, err := os.Stat(m.FilePath(slot))
	return err == nil
}

// Save writes a slot to disk through a temp file and rename
func (m *Manager) Save(slot int, data Data) error {
	if err := os.MkdirAll(m.basePath, 0755); err != nil {
		return err
	}
	data.Version = FormatVersion

	tmp, err := os.CreateTemp(m.basePath, "slot-*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if err := toml.NewEncoder(tmp).Encode(data); err != nil {
		tmp.Close()
		return fmt.Errorf("encode slot %d: %w", slot, err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), m.FilePath(slot))
}

// Load reads a slot from disk
func (m *Manager) Load(slot int) (Data, error) {
	var data Data

	if _, err := toml.DecodeFile(m.FilePath(slot), &data); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return data, fmt.Errorf("slot %d: %w", slot, ErrNoSave)
		}
		return data, fmt.Errorf("decode slot %d: %w", slot, err)
	}
	if data.Version != FormatVersion {
		return data, fmt.Errorf("slot %d version %d: %w", slot, data.Version, ErrVersionMismatch)
	}
	return data, nil
}

// Capture snapshots the game into save data
func Capture(g *engine.Game, now time.Time) Data {
	sys := engine.SystemState{}
	sys.Replace(*g.System)
	return Data{
		Version:   FormatVersion,
		SavedAt:   now,
		MapID:     g.MapID(),
		PlayerX:   g.Player.X,
		PlayerY:   g.Player.Y,
		Direction: g.Player.Direction,
		System:    sys,
	}
}

// Apply restores save data into the game
func Apply(g *engine.Game, data Data) error {
	return g.Restore(data.MapID, data.PlayerX, data.PlayerY, data.Direction, data.System)
}
