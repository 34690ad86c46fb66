package save

import (
	"errors"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/lixenwraith/returnspell/core"
	"github.com/lixenwraith/returnspell/engine"
	"github.com/lixenwraith/returnspell/event"
	"github.com/lixenwraith/returnspell/i18n"
	"github.com/lixenwraith/returnspell/parameter"
)

// Texter resolves user-facing message keys
type Texter interface {
	Text(key string, args ...any) string
}

// Handler services save and load requests on the game loop
type Handler struct {
	manager *Manager
	text    Texter
	logger  *zap.Logger

	statSaves *atomic.Int64
	statLoads *atomic.Int64
}

// NewHandler creates a save handler bound to the game's status registry
func NewHandler(g *engine.Game, manager *Manager, text Texter, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		manager:   manager,
		text:      text,
		logger:    logger.Named("save"),
		statSaves: g.Status.Ints.Get("save.saves"),
		statLoads: g.Status.Ints.Get("save.loads"),
	}
}

func (h *Handler) EventTypes() []event.EventType {
	return []event.EventType{event.EventSaveRequest, event.EventLoadRequest}
}

func (h *Handler) HandleEvent(g *engine.Game, ev event.GameEvent) {
	slot := 1
	if p, ok := ev.Payload.(*event.SlotPayload); ok && p.Slot > 0 {
		slot = p.Slot
	}

	switch ev.Type {
	case event.EventSaveRequest:
		h.save(g, slot)
	case event.EventLoadRequest:
		h.load(g, slot)
	}
}

func (h *Handler) save(g *engine.Game, slot int) {
	g.System.SaveCount++
	data := Capture(g, g.Clock.RealTime())
	if err := h.manager.Save(slot, data); err != nil {
		g.System.SaveCount--
		h.logger.Error("save failed", zap.Int("slot", slot), zap.Error(err))
		h.fail(g, i18n.KeySaveFailed)
		return
	}
	h.statSaves.Add(1)
	h.logger.Info("game saved", zap.Int("slot", slot), zap.String("path", h.manager.FilePath(slot)))
	h.cue(g, core.CueSave)
	g.ShowMessage(h.text.Text(i18n.KeyGameSaved))
}

func (h *Handler) load(g *engine.Game, slot int) {
	data, err := h.manager.Load(slot)
	if err == nil {
		err = Apply(g, data)
	}
	if err != nil {
		key := i18n.KeySaveFailed
		if errors.Is(err, ErrNoSave) {
			key = i18n.KeyNoSave
		}
		h.logger.Warn("load failed", zap.Int("slot", slot), zap.Error(err))
		h.fail(g, key)
		return
	}
	h.statLoads.Add(1)
	h.logger.Info("game loaded", zap.Int("slot", slot), zap.Int("map_id", data.MapID))
	h.cue(g, core.CueDecision)
	g.ShowMessage(h.text.Text(i18n.KeyGameLoaded))
}

func (h *Handler) fail(g *engine.Game, key string) {
	h.cue(g, core.CueBuzzer)
	g.ShowMessage(h.text.Text(key))
}

func (h *Handler) cue(g *engine.Game, name string) {
	se := core.SoundEffect{
		Name:   name,
		Volume: parameter.ReturnCueVolume,
		Pitch:  parameter.ReturnCuePitch,
		Pan:    parameter.ReturnCuePan,
	}
	if err := g.PlaySe(se); err != nil {
		h.logger.Warn("cue failed", zap.String("cue", name), zap.Error(err))
	}
}
