package engine

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/returnspell/event"
)

// coreHandler services engine-owned events: movement, scene, messages, cues, quit
type coreHandler struct{}

func (g *Game) registerCoreHandlers() {
	g.router.Register(coreHandler{})
}

func (coreHandler) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventPlayerMoveRequest,
		event.EventBattleToggle,
		event.EventMessageRequest,
		event.EventMessageDismiss,
		event.EventSoundRequest,
		event.EventQuitRequest,
	}
}

func (coreHandler) HandleEvent(g *Game, ev event.GameEvent) {
	switch ev.Type {
	case event.EventPlayerMoveRequest:
		p, ok := ev.Payload.(*event.PlayerMovePayload)
		if !ok || g.Player.IsTransferring() || g.Messages.Len() > 0 {
			return
		}
		g.Player.Move(p.Direction, g.Map)

	case event.EventBattleToggle:
		g.ToggleBattle()

	case event.EventMessageRequest:
		if p, ok := ev.Payload.(*event.MessageRequestPayload); ok {
			g.ShowMessage(p.Text)
		}

	case event.EventMessageDismiss:
		g.Messages.Dismiss()

	case event.EventSoundRequest:
		if p, ok := ev.Payload.(*event.SoundRequestPayload); ok {
			if err := g.PlaySe(p.Effect); err != nil {
				g.logger.Warn("cue failed", zap.String("cue", p.Effect.Name), zap.Error(err))
			}
		}

	case event.EventQuitRequest:
		g.RequestQuit()
	}
}
