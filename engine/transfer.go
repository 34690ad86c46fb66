package engine

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/returnspell/event"
	"github.com/lixenwraith/returnspell/parameter"
)

type transferPhase uint8

const (
	transferIdle transferPhase = iota
	transferFadingOut
)

// updateTransfer drives a reserved transfer: fade out, switch map, fade in
func (g *Game) updateTransfer() {
	req, ok := g.Player.PendingTransfer()
	if !ok {
		g.transferPhase = transferIdle
		return
	}

	switch g.transferPhase {
	case transferIdle:
		if req.FadeType.Enabled() {
			g.Screen.FadeOut(parameter.TransferFadeFrames, req.FadeType.IsWhite())
			g.transferPhase = transferFadingOut
			return
		}
		g.performTransfer(req)

	case transferFadingOut:
		if g.Screen.IsFading() {
			return
		}
		g.performTransfer(req)
	}
}

func (g *Game) performTransfer(req TransferRequest) {
	g.Player.clearTransfer()
	g.transferPhase = transferIdle

	payload := &event.TransferPayload{
		MapID: req.MapID, X: req.X, Y: req.Y, Direction: req.Direction, FadeType: req.FadeType,
	}

	dest, ok := g.Maps[req.MapID]
	if !ok {
		g.logger.Error("transfer failed",
			zap.Int("map_id", req.MapID),
			zap.Error(ErrUnknownMap),
		)
		g.Push(event.EventTransferFailed, payload)
	} else {
		g.Map = dest
		g.Player.Locate(req.X, req.Y)
		if req.Direction != 0 {
			g.Player.Direction = req.Direction
		}
		g.statTransfers.Add(1)
		g.statMap.Store(dest.Name)
		g.logger.Debug("transfer complete",
			zap.Int("map_id", dest.ID),
			zap.Int("x", req.X),
			zap.Int("y", req.Y),
		)
		g.Push(event.EventTransferComplete, payload)
	}

	if req.FadeType.Enabled() {
		g.Screen.FadeIn(parameter.TransferFadeFrames, req.FadeType.IsWhite())
	}
}
