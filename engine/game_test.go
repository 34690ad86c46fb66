package engine

import (
	"testing"
	"time"

	"github.com/lixenwraith/returnspell/core"
	"github.com/lixenwraith/returnspell/event"
	"github.com/lixenwraith/returnspell/parameter"
)

type recordingAudio struct {
	played []core.SoundEffect
}

func (a *recordingAudio) PlaySe(se core.SoundEffect) error {
	a.played = append(a.played, se)
	return nil
}

type eventRecorder struct {
	types []event.EventType
	seen  []event.GameEvent
}

func (r *eventRecorder) EventTypes() []event.EventType { return r.types }
func (r *eventRecorder) HandleEvent(_ *Game, ev event.GameEvent) {
	r.seen = append(r.seen, ev)
}

func TestNewGameUnknownStartMap(t *testing.T) {
	if _, err := NewGame(Options{StartMap: 99}); err == nil {
		t.Fatal("Expected error for unknown start map")
	}
}

func TestGameSystemStateSeededWithDefault(t *testing.T) {
	g, _ := NewTestGame(1, 2, 2)
	p, ok := g.System.LoadReturnPoint()
	if !ok || p != core.NewReturnPoint(1, 10, 8) {
		t.Errorf("Expected default return point, got %v (ok=%v)", p, ok)
	}
	if g.System.SessionID == "" {
		t.Error("Expected a session id")
	}
}

func TestTransferWithFade(t *testing.T) {
	g, mock := NewTestGame(1, 2, 2)
	rec := &eventRecorder{types: []event.EventType{event.EventTransferComplete}}
	g.RegisterHandler(rec)

	g.ReserveTransfer(7, 1, 1, core.DirDown, core.FadeBlack)
	if !g.Player.IsTransferring() {
		t.Fatal("Expected reserved transfer")
	}

	// Fade-out frames plus the frame that performs the transfer
	for i := 0; i <= parameter.TransferFadeFrames; i++ {
		Step(g, mock, parameter.FrameUpdateInterval)
	}
	if g.MapID() != 7 {
		t.Fatalf("Expected map 7 after fade-out, got %d", g.MapID())
	}
	if x, y := g.PlayerPosition(); x != 1 || y != 1 {
		t.Errorf("Expected player at (1,1), got (%d,%d)", x, y)
	}
	if g.Player.Direction != core.DirDown {
		t.Errorf("Expected facing down, got %v", g.Player.Direction)
	}
	if g.Screen.White() {
		t.Error("Expected black fade")
	}

	RunFor(g, mock, 30*parameter.FrameUpdateInterval, parameter.FrameUpdateInterval)
	if g.Screen.Opacity() != 0 {
		t.Errorf("Expected fade-in to finish, opacity=%d", g.Screen.Opacity())
	}
	if len(rec.seen) != 1 {
		t.Errorf("Expected one EventTransferComplete, got %d", len(rec.seen))
	}
	if got := g.Status.Ints.Get("engine.transfers").Load(); got != 1 {
		t.Errorf("Expected transfer counter 1, got %d", got)
	}
}

func TestTransferWithoutFadeIsImmediate(t *testing.T) {
	g, mock := NewTestGame(1, 2, 2)
	g.ReserveTransfer(3, 4, 5, core.DirDown, core.FadeNone)

	Step(g, mock, parameter.FrameUpdateInterval)
	if g.MapID() != 3 || g.Player.X != 4 || g.Player.Y != 5 {
		t.Errorf("Expected immediate transfer to 3 (4,5), got %d (%d,%d)", g.MapID(), g.Player.X, g.Player.Y)
	}
	if g.Screen.Opacity() != 0 || g.Screen.IsFading() {
		t.Error("Expected no fade for FadeNone")
	}
}

func TestTransferUnknownMap(t *testing.T) {
	g, mock := NewTestGame(1, 2, 2)
	rec := &eventRecorder{types: []event.EventType{event.EventTransferFailed}}
	g.RegisterHandler(rec)

	g.ReserveTransfer(42, 1, 1, core.DirDown, core.FadeNone)
	Step(g, mock, parameter.FrameUpdateInterval)
	Step(g, mock, parameter.FrameUpdateInterval)

	if g.MapID() != 1 || g.Player.X != 2 || g.Player.Y != 2 {
		t.Error("Expected player to stay in place after failed transfer")
	}
	if g.Player.IsTransferring() {
		t.Error("Expected failed transfer to be cleared")
	}
	if len(rec.seen) != 1 {
		t.Errorf("Expected one EventTransferFailed, got %d", len(rec.seen))
	}
}

func TestCoreHandlers(t *testing.T) {
	audio := &recordingAudio{}
	g, mock := NewTestGame(1, 1, 1)
	g.Audio = audio

	g.Push(event.EventPlayerMoveRequest, &event.PlayerMovePayload{Direction: core.DirRight})
	g.Push(event.EventSoundRequest, &event.SoundRequestPayload{Effect: core.SoundEffect{Name: core.CueSave, Volume: 90, Pitch: 100}})
	g.Push(event.EventBattleToggle, nil)
	Step(g, mock, parameter.FrameUpdateInterval)

	if g.Player.X != 2 || g.Player.Direction != core.DirRight {
		t.Errorf("Expected player moved right to x=2, got x=%d dir=%v", g.Player.X, g.Player.Direction)
	}
	if len(audio.played) != 1 || audio.played[0].Name != core.CueSave {
		t.Errorf("Expected Save cue played, got %v", audio.played)
	}
	if !g.IsBattleActive() {
		t.Error("Expected battle scene")
	}

	// Wall blocks movement
	g.Player.Locate(1, 1)
	g.Push(event.EventPlayerMoveRequest, &event.PlayerMovePayload{Direction: core.DirUp})
	g.Push(event.EventQuitRequest, nil)
	Step(g, mock, parameter.FrameUpdateInterval)
	if g.Player.Y != 1 {
		t.Errorf("Expected wall to block, y=%d", g.Player.Y)
	}
	if !g.QuitRequested() {
		t.Error("Expected quit requested")
	}
}

func TestMessageBlocksMovement(t *testing.T) {
	g, mock := NewTestGame(1, 1, 1)

	g.Push(event.EventMessageRequest, &event.MessageRequestPayload{Text: "hello"})
	Step(g, mock, time.Millisecond)
	if msg, ok := g.Messages.Current(); !ok || msg != "hello" {
		t.Fatalf("Expected message shown, got %q", msg)
	}

	g.Push(event.EventPlayerMoveRequest, &event.PlayerMovePayload{Direction: core.DirRight})
	Step(g, mock, time.Millisecond)
	if g.Player.X != 1 {
		t.Error("Expected movement blocked while a message is open")
	}

	g.Push(event.EventMessageDismiss, nil)
	Step(g, mock, time.Millisecond)
	if g.Messages.Len() != 0 {
		t.Error("Expected message dismissed")
	}
}

func TestMessageWindowCapacity(t *testing.T) {
	w := NewMessageWindow(2)
	w.Add("a")
	w.Add("b")
	w.Add("c")
	if cur, _ := w.Current(); cur != "b" || w.Len() != 2 {
		t.Errorf("Expected oldest dropped, current=%q len=%d", cur, w.Len())
	}
}

func TestSystemStateReplaceKeepsPointer(t *testing.T) {
	s := NewSystemState(core.NewReturnPoint(1, 10, 8))
	holder := s

	p := core.NewReturnPoint(3, 5, 5)
	s.Replace(SystemState{SessionID: "loaded", SaveCount: 4, ReturnPoint: &p})

	got, ok := holder.LoadReturnPoint()
	if !ok || got != p || holder.SessionID != "loaded" || holder.SaveCount != 4 {
		t.Errorf("Expected replaced state visible through holder, got %+v", holder)
	}

	p.X = 99
	if got, _ := holder.LoadReturnPoint(); got.X != 5 {
		t.Error("Replace must copy the return point")
	}
}

func TestPauseFreezesTimersAndUpdates(t *testing.T) {
	g, mock := NewTestGame(1, 2, 2)

	fired := false
	g.After(100*time.Millisecond, func() { fired = true })

	g.SetPaused(true)
	if !g.Paused() || !g.Status.Bools.Get("engine.paused").Load() {
		t.Fatal("Expected game paused")
	}
	frame := g.Frame()
	g.Push(event.EventBattleToggle, nil)
	Step(g, mock, time.Second)
	if fired || g.Frame() != frame || g.IsBattleActive() {
		t.Fatal("Paused game advanced")
	}

	g.SetPaused(false)
	Step(g, mock, 50*time.Millisecond)
	if fired {
		t.Error("Timer fired early; pause time leaked into game time")
	}
	if !g.IsBattleActive() {
		t.Error("Expected queued toggle to run after resume")
	}
	Step(g, mock, 50*time.Millisecond)
	if !fired {
		t.Error("Expected timer after 100ms of unpaused time")
	}
}
