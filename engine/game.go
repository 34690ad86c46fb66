package engine

import (
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/returnspell/core"
	"github.com/lixenwraith/returnspell/event"
	"github.com/lixenwraith/returnspell/parameter"
	"github.com/lixenwraith/returnspell/status"
)

// ErrUnknownMap is reported when a transfer targets a map that does not exist
var ErrUnknownMap = errors.New("unknown map")

// AudioPlayer plays one-shot cues
type AudioPlayer interface {
	PlaySe(se core.SoundEffect) error
}

// Game is the host runtime: maps, player, screen, scene and persistent state
// All fields are owned by the game loop goroutine; other goroutines talk to it
// through Events
type Game struct {
	Clock    *PausableClock
	Timers   *Scheduler
	Events   *event.EventQueue
	Maps     map[int]*GameMap
	Map      *GameMap
	Player   *Player
	Screen   *Screen
	Scene    *Scene
	Messages *MessageWindow
	System   *SystemState
	Audio    AudioPlayer
	Status   *status.Registry

	router *event.Router[*Game]
	logger *zap.Logger
	frame  int64
	quit   atomic.Bool

	transferPhase transferPhase

	statFrames    *atomic.Int64
	statDropped   *atomic.Int64
	statTransfers *atomic.Int64
	statBattle    *atomic.Bool
	statPaused    *atomic.Bool
	statMap       *status.AtomicString
}

// Options configures a new Game
type Options struct {
	Clock        TimeProvider
	Maps         map[int]*GameMap
	StartMap     int
	StartX       int
	StartY       int
	DefaultPoint core.ReturnPoint
	Audio        AudioPlayer
	Status       *status.Registry
	Logger       *zap.Logger
}

// NewGame builds a game on the start map with a fresh system state
func NewGame(opts Options) (*Game, error) {
	if opts.Maps == nil {
		opts.Maps = DefaultMaps()
	}
	start, ok := opts.Maps[opts.StartMap]
	if !ok {
		return nil, fmt.Errorf("start map %d: %w", opts.StartMap, ErrUnknownMap)
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Status == nil {
		opts.Status = status.NewRegistry()
	}

	event.InitRegistry()

	clock := NewPausableClock(opts.Clock)
	queue := event.NewEventQueue()

	g := &Game{
		Clock:    clock,
		Timers:   NewScheduler(clock),
		Events:   queue,
		Maps:     opts.Maps,
		Map:      start,
		Player:   NewPlayer(opts.StartX, opts.StartY),
		Screen:   NewScreen(),
		Scene:    &Scene{Kind: core.SceneMap},
		Messages: NewMessageWindow(parameter.MessageWindowCapacity),
		System:   NewSystemState(opts.DefaultPoint),
		Audio:    opts.Audio,
		Status:   opts.Status,
		router:   event.NewRouter[*Game](queue),
		logger:   opts.Logger.Named("engine"),
	}

	g.statFrames = g.Status.Ints.Get("engine.frames")
	g.statDropped = g.Status.Ints.Get("engine.events_dropped")
	g.statTransfers = g.Status.Ints.Get("engine.transfers")
	g.statBattle = g.Status.Bools.Get("scene.battle")
	g.statPaused = g.Status.Bools.Get("engine.paused")
	g.statMap = g.Status.Strings.Get("engine.map")
	g.statMap.Store(start.Name)

	g.router.Unhandled = func(ev event.GameEvent) {
		g.logger.Debug("event", zap.Stringer("type", ev.Type), zap.Int64("frame", ev.Frame))
	}
	g.registerCoreHandlers()
	return g, nil
}

// RegisterHandler adds an event handler; call before the loop starts
func (g *Game) RegisterHandler(h event.Handler[*Game]) {
	g.router.Register(h)
}

// Logger returns the engine logger
func (g *Game) Logger() *zap.Logger {
	return g.logger
}

// Frame returns the number of completed updates
func (g *Game) Frame() int64 {
	return g.frame
}

// Push enqueues an event stamped with the current frame
func (g *Game) Push(et event.EventType, payload any) {
	g.Events.Push(event.GameEvent{Type: et, Payload: payload, Frame: g.frame})
}

// Update advances the game by one frame
// Order: route events, fire due timers, progress transfer, progress fade
// A paused game does not advance; queued events wait for Resume
func (g *Game) Update() {
	if g.Clock.IsPaused() {
		return
	}
	g.router.DispatchAll(g)
	g.Timers.Advance()
	g.updateTransfer()
	g.Screen.Update()

	g.frame++
	g.statFrames.Store(g.frame)
	g.statDropped.Store(int64(g.Events.Dropped()))
}

// SetPaused freezes or resumes game time and updates
// Pending timers keep their remaining game-time delay across a pause
func (g *Game) SetPaused(paused bool) {
	if paused == g.Clock.IsPaused() {
		return
	}
	if paused {
		g.Clock.Pause()
	} else {
		g.Clock.Resume()
	}
	g.statPaused.Store(paused)
	g.logger.Debug("pause changed", zap.Bool("paused", paused))
}

// Paused reports whether the game is frozen
func (g *Game) Paused() bool {
	return g.Clock.IsPaused()
}

// RequestQuit asks the main loop to exit
func (g *Game) RequestQuit() {
	g.quit.Store(true)
}

// QuitRequested reports whether the main loop should exit
func (g *Game) QuitRequested() bool {
	return g.quit.Load()
}

// MapID returns the current map id
func (g *Game) MapID() int {
	return g.Map.ID
}

// PlayerPosition returns the player's tile
func (g *Game) PlayerPosition() (x, y int) {
	return g.Player.X, g.Player.Y
}

// IsBattleActive reports whether a battle scene is active
func (g *Game) IsBattleActive() bool {
	return g.Scene.IsBattleActive()
}

// ToggleBattle flips the scene between map and battle
func (g *Game) ToggleBattle() core.SceneKind {
	kind := g.Scene.Toggle()
	g.statBattle.Store(kind == core.SceneBattle)
	g.logger.Debug("scene changed", zap.Stringer("scene", kind))
	return kind
}

// PlaySe plays a cue immediately; without an audio backend it is a no-op
func (g *Game) PlaySe(se core.SoundEffect) error {
	if g.Audio == nil {
		return nil
	}
	return g.Audio.PlaySe(se)
}

// ShowMessage adds a line to the message window
func (g *Game) ShowMessage(text string) {
	g.Messages.Add(text)
}

// LocatePlayer relocates the player on the current map
func (g *Game) LocatePlayer(x, y int) {
	g.Player.Locate(x, y)
	g.Push(event.EventPlayerLocated, &event.PlayerLocatedPayload{MapID: g.Map.ID, X: x, Y: y})
}

// ReserveTransfer requests a cross-map transfer resolved by the transfer pipeline
func (g *Game) ReserveTransfer(mapID, x, y int, dir core.Direction, fade core.FadeType) {
	g.Player.ReserveTransfer(TransferRequest{MapID: mapID, X: x, Y: y, Direction: dir, FadeType: fade})
	g.Push(event.EventTransferReserved, &event.TransferPayload{
		MapID: mapID, X: x, Y: y, Direction: dir, FadeType: fade,
	})
}

// FadeOut starts covering the screen
func (g *Game) FadeOut(duration int, white bool) {
	g.Screen.FadeOut(duration, white)
	g.Push(event.EventFadeStart, &event.FadePayload{Out: true, Duration: duration, White: white})
}

// FadeIn starts uncovering the screen
func (g *Game) FadeIn(duration int, white bool) {
	g.Screen.FadeIn(duration, white)
	g.Push(event.EventFadeStart, &event.FadePayload{Out: false, Duration: duration, White: white})
}

// After schedules fn on the game-time scheduler
func (g *Game) After(d time.Duration, fn func()) {
	g.Timers.After(d, fn)
}

// Restore places the player on mapID at (x, y) and replaces the system state
// Used by save loading; no fade or transfer events are produced and queued
// messages from the previous state are dropped
func (g *Game) Restore(mapID, x, y int, dir core.Direction, sys SystemState) error {
	dest, ok := g.Maps[mapID]
	if !ok {
		return fmt.Errorf("restore map %d: %w", mapID, ErrUnknownMap)
	}
	g.Player.clearTransfer()
	g.transferPhase = transferIdle
	g.Map = dest
	g.Player.Locate(x, y)
	if dir != core.DirNone {
		g.Player.Direction = dir
	}
	g.System.Replace(sys)
	g.Messages.Clear()
	g.statMap.Store(dest.Name)
	return nil
}
