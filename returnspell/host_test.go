package returnspell

import (
	"errors"
	"fmt"
	"time"

	"github.com/lixenwraith/returnspell/core"
	"github.com/lixenwraith/returnspell/engine"
)

var _ Host = (*engine.Game)(nil)
var _ PointStore = (*engine.SystemState)(nil)

// fakeHost records every collaborator call with its game-time offset
type fakeHost struct {
	clock  *engine.MockTimeProvider
	timers *engine.Scheduler
	start  time.Time

	battle bool
	mapID  int
	x, y   int
	seErr  error

	calls    []string
	sounds   []core.SoundEffect
	messages []string
}

func newFakeHost(mapID, x, y int) *fakeHost {
	clock := engine.NewMockTimeProvider(engine.TestEpoch)
	return &fakeHost{
		clock:  clock,
		timers: engine.NewScheduler(clock),
		start:  engine.TestEpoch,
		mapID:  mapID,
		x:      x,
		y:      y,
	}
}

func (h *fakeHost) record(format string, args ...any) {
	at := h.clock.Now().Sub(h.start).Milliseconds()
	h.calls = append(h.calls, fmt.Sprintf("%d:", at)+fmt.Sprintf(format, args...))
}

// advance moves time forward in 1ms steps so timers fire at their deadline
func (h *fakeHost) advance(d time.Duration) {
	for elapsed := time.Duration(0); elapsed < d; elapsed += time.Millisecond {
		h.clock.Advance(time.Millisecond)
		h.timers.Advance()
	}
}

func (h *fakeHost) IsBattleActive() bool { return h.battle }

func (h *fakeHost) PlaySe(se core.SoundEffect) error {
	if h.seErr != nil {
		return h.seErr
	}
	h.sounds = append(h.sounds, se)
	h.record("se %s", se.Name)
	return nil
}

func (h *fakeHost) ShowMessage(text string) {
	h.messages = append(h.messages, text)
	h.record("message %s", text)
}

func (h *fakeHost) MapID() int { return h.mapID }

func (h *fakeHost) PlayerPosition() (int, int) { return h.x, h.y }

func (h *fakeHost) LocatePlayer(x, y int) {
	h.x, h.y = x, y
	h.record("locate %d,%d", x, y)
}

func (h *fakeHost) ReserveTransfer(mapID, x, y int, dir core.Direction, fade core.FadeType) {
	h.record("transfer %d,%d,%d dir=%d fade=%d", mapID, x, y, dir, fade)
}

func (h *fakeHost) FadeOut(duration int, white bool) {
	h.record("fadeout %d white=%v", duration, white)
}

func (h *fakeHost) FadeIn(duration int, white bool) {
	h.record("fadein %d white=%v", duration, white)
}

func (h *fakeHost) After(d time.Duration, fn func()) {
	h.timers.After(d, fn)
}

// memStore is a PointStore that starts empty
type memStore struct {
	p  core.ReturnPoint
	ok bool
}

func (m *memStore) LoadReturnPoint() (core.ReturnPoint, bool) { return m.p, m.ok }

func (m *memStore) StoreReturnPoint(p core.ReturnPoint) {
	m.p = p
	m.ok = true
}

var errNoCue = errors.New("no such cue file")
