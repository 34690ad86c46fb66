package returnspell

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/lixenwraith/returnspell/config"
	"github.com/lixenwraith/returnspell/core"
	"github.com/lixenwraith/returnspell/i18n"
	"github.com/lixenwraith/returnspell/status"
)

func newTestService(h *fakeHost, mutate func(*config.Config)) (*Service, *memStore) {
	cfg := config.Default()
	if mutate != nil {
		mutate(&cfg)
	}
	store := &memStore{}
	s := NewService(Options{Config: cfg, Host: h, Store: store})
	return s, store
}

func TestGetPointDefault(t *testing.T) {
	s, _ := newTestService(newFakeHost(1, 0, 0), nil)
	assert.Equal(t, core.NewReturnPoint(1, 10, 8), s.GetPoint())
}

func TestGetPointWithoutStore(t *testing.T) {
	s := NewService(Options{Config: config.Default(), Host: newFakeHost(1, 0, 0)})
	assert.Equal(t, core.NewReturnPoint(1, 10, 8), s.GetPoint())

	s.SetPoint(4, 1, 2)
	assert.Equal(t, core.NewReturnPoint(4, 1, 2), s.GetPoint())
}

func TestSetPointThenGetPoint(t *testing.T) {
	s, store := newTestService(newFakeHost(1, 0, 0), nil)

	for _, p := range []core.ReturnPoint{{MapID: 3, X: 5, Y: 5}, {MapID: 1, X: 0, Y: 0}, {MapID: 99, X: 120, Y: 4}} {
		s.SetPoint(p.MapID, p.X, p.Y)
		assert.Equal(t, p, s.GetPoint())
		assert.Equal(t, p, store.p)
	}
}

func TestSetPointLogsAndMetrics(t *testing.T) {
	obs, logs := observer.New(zapcore.InfoLevel)
	reg := status.NewRegistry()
	s := NewService(Options{
		Config: config.Default(),
		Host:   newFakeHost(1, 0, 0),
		Status: reg,
		Logger: zap.New(obs),
	})

	s.SetPoint(3, 5, 5)

	entries := logs.FilterMessage("Set return point").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.EqualValues(t, 3, fields["map_id"])
	assert.EqualValues(t, 5, fields["x"])
	assert.EqualValues(t, 5, fields["y"])
	assert.Equal(t, "Map3 (5,5)", reg.Strings.Get("returnspell.point").Load())
}

func TestRunSameMapBlackFade(t *testing.T) {
	h := newFakeHost(3, 1, 1)
	s, _ := newTestService(h, func(c *config.Config) { c.FadeType = core.FadeBlack })
	s.SetPoint(3, 5, 5)

	require.NoError(t, s.Run())
	assert.True(t, s.InFlight())
	h.advance(time.Second)

	assert.Equal(t, []string{
		"0:se Move1",
		"400:fadeout 12 white=false",
		"650:locate 5,5",
		"650:fadein 12 white=false",
	}, h.calls)
	assert.Equal(t, core.SoundEffect{Name: "Move1", Volume: 90, Pitch: 100, Pan: 0}, h.sounds[0])
	assert.Equal(t, [2]int{5, 5}, [2]int{h.x, h.y})
	assert.False(t, s.InFlight())
}

func TestRunSameMapWhiteFade(t *testing.T) {
	h := newFakeHost(1, 0, 0)
	s, _ := newTestService(h, nil)

	require.NoError(t, s.Run())
	h.advance(time.Second)

	assert.Equal(t, []string{
		"0:se Move1",
		"400:fadeout 12 white=true",
		"650:locate 10,8",
		"650:fadein 12 white=true",
	}, h.calls)
}

func TestRunSameMapNoFade(t *testing.T) {
	h := newFakeHost(3, 1, 1)
	s, _ := newTestService(h, func(c *config.Config) { c.FadeType = core.FadeNone })
	s.SetPoint(3, 5, 5)

	require.NoError(t, s.Run())
	h.advance(time.Second)

	assert.Equal(t, []string{"0:se Move1", "400:locate 5,5"}, h.calls)
	assert.False(t, s.InFlight())
}

func TestRunCrossMap(t *testing.T) {
	h := newFakeHost(3, 1, 1)
	s, _ := newTestService(h, func(c *config.Config) { c.FadeType = core.FadeBlack })
	s.SetPoint(7, 2, 2)

	require.NoError(t, s.Run())
	h.advance(time.Second)

	assert.Equal(t, []string{"0:se Move1", "400:transfer 7,2,2 dir=2 fade=0"}, h.calls)
	assert.Equal(t, [2]int{1, 1}, [2]int{h.x, h.y})
	assert.False(t, s.InFlight())
}

func TestRunResolvesZeroMap(t *testing.T) {
	h := newFakeHost(3, 1, 1)
	s, _ := newTestService(h, func(c *config.Config) { c.FadeType = core.FadeNone })
	s.SetPoint(0, 4, 4)

	require.NoError(t, s.Run())
	h.advance(time.Second)

	assert.Equal(t, []string{"0:se Move1", "400:transfer 1,4,4 dir=2 fade=2"}, h.calls)
}

func TestRunBlockedInBattle(t *testing.T) {
	h := newFakeHost(3, 1, 1)
	h.battle = true
	reg := status.NewRegistry()
	b, err := i18n.LoadEmbedded()
	require.NoError(t, err)
	s := NewService(Options{
		Config: config.Default(),
		Host:   h,
		Text:   i18n.NewTranslator(b, "ja-JP"),
		Status: reg,
	})

	require.NoError(t, s.Run())
	h.advance(time.Second)

	assert.Equal(t, []string{"0:se Buzzer1", "0:message 今は帰還できない！"}, h.calls)
	assert.Equal(t, core.SoundEffect{Name: "Buzzer1", Volume: 90, Pitch: 100}, h.sounds[0])
	assert.False(t, s.InFlight())
	assert.EqualValues(t, 1, reg.Ints.Get("returnspell.blocked").Load())
	assert.EqualValues(t, 0, reg.Ints.Get("returnspell.runs").Load())
}

func TestRunAllowedInBattle(t *testing.T) {
	h := newFakeHost(1, 0, 0)
	h.battle = true
	s, _ := newTestService(h, func(c *config.Config) {
		c.AllowInBattle = true
		c.FadeType = core.FadeNone
	})

	require.NoError(t, s.Run())
	h.advance(time.Second)

	assert.Equal(t, []string{"0:se Move1", "400:locate 10,8"}, h.calls)
}

func TestRunWithoutCue(t *testing.T) {
	h := newFakeHost(1, 0, 0)
	s, _ := newTestService(h, func(c *config.Config) {
		c.SEName = ""
		c.FadeType = core.FadeNone
	})

	require.NoError(t, s.Run())
	h.advance(time.Second)

	assert.Equal(t, []string{"400:locate 10,8"}, h.calls)
}

func TestRunIgnoredWhileInFlight(t *testing.T) {
	h := newFakeHost(1, 0, 0)
	s, _ := newTestService(h, nil)

	require.NoError(t, s.Run())
	h.advance(500 * time.Millisecond)

	err := s.Run()
	assert.True(t, errors.Is(err, ErrReturnInFlight))
	assert.NoError(t, s.RunReturnSpell())

	h.advance(time.Second)
	assert.Len(t, h.sounds, 1)
	assert.Equal(t, 0, h.timers.Pending())

	// Completed: a new run is accepted
	require.NoError(t, s.Run())
	assert.Len(t, h.sounds, 2)
}

func TestSetPointDuringFlightKeepsDestination(t *testing.T) {
	h := newFakeHost(1, 0, 0)
	s, store := newTestService(h, func(c *config.Config) { c.FadeType = core.FadeNone })
	s.SetPoint(1, 5, 5)

	require.NoError(t, s.Run())
	h.advance(200 * time.Millisecond)
	s.SetPoint(7, 2, 2)
	h.advance(time.Second)

	// The run goes where the point was when it started
	assert.Equal(t, [2]int{5, 5}, [2]int{h.x, h.y})
	assert.Equal(t, []string{"0:se Move1", "400:locate 5,5"}, h.calls)

	// The stored point still takes the later write
	p, ok := store.LoadReturnPoint()
	require.True(t, ok)
	assert.Equal(t, core.NewReturnPoint(7, 2, 2), p)
	assert.Equal(t, p, s.GetPoint())
}

func TestRunBlockedCueFailureStillShowsMessage(t *testing.T) {
	h := newFakeHost(3, 1, 1)
	h.battle = true
	h.seErr = errNoCue
	s, _ := newTestService(h, nil)

	err := s.Run()
	assert.True(t, errors.Is(err, errNoCue))
	assert.Equal(t, []string{i18n.KeyReturnBlocked}, h.messages)
	assert.Equal(t, 0, h.timers.Pending())
}

func TestRunCueFailure(t *testing.T) {
	h := newFakeHost(1, 0, 0)
	h.seErr = errNoCue
	s, _ := newTestService(h, nil)

	err := s.Run()
	assert.True(t, errors.Is(err, errNoCue))
	assert.False(t, s.InFlight())
	assert.Equal(t, 0, h.timers.Pending())
}
