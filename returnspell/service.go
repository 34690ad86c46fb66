package returnspell

import (
	"errors"
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/lixenwraith/returnspell/config"
	"github.com/lixenwraith/returnspell/core"
	"github.com/lixenwraith/returnspell/i18n"
	"github.com/lixenwraith/returnspell/parameter"
	"github.com/lixenwraith/returnspell/status"
)

// ErrReturnInFlight is returned by Run while a previous return is still running
var ErrReturnInFlight = errors.New("return already in flight")

// Options configures a Service
type Options struct {
	Config config.Config
	Host   Host
	Store  PointStore
	Text   Texter
	Status *status.Registry
	Logger *zap.Logger
}

// Service owns the return point and the return sequence
type Service struct {
	cfg   config.Config
	host  Host
	store PointStore
	text  Texter

	// Transient copy used when no store is attached
	point core.ReturnPoint

	inFlight atomic.Bool
	logger   *zap.Logger

	statRuns    *atomic.Int64
	statBlocked *atomic.Int64
	statPoint   *status.AtomicString
}

// NewService creates the return spell service
// A nil Store keeps the point in memory only
func NewService(opts Options) *Service {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Status == nil {
		opts.Status = status.NewRegistry()
	}
	if opts.Text == nil {
		opts.Text = keyTexter{}
	}

	s := &Service{
		cfg:         opts.Config,
		host:        opts.Host,
		store:       opts.Store,
		text:        opts.Text,
		point:       opts.Config.DefaultPoint,
		logger:      opts.Logger.Named("returnspell"),
		statRuns:    opts.Status.Ints.Get("returnspell.runs"),
		statBlocked: opts.Status.Ints.Get("returnspell.blocked"),
		statPoint:   opts.Status.Strings.Get("returnspell.point"),
	}
	s.statPoint.Store(s.GetPoint().String())
	return s
}

// InFlight reports whether a return sequence is running
func (s *Service) InFlight() bool {
	return s.inFlight.Load()
}

// SetPoint overwrites the live return point
func (s *Service) SetPoint(mapID, x, y int) {
	p := core.NewReturnPoint(mapID, x, y)
	s.point = p
	if s.store != nil {
		s.store.StoreReturnPoint(p)
	}
	s.statPoint.Store(p.String())
	s.logger.Info("Set return point",
		zap.Int("map_id", mapID),
		zap.Int("x", x),
		zap.Int("y", y),
	)
}

// GetPoint returns the live point, or the configured default when none is stored
func (s *Service) GetPoint() core.ReturnPoint {
	if s.store != nil {
		if p, ok := s.store.LoadReturnPoint(); ok {
			return p
		}
		return s.cfg.DefaultPoint
	}
	return s.point
}

// Run starts the return sequence toward the point stored at call time
// A later SetPoint changes the stored point but not this run's destination
// A battle-blocked attempt is not an error: it plays the buzzer and shows a message
func (s *Service) Run() error {
	dest := s.GetPoint()

	if s.host.IsBattleActive() && !s.cfg.AllowInBattle {
		s.statBlocked.Add(1)
		s.logger.Debug("return blocked in battle")
		err := s.host.PlaySe(s.cue(core.CueBuzzer))
		s.host.ShowMessage(s.text.Text(i18n.KeyReturnBlocked))
		if err != nil {
			return fmt.Errorf("blocked cue: %w", err)
		}
		return nil
	}

	if !s.inFlight.CompareAndSwap(false, true) {
		s.logger.Debug("return ignored", zap.Error(ErrReturnInFlight))
		return ErrReturnInFlight
	}

	if s.cfg.SEName != "" {
		if err := s.host.PlaySe(s.cue(s.cfg.SEName)); err != nil {
			s.inFlight.Store(false)
			return fmt.Errorf("return cue: %w", err)
		}
	}

	s.statRuns.Add(1)
	s.host.After(parameter.ReturnCueDelay, func() { s.transfer(dest) })
	return nil
}

// transfer runs after the cue delay; defaults for a zero map or coordinates
// are applied here
func (s *Service) transfer(dest core.ReturnPoint) {
	p := dest.Resolved()

	if p.MapID != s.host.MapID() {
		s.logger.Debug("return transfer reserved", zap.Stringer("point", p))
		s.host.ReserveTransfer(p.MapID, p.X, p.Y, core.DirDown, s.cfg.FadeType)
		s.inFlight.Store(false)
		return
	}

	if !s.cfg.FadeType.Enabled() {
		s.relocate(p)
		return
	}

	white := s.cfg.FadeType.IsWhite()
	s.host.FadeOut(parameter.ReturnFadeFrames, white)
	s.host.After(parameter.ReturnFadeGap, func() {
		s.relocate(p)
		s.host.FadeIn(parameter.ReturnFadeFrames, white)
	})
}

func (s *Service) relocate(p core.ReturnPoint) {
	s.host.LocatePlayer(p.X, p.Y)
	s.inFlight.Store(false)
	s.logger.Debug("return relocated", zap.Stringer("point", p))
}

func (s *Service) cue(name string) core.SoundEffect {
	return core.SoundEffect{
		Name:   name,
		Volume: parameter.ReturnCueVolume,
		Pitch:  parameter.ReturnCuePitch,
		Pan:    parameter.ReturnCuePan,
	}
}
