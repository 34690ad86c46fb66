package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/returnspell/audio"
	"github.com/lixenwraith/returnspell/command"
	"github.com/lixenwraith/returnspell/config"
	"github.com/lixenwraith/returnspell/core"
	"github.com/lixenwraith/returnspell/engine"
	"github.com/lixenwraith/returnspell/i18n"
	"github.com/lixenwraith/returnspell/input"
	"github.com/lixenwraith/returnspell/parameter"
	"github.com/lixenwraith/returnspell/render"
	"github.com/lixenwraith/returnspell/returnspell"
	"github.com/lixenwraith/returnspell/save"
	"github.com/lixenwraith/returnspell/script"
	"github.com/lixenwraith/returnspell/service"
	"github.com/lixenwraith/returnspell/status"
)

var (
	configFlag = flag.String("config", parameter.DefaultConfigFile, "Plugin parameter file (TOML)")
	saveFlag   = flag.String("save", parameter.DefaultSaveDir, "Save slot directory")
	scriptFlag = flag.String("script", "", "Lua script to run at startup")
	keymapFlag = flag.String("keymap", "", "Key binding overrides (TOML)")
	debugFlag  = flag.Bool("debug", false, "Write a debug log to logs/")
	muteFlag   = flag.Bool("mute", false, "Disable audio")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	logger, logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}
	defer logger.Sync()

	if err := run(logger); err != nil {
		logger.Error("exit", zap.Error(err))
		fmt.Fprintf(os.Stderr, "returnspell: %v\n", err)
		os.Exit(1)
	}
}

func run(logger *zap.Logger) error {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return err
	}
	logger.Info("config loaded",
		zap.Stringer("default_point", cfg.DefaultPoint),
		zap.Stringer("fade_type", cfg.FadeType),
		zap.String("se_name", cfg.SEName),
		zap.Bool("allow_in_battle", cfg.AllowInBattle),
		zap.String("locale", cfg.Locale),
	)

	machine := input.NewMachine()
	if *keymapFlag != "" {
		data, err := os.ReadFile(*keymapFlag)
		if err != nil {
			return fmt.Errorf("keymap: %w", err)
		}
		overrides, err := input.LoadKeyConfig(data)
		if err != nil {
			return err
		}
		machine = input.NewMachineWithKeys(overrides)
	}

	bundle, err := i18n.LoadEmbedded()
	if err != nil {
		return err
	}
	text := i18n.NewTranslator(bundle, cfg.Locale)

	metrics := status.NewRegistry()
	audioService := audio.NewService(logger)

	game, err := engine.NewGame(gameOptions(cfg, engine.NewMonotonicTimeProvider(), audioService, metrics, logger))
	if err != nil {
		return err
	}

	spell := returnspell.NewService(returnspell.Options{
		Config: cfg,
		Host:   game,
		Store:  game.System,
		Text:   text,
		Status: metrics,
		Logger: logger,
	})

	commands := command.NewRegistry(logger)
	if err := spell.RegisterCommands(commands); err != nil {
		return err
	}
	game.RegisterHandler(command.NewHandler[*engine.Game](commands))
	game.RegisterHandler(save.NewHandler(game, save.NewManager(*saveFlag), text, logger))

	scripts := script.NewService(spell, game, logger)

	hub := service.NewHub(logger)
	if err := hub.Register(audioService, *muteFlag); err != nil {
		return err
	}
	if err := hub.Register(scripts, *scriptFlag); err != nil {
		return err
	}
	if err := hub.Start(); err != nil {
		return err
	}
	defer hub.Stop()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	screen.EnableFocus()
	core.SetCrashTerminal(screen)
	defer func() {
		core.SetCrashTerminal(nil)
		screen.Fini()
	}()

	// Startup script runs on the first frame so it sees a live game loop
	game.After(0, func() {
		if err := scripts.RunStartup(); err != nil {
			logger.Error("startup script failed", zap.Error(err))
			game.ShowMessage(err.Error())
		}
	})

	return loop(game, screen, machine, render.NewRenderer(screen), metrics)
}

// gameOptions starts the host at its fixed start position; the configured
// return point may name any map, including one the host does not have
func gameOptions(cfg config.Config, clock engine.TimeProvider, audio engine.AudioPlayer, metrics *status.Registry, logger *zap.Logger) engine.Options {
	return engine.Options{
		Clock:        clock,
		StartMap:     parameter.StartMap,
		StartX:       parameter.StartX,
		StartY:       parameter.StartY,
		DefaultPoint: cfg.DefaultPoint,
		Audio:        audio,
		Status:       metrics,
		Logger:       logger,
	}
}

// loop owns the game until quit: input is polled on its own goroutine,
// updates and rendering happen here on the frame ticker
func loop(game *engine.Game, screen tcell.Screen, machine *input.Machine, renderer *render.Renderer, metrics *status.Registry) error {
	events := make(chan tcell.Event, parameter.InputChannelSize)
	quit := make(chan struct{})
	defer close(quit)

	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	})

	autoPaused := false

	ticker := time.NewTicker(parameter.FrameUpdateInterval)
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			intent := machine.Process(ev)
			if intent == nil {
				continue
			}
			switch intent.Type {
			case input.IntentResize:
				screen.Sync()
				continue
			case input.IntentPause:
				autoPaused = false
				game.SetPaused(!game.Paused())
				continue
			case input.IntentBlur:
				if !game.Paused() {
					autoPaused = true
					game.SetPaused(true)
				}
				continue
			case input.IntentFocus:
				// Focus return resumes only a pause that focus loss caused
				if autoPaused {
					game.SetPaused(false)
				}
				autoPaused = false
				continue
			}
			if et, payload, ok := intent.Event(); ok {
				game.Push(et, payload)
			}

		case <-ticker.C:
			game.Update()
			if game.QuitRequested() {
				return nil
			}
			renderer.Draw(game, metrics.Snapshot())
		}
	}
}
