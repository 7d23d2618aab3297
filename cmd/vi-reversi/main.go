package main

import (
	"flag"
	"fmt"
	"os"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/lixenwraith/vi-reversi/audio"
	"github.com/lixenwraith/vi-reversi/config"
	"github.com/lixenwraith/vi-reversi/core"
	"github.com/lixenwraith/vi-reversi/game"
	"github.com/lixenwraith/vi-reversi/screen"
	"github.com/lixenwraith/vi-reversi/terminal"
)

var (
	configFlag   = flag.String("config", "", "config file (default "+config.DefaultPath+" when present)")
	keymapFlag   = flag.String("keymap", "", "key preset: ijkl, vi, arrows")
	glyphsFlag   = flag.String("glyphs", "", "stone glyphs: ascii, unicode")
	backendFlag  = flag.String("backend", "", "terminal backend: ansi, tcell")
	soundFlag    = flag.Bool("sound", false, "play placement tones")
	showTurnFlag = flag.Bool("show-turn", false, "print whose turn it is under the board")
	debugFlag    = flag.Bool("debug", false, "write a debug log to "+logDir+"/"+logFileName)
)

func main() {
	os.Exit(run())
}

func run() int {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer core.Recover()

	flag.Usage = usage
	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}
	core.SetCrashLogger(log.Logger)
	// Dependency Injection: the input reader goroutine reports panics through core
	terminal.SetCrashHandler(core.HandleCrash)
	stopSignals := core.ExitOnSignal(syscall.SIGTERM, syscall.SIGHUP)
	defer stopSignals()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "vi-reversi: %v\n", err)
		return 2
	}
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "vi-reversi: %v\n", err)
		return 2
	}
	log.Info().
		Str("keymap", cfg.Keymap).
		Str("glyphs", cfg.Glyphs).
		Str("backend", cfg.Backend).
		Bool("sound", cfg.Sound).
		Msg("config loaded")

	// play returns after the terminal is restored, so the message stays visible
	if err := play(cfg); err != nil {
		log.Error().Err(err).Msg("game ended with error")
		fmt.Fprintf(os.Stderr, "vi-reversi: %v\n", err)
		return 1
	}
	return 0
}

// applyFlags overrides config values with flags given on the command line
func applyFlags(cfg *config.Config) error {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "keymap":
			cfg.Keymap = *keymapFlag
		case "glyphs":
			cfg.Glyphs = *glyphsFlag
		case "backend":
			cfg.Backend = *backendFlag
		case "sound":
			cfg.Sound = *soundFlag
		case "show-turn":
			cfg.ShowTurn = *showTurnFlag
		}
	})
	return cfg.Validate()
}

func play(cfg *config.Config) error {
	keys, err := cfg.KeyTable()
	if err != nil {
		return err
	}
	renderer, err := cfg.Renderer()
	if err != nil {
		return err
	}

	opts := []game.Option{game.WithLogger(log.Logger)}

	if cfg.Sound {
		sm := audio.NewSoundManager(log.Logger)
		if err := sm.Initialize(); err != nil {
			// Non-fatal, game can run without sound
			log.Warn().Err(err).Msg("audio unavailable")
		} else {
			defer sm.Cleanup()
			opts = append(opts, game.WithFeedback(sm))
		}
	}

	switch cfg.Backend {
	case config.BackendTcell:
		scr, err := screen.New(keys, renderer)
		if err != nil {
			return err
		}
		if err := scr.Init(); err != nil {
			return err
		}
		core.SetCrashCleanup(scr.Fini)
		defer scr.Fini()
		return game.Run(scr, scr, opts...)

	default:
		term := terminal.New()
		if err := term.Init(); err != nil {
			return err
		}
		core.SetCrashCleanup(term.Fini)
		// Normal exit terminal cleanup
		defer term.Fini()
		return game.Run(&termSource{term: term, keys: keys}, &ansiView{term: term, renderer: renderer}, opts...)
	}
}

func usage() {
	out := flag.CommandLine.Output()
	fmt.Fprintf(out, "Usage: vi-reversi [flags]\n\nFlags:\n")
	flag.PrintDefaults()
	if env, err := config.Usage(); err == nil {
		fmt.Fprintf(out, "\n%s\n", env)
	}
}
