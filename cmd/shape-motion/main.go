package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/exp/rand"

	"github.com/lixenwraith/shape-motion/audio"
	"github.com/lixenwraith/shape-motion/config"
	"github.com/lixenwraith/shape-motion/core"
	"github.com/lixenwraith/shape-motion/engine"
	"github.com/lixenwraith/shape-motion/game"
	"github.com/lixenwraith/shape-motion/input"
	"github.com/lixenwraith/shape-motion/render"
)

var (
	configFlag      = flag.String("config", "", "TOML config file")
	writeConfigFlag = flag.String("write-config", "", "Write the effective config to this path and exit")
	levelFlag       = flag.String("level", "", "Level: classic, gauntlet")
	muteFlag        = flag.Bool("mute", false, "Disable the buzzer")
	debugFlag       = flag.Bool("debug", false, "Write a debug log")
)

func main() {
	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	if *writeConfigFlag != "" {
		if err := config.Save(*writeConfigFlag, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "write config: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if logFile := setupLogging(cfg.Debug, cfg.LogDir); logFile != nil {
		defer logFile.Close()
	}
	log.Printf("config: %+v", cfg)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	core.SetCrashHook(screen.Fini)
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	err = run(cfg, screen)
	screen.Fini()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// loadConfig applies command-line overrides on top of file and environment
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return cfg, err
	}
	if *levelFlag != "" {
		cfg.Level = *levelFlag
	}
	if *muteFlag {
		cfg.Mute = true
	}
	if *debugFlag {
		cfg.Debug = true
	}
	return cfg, cfg.Validate()
}

// newBuzzer opens the speaker, falling back to silence
func newBuzzer(cfg config.Config) (audio.Buzzer, func()) {
	if cfg.Mute {
		return audio.Silent{}, func() {}
	}
	sm := audio.NewSoundManager(cfg.BuzzerClockHz)
	if err := sm.Initialize(); err != nil {
		log.Printf("audio initialization failed: %v (continuing without audio)", err)
		return audio.Silent{}, func() {}
	}
	return sm, sm.Cleanup
}

func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Printf("seed: %d", seed)
	return rand.New(rand.NewSource(seed))
}

func run(cfg config.Config, screen tcell.Screen) error {
	level, err := game.Lookup(cfg.Level, cfg.ScreenWidth, cfg.ScreenHeight)
	if err != nil {
		return err
	}

	buzzer, closeAudio := newBuzzer(cfg)
	defer closeAudio()

	display := render.NewTerminalDisplay(screen, cfg.ScreenWidth, cfg.ScreenHeight, cfg.BackgroundColor())
	keypad := input.NewKeypad(core.NewTimeProvider(), cfg.KeyHold())
	keys := input.DefaultKeyTable()

	ctx, err := engine.NewGameContext(engine.Options{
		Level:      level,
		Width:      cfg.ScreenWidth,
		Height:     cfg.ScreenHeight,
		Surface:    display,
		Buzzer:     buzzer,
		Buttons:    keypad,
		Background: cfg.BackgroundColor(),
		DirtyMode:  cfg.DirtyMode(),
		TonePeriod: cfg.FenceTonePeriod,
		Jitter:     cfg.SpeedJitter,
		Rand:       newRand(cfg.Seed),
	})
	if err != nil {
		return err
	}

	eventChan := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	done := make(chan struct{})
	defer close(done)
	core.Go(func() { pollEvents(screen, eventChan, quit, done) })

	if !display.Fits() {
		log.Printf("terminal too small for %dx%d, expected %d rows", cfg.ScreenWidth, cfg.ScreenHeight, render.Rows(cfg.ScreenHeight))
	}

	ctx.ShowWelcome()
	if !waitWelcome(ctx, display, keys, eventChan, quit, cfg.WelcomeDuration()) {
		return nil
	}
	ctx.Start()

	scheduler := engine.NewClockScheduler(ctx, ctx.Clock, cfg.TickInterval())
	scheduler.Start()
	defer scheduler.Stop()
	log.Printf("started: level %s, tick %v", level.Name, cfg.TickInterval())

	for {
		select {
		case <-quit:
			return nil

		case <-ctx.RedrawSignal():
			ctx.Frame()

		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				w, h := ev.Size()
				display.Resize(w, h)
				ctx.Repaint()

			case *tcell.EventKey:
				entry := keys.Lookup(ev)
				switch entry.Action {
				case input.ActionQuit:
					log.Printf("quit after %d ticks: %v", scheduler.TickCount(), ctx.Status.Snapshot())
					return nil
				case input.ActionRestart:
					if ctx.Restart() {
						keypad.Release()
					}
				case input.ActionPause:
					keypad.Release()
					ctx.TogglePause()
				case input.ActionButton:
					keypad.Press(entry.Button)
				}
			}
		}
	}
}

// pollEvents forwards terminal events until the screen closes, which closes quit,
// or until done is closed
func pollEvents(screen tcell.Screen, events chan<- tcell.Event, quit chan<- struct{}, done <-chan struct{}) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			close(quit)
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// waitWelcome holds the welcome card until a key or the timeout
// Returns false when the player quit instead
func waitWelcome(ctx *engine.GameContext, display *render.TerminalDisplay, keys *input.KeyTable, events <-chan tcell.Event, quit <-chan struct{}, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()

	for {
		select {
		case <-timer.C:
			return true
		case <-quit:
			return false
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				w, h := ev.Size()
				display.Resize(w, h)
				ctx.ShowWelcome()
			case *tcell.EventKey:
				return keys.Lookup(ev).Action != input.ActionQuit
			}
		}
	}
}
