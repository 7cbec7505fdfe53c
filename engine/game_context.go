package engine

import (
	"fmt"
	"log"
	"sync/atomic"

	"golang.org/x/exp/rand"

	"github.com/lixenwraith/shape-motion/audio"
	"github.com/lixenwraith/shape-motion/core"
	"github.com/lixenwraith/shape-motion/engine/status"
	"github.com/lixenwraith/shape-motion/game"
	"github.com/lixenwraith/shape-motion/input"
	"github.com/lixenwraith/shape-motion/physics"
	"github.com/lixenwraith/shape-motion/render"
	"github.com/lixenwraith/shape-motion/scene"
)

// Options configures a GameContext
type Options struct {
	Level      game.Level
	Width      int
	Height     int
	Surface    render.Surface
	Buzzer     audio.Buzzer
	Buttons    input.ButtonReader
	Background core.RGB
	DirtyMode  render.DirtyMode
	TonePeriod int
	Jitter     int
	Rand       *rand.Rand
	Clock      *PausableClock
}

// GameContext owns one running game: the scene, the life counter, and the
// two tasks that share them
// Tick runs on the scheduler goroutine, Frame on the redraw goroutine; Mask
// is the only synchronization between them
type GameContext struct {
	Scene  *scene.Scene
	Roles  game.Roles
	Fence  core.Region
	State  *game.State
	Level  game.Level
	Layout Layout
	Clock  *PausableClock

	Mask       Mask
	Compositor *render.Compositor
	Surface    render.Surface
	Presenter  *Presenter
	Buttons    input.ButtonReader
	Status     *status.Registry

	redraw chan struct{}

	statTicks    *atomic.Int64
	statContacts *atomic.Int64
	statBounces  *atomic.Int64
	statFrames   *atomic.Int64
	statPixels   *atomic.Int64
}

type noButtons struct{}

func (noButtons) ReadButtons() input.Buttons { return 0 }

// NewGameContext builds the level and wires the compositor and presenter
func NewGameContext(opts Options) (*GameContext, error) {
	if opts.Surface == nil {
		return nil, fmt.Errorf("game context: nil surface")
	}
	sc, roles, err := opts.Level.Build(opts.Jitter, opts.Rand)
	if err != nil {
		return nil, fmt.Errorf("game context: %w", err)
	}
	if opts.Buttons == nil {
		opts.Buttons = noButtons{}
	}
	if opts.Clock == nil {
		opts.Clock = NewPausableClock(nil)
	}

	l := Layout{Width: opts.Width, Height: opts.Height}
	reg := status.NewRegistry()
	return &GameContext{
		Scene:      sc,
		Roles:      roles,
		Fence:      game.Fence(sc, roles),
		State:      game.NewState(),
		Level:      opts.Level,
		Layout:     l,
		Clock:      opts.Clock,
		Compositor: render.NewCompositor(opts.Surface, opts.Width, opts.Height, opts.Background, opts.DirtyMode),
		Surface:    opts.Surface,
		Presenter:  NewPresenter(opts.Surface, opts.Buzzer, l, opts.TonePeriod),
		Buttons:    opts.Buttons,
		Status:     reg,
		redraw:     make(chan struct{}, 1),

		statTicks:    reg.Int("engine.ticks"),
		statContacts: reg.Int("game.contacts"),
		statBounces:  reg.Int("physics.bounces"),
		statFrames:   reg.Int("render.frames"),
		statPixels:   reg.Int("render.pixels"),
	}, nil
}

// Tick advances motion by one step and applies the held buttons to the ball
func (ctx *GameContext) Tick() {
	ctx.Mask.Lock()
	buttons := ctx.Buttons.ReadButtons()
	rep := physics.Advance(ctx.Scene, ctx.Roles, ctx.Fence, ctx.State, ctx.Presenter)
	if !ctx.State.Terminal() {
		if v, ok := input.Steer(buttons); ok {
			ctx.Scene.Mover(ctx.Roles.Ball).Velocity = v
		}
	}
	state := ctx.State.String()
	ctx.Mask.Unlock()

	if rep.Skipped {
		return
	}
	ctx.statTicks.Add(1)
	ctx.statContacts.Add(int64(rep.Contacts))
	ctx.statBounces.Add(int64(rep.Bounces))
	ctx.RequestRedraw()

	if rep.Contacts > 0 {
		log.Printf("contact: %s", state)
	}
	switch {
	case rep.Won:
		log.Printf("outcome: won")
	case rep.Lost:
		log.Printf("outcome: lost")
	}
}

// RequestRedraw signals the redraw task; signals coalesce
func (ctx *GameContext) RequestRedraw() {
	select {
	case ctx.redraw <- struct{}{}:
	default:
	}
}

// RedrawSignal is received by the redraw task
func (ctx *GameContext) RedrawSignal() <-chan struct{} {
	return ctx.redraw
}

// Frame composites pending motion and queued presentation, then shows it
// Once a terminal card is up the play field is left alone
func (ctx *GameContext) Frame() int {
	n := 0
	if ctx.Presenter.Outcome() == game.Playing {
		n = ctx.Compositor.Frame(ctx.Scene, &ctx.Mask)
		for i := range ctx.Scene.MoverCount() {
			ctx.Presenter.Damage(ctx.Compositor.DirtyRegion(ctx.Scene.MoverLayer(scene.MoverID(i))))
		}
	}
	ctx.Presenter.Flush(ctx.Compositor)
	ctx.Surface.Show()
	ctx.statFrames.Add(1)
	ctx.statPixels.Add(int64(n))
	return n
}

// Start paints the full play field and HUD
func (ctx *GameContext) Start() {
	ctx.Mask.Do(ctx.Scene.Commit)
	ctx.Compositor.Redraw(ctx.Scene)
	ctx.Presenter.Invalidate()
	ctx.Presenter.Flush(ctx.Compositor)
	ctx.Surface.Show()
}

// ShowWelcome draws the welcome card
func (ctx *GameContext) ShowWelcome() {
	DrawSplash(ctx.Compositor, ctx.Surface, ctx.Layout, SplashWelcome)
	ctx.Surface.Show()
}

// Repaint redraws whatever is currently up, after a resize
func (ctx *GameContext) Repaint() {
	ctx.Presenter.Invalidate()
	if ctx.Presenter.Outcome() == game.Playing {
		ctx.Compositor.Redraw(ctx.Scene)
	}
	ctx.Presenter.Flush(ctx.Compositor)
	ctx.Surface.Show()
}

// Restart returns the level to its initial layout and life counter
// Only a finished run restarts; returns false while still playing
func (ctx *GameContext) Restart() bool {
	restarted := false
	ctx.Mask.Do(func() {
		if !ctx.State.Terminal() {
			return
		}
		ctx.Scene.Reset()
		ctx.State.Reset()
		ctx.Presenter.Reset()
		restarted = true
	})
	if !restarted {
		return false
	}
	ctx.Start()
	log.Printf("restart: level %s", ctx.Level.Name)
	return true
}

// TogglePause stops or resumes game time
func (ctx *GameContext) TogglePause() bool {
	paused := ctx.Clock.Toggle()
	if paused {
		ctx.Presenter.FenceTone(false)
	}
	log.Printf("paused: %v", paused)
	return paused
}
