package engine

import (
	"strconv"
	"sync"
	"time"

	"github.com/lixenwraith/shape-motion/audio"
	"github.com/lixenwraith/shape-motion/core"
	"github.com/lixenwraith/shape-motion/game"
	"github.com/lixenwraith/shape-motion/render"
)

// Contact chirp periods indexed by the life counter after the hit
var contactPeriods = [...]int{0, 1000, 1500, 2500}

const contactChirp = 120 * time.Millisecond

// Presenter is the game's Feedback: audio fires immediately, text and
// splash screens are queued for the redraw task so they never interleave
// with a pixel stream
type Presenter struct {
	mu         sync.Mutex
	text       render.TextOverlay
	buzzer     audio.Buzzer
	layout     Layout
	tonePeriod int

	remaining    int
	hudDirty     bool
	prompt       bool
	promptDrawn  bool
	outcome      game.Outcome
	outcomeDrawn bool
	toneOn       bool
}

// NewPresenter creates a presenter drawing on text and sounding buzzer
// tonePeriod is the fence proximity tone in buzzer cycles
func NewPresenter(text render.TextOverlay, buzzer audio.Buzzer, l Layout, tonePeriod int) *Presenter {
	if buzzer == nil {
		buzzer = audio.Silent{}
	}
	p := &Presenter{
		text:       text,
		buzzer:     buzzer,
		layout:     l,
		tonePeriod: tonePeriod,
	}
	p.reset()
	return p
}

func (p *Presenter) reset() {
	p.remaining = game.LostThreshold
	p.hudDirty = true
	p.prompt = false
	p.promptDrawn = false
	p.outcome = game.Playing
	p.outcomeDrawn = false
	if p.toneOn {
		p.buzzer.SetPeriod(0)
	}
	p.toneOn = false
}

// Reset returns to the start-of-run presentation
func (p *Presenter) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.reset()
}

func (p *Presenter) Contact(s *game.State) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.remaining = s.Remaining()
	p.hudDirty = true
	p.prompt = true
	if i := s.Lives(); i > 0 && i < len(contactPeriods) {
		p.buzzer.Chirp(contactPeriods[i], contactChirp)
	}
}

func (p *Presenter) Won() {
	p.finish(game.Won)
}

func (p *Presenter) Lost() {
	p.finish(game.Lost)
}

// finish latches the first terminal outcome and silences the tone
func (p *Presenter) finish(o game.Outcome) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.outcome != game.Playing {
		return
	}
	p.outcome = o
	if p.toneOn {
		p.toneOn = false
		p.buzzer.SetPeriod(0)
	}
}

func (p *Presenter) FenceTone(on bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.outcome != game.Playing || on == p.toneOn {
		return
	}
	p.toneOn = on
	if on {
		p.buzzer.SetPeriod(p.tonePeriod)
	} else {
		p.buzzer.SetPeriod(0)
	}
}

// Outcome returns the latched outcome
func (p *Presenter) Outcome() game.Outcome {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.outcome
}

// Flush draws queued presentation; runs on the redraw task
// Returns true once a terminal card is on screen, after which the play field
// must not be composited over it
func (p *Presenter) Flush(c *render.Compositor) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.outcome != game.Playing {
		if !p.outcomeDrawn {
			kind := SplashWon
			if p.outcome == game.Lost {
				kind = SplashLost
			}
			DrawSplash(c, p.text, p.layout, kind)
			p.outcomeDrawn = true
		}
		return true
	}

	if p.hudDirty {
		for _, ln := range p.hudLines() {
			p.text.DrawString(ln.x, ln.y, ln.text, core.RGBBlack, core.RGBWhite)
		}
		p.hudDirty = false
	}
	if p.prompt && !p.promptDrawn {
		ln := p.promptLine()
		p.text.DrawString(ln.x, ln.y, ln.text, core.RGBBlack, core.RGBWhite)
		p.promptDrawn = true
	}
	return false
}

// hudLines are the status texts at screen positions
func (p *Presenter) hudLines() []splashLine {
	lx, ly := p.layout.At(50, 2)
	nx, ny := p.layout.At(80, 2)
	return []splashLine{
		{lx, ly, "life:"},
		{nx, ny, strconv.Itoa(p.remaining)},
	}
}

func (p *Presenter) promptLine() splashLine {
	x, y := p.layout.At(40, 152)
	return splashLine{x, y, "Keep Playing"}
}

// textRegion is the pixel area a string occupies: one terminal row, two pixels tall
func textRegion(ln splashLine) core.Region {
	top := ln.y / 2 * 2
	return core.Region{
		TopLeft:     core.Point{X: ln.x, Y: top},
		BottomRight: core.Point{X: ln.x + len(ln.text) - 1, Y: top + 1},
	}
}

// Damage marks HUD text under a repainted region for redraw
func (p *Presenter) Damage(r core.Region) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.outcome != game.Playing || r.Empty() {
		return
	}
	for _, ln := range p.hudLines() {
		if !r.Clip(textRegion(ln)).Empty() {
			p.hudDirty = true
		}
	}
	if p.promptDrawn && !r.Clip(textRegion(p.promptLine())).Empty() {
		p.promptDrawn = false
	}
}

// Invalidate forces the HUD to be redrawn, after a full repaint or resize
func (p *Presenter) Invalidate() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.hudDirty = true
	p.promptDrawn = false
	p.outcomeDrawn = false
}
