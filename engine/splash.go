package engine

import (
	"github.com/lixenwraith/shape-motion/core"
	"github.com/lixenwraith/shape-motion/game"
	"github.com/lixenwraith/shape-motion/render"
	"github.com/lixenwraith/shape-motion/scene"
	"github.com/lixenwraith/shape-motion/shape"
)

// SplashKind selects a full-screen card
type SplashKind uint8

const (
	SplashWelcome SplashKind = iota
	SplashWon
	SplashLost
)

type splashLine struct {
	x, y int
	text string
}

type splashCard struct {
	wipes []core.RGB // painted in order, the last one stays
	lines []splashLine
}

var splashCards = map[SplashKind]splashCard{
	SplashWelcome: {
		wipes: []core.RGB{core.RGBBlue, core.RGBGreen, core.RGBRed, core.RGBYellow},
		lines: []splashLine{{25, 20, "WELCOME!"}, {35, 30, "LET'S PLAY!"}},
	},
	SplashWon: {
		wipes: []core.RGB{core.RGBYellow, core.RGBGreen, core.RGBRed, core.RGBBlue},
		lines: []splashLine{{25, 20, "CONGRATULATION"}, {35, 30, "YOU WON!"}, {90, 152, "WIN"}},
	},
	SplashLost: {
		wipes: []core.RGB{core.RGBBlue, core.RGBRed, core.RGBBlue, core.RGBRed},
		lines: []splashLine{{35, 40, "YOU LOST!"}},
	},
}

// Layout scales reference coordinates to the screen
type Layout struct {
	Width, Height int
}

func (l Layout) At(x, y int) (int, int) {
	return x * l.Width / game.ReferenceWidth, y * l.Height / game.ReferenceHeight
}

// splashScene builds the notched-rectangle trio over a full-screen backdrop
func splashScene(l Layout, backdrop core.RGB) *scene.Scene {
	sc := scene.New()
	notch := shape.NewNotchedRect(10, 20)

	x, y := l.At(90, 90)
	sc.AddLayer("yellow-notch", notch, core.RGBYellow, core.Point{X: x, Y: y})
	x, y = l.At(40, 90)
	sc.AddLayer("green-notch", notch, core.RGBGreen, core.Point{X: x, Y: y})
	sc.AddLayer("red-notch", notch, core.RGBRed, core.Point{X: l.Width / 2, Y: l.Height / 2})
	sc.AddLayer("backdrop", shape.NewRect(l.Width, l.Height), backdrop, core.Point{X: l.Width / 2, Y: l.Height / 2})
	return sc
}

// DrawSplash wipes the screen, draws the notched trio and the card's text
func DrawSplash(c *render.Compositor, text render.TextOverlay, l Layout, kind SplashKind) {
	card := splashCards[kind]
	for _, w := range card.wipes {
		c.Fill(w)
	}
	c.Redraw(splashScene(l, card.wipes[len(card.wipes)-1]))
	for _, ln := range card.lines {
		x, y := l.At(ln.x, ln.y)
		text.DrawString(x, y, ln.text, core.RGBBlack, core.RGBWhite)
	}
}
