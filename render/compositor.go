package render

import (
	"fmt"
	"sync"

	"github.com/lixenwraith/shape-motion/core"
	"github.com/lixenwraith/shape-motion/scene"
)

// DirtyMode selects the region repainted for a moved layer
type DirtyMode uint8

const (
	// DirtyUnion repaints the union of the previous and current bounds, erasing the old position
	DirtyUnion DirtyMode = iota
	// DirtyCurrent repaints only the current bounds and can leave trails
	DirtyCurrent
)

func (m DirtyMode) String() string {
	if m == DirtyCurrent {
		return "current"
	}
	return "union"
}

// ParseDirtyMode maps a config value to a DirtyMode
func ParseDirtyMode(s string) (DirtyMode, error) {
	switch s {
	case "", "union":
		return DirtyUnion, nil
	case "current":
		return DirtyCurrent, nil
	}
	return DirtyUnion, fmt.Errorf("unknown dirty region mode %q", s)
}

// Compositor repaints the screen regions touched by moving layers
type Compositor struct {
	display    Display
	screen     core.Region
	background core.RGB
	mode       DirtyMode
}

// NewCompositor creates a compositor for a width x height display
func NewCompositor(d Display, width, height int, background core.RGB, mode DirtyMode) *Compositor {
	return &Compositor{
		display:    d,
		screen:     core.ScreenRegion(width, height),
		background: background,
		mode:       mode,
	}
}

// Background returns the color of pixels no layer covers
func (c *Compositor) Background() core.RGB {
	return c.background
}

// Frame commits pending positions with lock held, then repaints dirty regions
// lock excludes the tick task, which is the only writer of Pending
// Returns the number of pixels written
func (c *Compositor) Frame(sc *scene.Scene, lock sync.Locker) int {
	lock.Lock()
	sc.Commit()
	lock.Unlock()

	return c.Repaint(sc)
}

// Repaint paints the dirty region of every moving layer
// Pixels outside those regions are never written
func (c *Compositor) Repaint(sc *scene.Scene) int {
	n := 0
	for i := range sc.MoverCount() {
		n += c.Paint(sc, c.DirtyRegion(sc.MoverLayer(scene.MoverID(i))))
	}
	return n
}

// DirtyRegion returns the area to repaint for a layer after a commit
func (c *Compositor) DirtyRegion(l *scene.Layer) core.Region {
	r := l.Shape.Bounds(l.Current)
	if c.mode == DirtyUnion {
		r = r.Union(l.Shape.Bounds(l.Previous))
	}
	return r
}

// Paint resolves every pixel of r front to back and streams it to the display
func (c *Compositor) Paint(sc *scene.Scene, r core.Region) int {
	r = r.Clip(c.screen)
	if r.Empty() {
		return 0
	}

	c.display.SetArea(r)
	for y := r.TopLeft.Y; y <= r.BottomRight.Y; y++ {
		for x := r.TopLeft.X; x <= r.BottomRight.X; x++ {
			color, ok := sc.Probe(core.Point{X: x, Y: y})
			if !ok {
				color = c.background
			}
			c.display.WriteColor(color)
		}
	}
	return r.Area()
}

// Redraw paints the whole screen, used after a clear or splash
func (c *Compositor) Redraw(sc *scene.Scene) int {
	return c.Paint(sc, c.screen)
}

// Fill paints the whole screen a single color
func (c *Compositor) Fill(color core.RGB) {
	c.display.SetArea(c.screen)
	for range c.screen.Area() {
		c.display.WriteColor(color)
	}
}
