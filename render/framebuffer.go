package render

import (
	"sync"

	"github.com/lixenwraith/shape-motion/core"
)

// Text is a string recorded by a Framebuffer
type Text struct {
	X, Y   int
	String string
	Fg, Bg core.RGB
}

// Framebuffer is an in-memory Display with a write counter
// Backs the terminal display and stands in for the LCD in tests
type Framebuffer struct {
	mu     sync.Mutex
	width  int
	height int
	pixels []core.RGB
	cursor areaCursor
	writes int
	texts  []Text
}

// NewFramebuffer creates a buffer filled with bg
func NewFramebuffer(width, height int, bg core.RGB) *Framebuffer {
	fb := &Framebuffer{
		width:  width,
		height: height,
		pixels: make([]core.RGB, width*height),
	}
	for i := range fb.pixels {
		fb.pixels[i] = bg
	}
	return fb
}

// Width returns the buffer width
func (fb *Framebuffer) Width() int {
	return fb.width
}

// Height returns the buffer height
func (fb *Framebuffer) Height() int {
	return fb.height
}

// Bounds returns the whole buffer as a region
func (fb *Framebuffer) Bounds() core.Region {
	return core.ScreenRegion(fb.width, fb.height)
}

// At returns the pixel at (x, y), black when out of range
func (fb *Framebuffer) At(x, y int) core.RGB {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	if x < 0 || y < 0 || x >= fb.width || y >= fb.height {
		return core.RGBBlack
	}
	return fb.pixels[y*fb.width+x]
}

func (fb *Framebuffer) SetArea(r core.Region) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	fb.cursor.set(r)
}

func (fb *Framebuffer) WriteColor(c core.RGB) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	fb.put(c)
}

// put writes at the cursor and returns the pixel, skipping off-screen pixels
func (fb *Framebuffer) put(c core.RGB) (core.Point, bool) {
	p, ok := fb.cursor.advance()
	if !ok {
		return p, false
	}
	fb.writes++
	if p.X < 0 || p.Y < 0 || p.X >= fb.width || p.Y >= fb.height {
		return p, false
	}
	fb.pixels[p.Y*fb.width+p.X] = c
	return p, true
}

// Writes returns the number of WriteColor calls that landed in a declared area
func (fb *Framebuffer) Writes() int {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return fb.writes
}

// ResetWrites zeroes the write counter
func (fb *Framebuffer) ResetWrites() {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	fb.writes = 0
}

func (fb *Framebuffer) DrawString(x, y int, s string, fg, bg core.RGB) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	fb.texts = append(fb.texts, Text{X: x, Y: y, String: s, Fg: fg, Bg: bg})
}

// Texts returns the strings drawn so far
func (fb *Framebuffer) Texts() []Text {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	out := make([]Text, len(fb.texts))
	copy(out, fb.texts)
	return out
}

// Show is a no-op; the buffer is always current
func (fb *Framebuffer) Show() {}
