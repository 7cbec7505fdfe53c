package render

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/shape-motion/core"
)

// halfBlock shows the upper pixel as foreground and the lower as background
const halfBlock = '▀'

// TerminalDisplay maps the pixel contract onto a tcell screen
// Each terminal cell carries two vertically stacked pixels, so a 128x160
// display needs 128 columns and 80 rows. The pixel grid is centered in the
// terminal and a Framebuffer keeps the pixels for cell recomposition.
type TerminalDisplay struct {
	mu      sync.Mutex
	screen  tcell.Screen
	fb      *Framebuffer
	cursor  areaCursor
	originX int
	originY int
}

// NewTerminalDisplay wraps an initialized tcell screen
func NewTerminalDisplay(screen tcell.Screen, width, height int, bg core.RGB) *TerminalDisplay {
	d := &TerminalDisplay{
		screen: screen,
		fb:     NewFramebuffer(width, height, bg),
	}
	termW, termH := screen.Size()
	d.layout(termW, termH)
	return d
}

// Rows returns the terminal rows needed for the pixel height
func Rows(height int) int {
	return (height + 1) / 2
}

func (d *TerminalDisplay) layout(termW, termH int) {
	d.originX = max((termW-d.fb.Width())/2, 0)
	d.originY = max((termH-Rows(d.fb.Height()))/2, 0)
}

// Fits reports whether the terminal can show the whole pixel grid
func (d *TerminalDisplay) Fits() bool {
	termW, termH := d.screen.Size()
	return termW >= d.fb.Width() && termH >= Rows(d.fb.Height())
}

// toStyle converts a pixel pair into the half-block cell style
func toStyle(upper, lower core.RGB) tcell.Style {
	return tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(int32(upper.R), int32(upper.G), int32(upper.B))).
		Background(tcell.NewRGBColor(int32(lower.R), int32(lower.G), int32(lower.B)))
}

func (d *TerminalDisplay) SetArea(r core.Region) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cursor.set(r)
	d.fb.SetArea(r)
}

func (d *TerminalDisplay) WriteColor(c core.RGB) {
	d.mu.Lock()
	defer d.mu.Unlock()

	p, ok := d.cursor.advance()
	d.fb.WriteColor(c)
	if !ok {
		return
	}
	d.paintCell(p.X, p.Y/2)
}

// paintCell recomposes one terminal cell from its two pixels
func (d *TerminalDisplay) paintCell(x, row int) {
	if x < 0 || row < 0 || x >= d.fb.Width() || 2*row >= d.fb.Height() {
		return
	}
	upper := d.fb.At(x, 2*row)
	lower := upper
	if 2*row+1 < d.fb.Height() {
		lower = d.fb.At(x, 2*row+1)
	}
	d.screen.SetContent(d.originX+x, d.originY+row, halfBlock, nil, toStyle(upper, lower))
}

// DrawString writes text over the cells covering pixel row y
func (d *TerminalDisplay) DrawString(x, y int, s string, fg, bg core.RGB) {
	d.mu.Lock()
	defer d.mu.Unlock()

	row := y / 2
	if row < 0 || 2*row >= d.fb.Height() {
		return
	}
	style := toStyle(fg, bg)
	col := x
	for _, r := range s {
		if col >= 0 && col < d.fb.Width() {
			d.screen.SetContent(d.originX+col, d.originY+row, r, nil, style)
		}
		col++
	}
}

// Show presents the pending cell updates
func (d *TerminalDisplay) Show() {
	d.screen.Show()
}

// Resize re-centers the grid and repaints every cell from the kept pixels
// Text overlays are lost and must be redrawn by the caller
func (d *TerminalDisplay) Resize(termW, termH int) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.screen.Clear()
	d.layout(termW, termH)
	for row := 0; 2*row < d.fb.Height(); row++ {
		for x := 0; x < d.fb.Width(); x++ {
			d.paintCell(x, row)
		}
	}
	d.screen.Sync()
}
