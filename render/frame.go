package render

import (
	"github.com/gdamore/tcell/v2"
)

// cell is one framebuffer slot. Zero rune means untouched background.
type cell struct {
	r  rune
	fg RGB
}

// Frame is a cell compositor sized to the terminal. Draw order is the
// layering model: later plots overwrite earlier ones.
type Frame struct {
	cells  []cell
	width  int
	height int
}

// NewFrame creates a frame with the given dimensions.
func NewFrame(width, height int) *Frame {
	f := &Frame{}
	f.Resize(width, height)
	return f
}

// Resize adjusts dimensions, reallocating only when capacity is short.
func (f *Frame) Resize(width, height int) {
	size := width * height
	if cap(f.cells) < size {
		f.cells = make([]cell, size)
	} else {
		f.cells = f.cells[:size]
	}
	f.width = width
	f.height = height
	f.Clear()
}

// Size returns current dimensions.
func (f *Frame) Size() (width, height int) {
	return f.width, f.height
}

// Clear resets every cell to background.
func (f *Frame) Clear() {
	for i := range f.cells {
		f.cells[i] = cell{}
	}
}

// Plot writes one cell; out-of-bounds coordinates are dropped.
func (f *Frame) Plot(x, y int, r rune, fg RGB) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return
	}
	f.cells[y*f.width+x] = cell{r: r, fg: fg}
}

// Flush pushes the frame to the screen and shows it.
func (f *Frame) Flush(screen tcell.Screen) {
	bg := tcell.StyleDefault.Background(tcell.ColorBlack)
	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			c := f.cells[y*f.width+x]
			if c.r == 0 {
				screen.SetContent(x, y, ' ', nil, bg)
				continue
			}
			screen.SetContent(x, y, c.r, nil, bg.Foreground(c.fg.Color()))
		}
	}
	screen.Show()
}
