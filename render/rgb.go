package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/pulse-sphere/parameter"
)

// RGB is a truecolor cell color.
type RGB struct {
	R, G, B uint8
}

// Color converts to a tcell color for screen output.
func (c RGB) Color() tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Dim scales the color toward black, f in [0,1].
func (c RGB) Dim(f float64) RGB {
	if f < 0 {
		f = 0
	}
	if f > 1 {
		f = 1
	}
	return RGB{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
	}
}

// Blend interpolates perceptually in Lab space. Channel-wise RGB lerp turns
// muddy between distant hues; Lab keeps the gradient clean.
func Blend(a, b RGB, t float64) RGB {
	ca := colorful.Color{R: float64(a.R) / 255, G: float64(a.G) / 255, B: float64(a.B) / 255}
	cb := colorful.Color{R: float64(b.R) / 255, G: float64(b.G) / 255, B: float64(b.B) / 255}
	m := ca.BlendLab(cb, t).Clamped()
	return RGB{
		R: uint8(m.R * 255),
		G: uint8(m.G * 255),
		B: uint8(m.B * 255),
	}
}

// mustHex parses a #rrggbb palette constant; malformed constants are a
// programmer error.
func mustHex(s string) RGB {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return RGB{
		R: uint8(c.R * 255),
		G: uint8(c.G * 255),
		B: uint8(c.B * 255),
	}
}

var (
	paletteHead = mustHex(parameter.PaletteHeadHex)
	paletteTail = mustHex(parameter.PaletteTailHex)
	lineTint    = mustHex(parameter.LineTintHex)
)

// PointColor returns the palette blend for spiral position t in [0,1].
func PointColor(t float64) RGB {
	return Blend(paletteHead, paletteTail, t)
}
