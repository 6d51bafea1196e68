// Package palette maps a color phase in [0,1) to terminal colors.
//
// Each named palette is a fixed (amplitude, bias, phase-offset) tuple per
// RGB channel. Channels are sine functions of the phase, quantized into the
// xterm 6x6x6 color cube for 256-color output or clamped to 24-bit RGB for
// truecolor output. Palettes are pure: the same (palette, t) always yields
// the same color.
package palette

import (
	"math"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

const twoPi = 2 * math.Pi

// channel is one sine color component: bias + amp*sin(2*pi*t + off).
type channel struct {
	amp  float64
	bias float64
	off  float64
}

// level evaluates the channel on the cube scale [0,5] without quantization.
func (c channel) level(t float64) float64 {
	return c.bias + c.amp*math.Sin(twoPi*t+c.off)
}

// Palette is a named pure mapping from color phase to color.
type Palette struct {
	name    string
	r, g, b channel
}

// Name returns the palette's registry name.
func (p Palette) Name() string { return p.name }

// Index256 returns the xterm color cube index (16-231) for phase t.
// Channel levels are rounded to the nearest integer and clamped to [0,5].
func (p Palette) Index256(t float64) uint8 {
	r := clamp6(int(math.Round(p.r.level(t))))
	g := clamp6(int(math.Round(p.g.level(t))))
	b := clamp6(int(math.Round(p.b.level(t))))
	return Cube256(r, g, b)
}

// TrueColor returns 24-bit RGB for phase t, for terminals that support it.
// The continuous channel levels are normalized from the cube scale and
// clamped into gamut before conversion to 8-bit components.
func (p Palette) TrueColor(t float64) (r, g, b uint8) {
	c := colorful.Color{
		R: p.r.level(t) / 5,
		G: p.g.level(t) / 5,
		B: p.b.level(t) / 5,
	}.Clamped()
	return c.RGB255()
}

func clamp6(v int) int {
	if v < 0 {
		return 0
	}
	if v > 5 {
		return 5
	}
	return v
}

// Cube256 returns the xterm 256-palette index for an RGB cube coordinate.
// r, g, b must be in [0,5]; out-of-range values are clamped.
func Cube256(r, g, b int) uint8 {
	return uint8(16 + 36*clamp6(r) + 6*clamp6(g) + clamp6(b))
}

// builtin palettes in presentation order
var builtin = []Palette{
	{
		name: "rainbow",
		r:    channel{2.5, 2.5, 0},
		g:    channel{2.5, 2.5, 2.094},
		b:    channel{2.5, 2.5, 4.189},
	},
	{
		name: "dracula",
		r:    channel{3.0, 2.0, 0.5},
		g:    channel{2.0, 1.0, 3.5},
		b:    channel{2.0, 3.0, 1.2},
	},
	{
		name: "ocean",
		r:    channel{1.5, 0.5, 4.0},
		g:    channel{2.5, 2.0, 1.0},
		b:    channel{1.5, 3.5, 0},
	},
	{
		name: "fire",
		r:    channel{1.5, 3.5, 0},
		g:    channel{2.0, 1.5, 0.8},
		b:    channel{0.5, 0.5, 1.6},
	},
	{
		name: "pastel",
		r:    channel{1.5, 3.5, 0},
		g:    channel{1.5, 3.0, 2.094},
		b:    channel{1.5, 3.5, 4.189},
	},
	{
		name: "neon",
		r:    channel{2.5, 2.5, 0},
		g:    channel{4.0, 1.0, 2.5},
		b:    channel{3.0, 2.0, 4.8},
	},
	{
		name: "aurora",
		r:    channel{2.0, 1.0, 3.8},
		g:    channel{2.0, 3.0, 0},
		b:    channel{2.5, 2.0, 1.8},
	},
	{
		// matrix varies only the green channel
		name: "matrix",
		g:    channel{3.5, 1.5, 0},
	},
}

// Lookup resolves a palette by name, case-insensitively.
func Lookup(name string) (Palette, bool) {
	for _, p := range builtin {
		if strings.EqualFold(p.name, name) {
			return p, true
		}
	}
	return Palette{}, false
}

// Names returns the built-in palette names in presentation order.
func Names() []string {
	names := make([]string, len(builtin))
	for i, p := range builtin {
		names[i] = p.name
	}
	return names
}

// All returns the built-in palettes in presentation order.
func All() []Palette {
	out := make([]Palette, len(builtin))
	copy(out, builtin)
	return out
}
