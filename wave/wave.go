// Package wave holds the animated sine contributors and their generation.
package wave

// Parameter ranges interpolated across the wave set. Wave i of n sits at
// t = i/(n-1) on each ramp; denser waves are slower and flatter.
const (
	freqBase  = 0.06 // radians per column
	freqSpan  = 0.10
	ampBase   = 0.85 // fraction of half-height
	ampSpan   = 0.50
	speedBase = 0.030 // radians per tick
	speedSpan = 0.055
)

// defaultGlyphs cycle per wave index when no override is given.
var defaultGlyphs = []string{"█", "▓", "░", "●", "◆", "╳", "◈", "▪", "⬡", "✦"}

// Wave is one sine contributor. Phase accumulates radians across ticks and
// has no fixed range; wrap is implicit in the periodic sampling.
type Wave struct {
	Freq       float64 // radians per column
	Amp        float64 // fraction of half-height
	PhaseSpeed float64 // radians per tick
	Glyph      string
	Phase      float64
}

// Generate builds n waves deterministically. glyphOverride, when non-empty,
// replaces the per-wave default glyphs globally. The caller guarantees
// 1 <= n <= 50.
func Generate(n int, glyphOverride string) []Wave {
	waves := make([]Wave, n)
	for i := range waves {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		waves[i] = Wave{
			Freq:       freqBase + freqSpan*t,
			Amp:        ampBase - ampSpan*t,
			PhaseSpeed: speedBase + speedSpan*t,
			Glyph:      glyphOverride,
		}
		if glyphOverride == "" {
			waves[i].Glyph = defaultGlyphs[i%len(defaultGlyphs)]
		}
	}
	return waves
}

// Advance moves the phase forward one tick. Sampling for a tick uses the
// pre-advance phase: callers sample every wave first, then advance all.
func (w *Wave) Advance(speedMult float64) {
	w.Phase += w.PhaseSpeed * speedMult
}
