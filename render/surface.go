// Package render owns the terminal surface, the star-field generator, and
// the tick loop that drives sampling, serialization, and frame pacing.
package render

import (
	"math"

	"github.com/OpalAayan/wavecli/constant"
	"github.com/OpalAayan/wavecli/palette"
	"github.com/OpalAayan/wavecli/terminal"
	"github.com/OpalAayan/wavecli/wave"
)

// ownerNone marks a background cell.
const ownerNone = -1

// Surface is the render target for the current geometry. It owns three
// buffers sized exactly to rows*cols: the owner grid (which wave occupies a
// cell), the color phase grid, and the serialized frame buffer. All three
// are reallocated wholesale on resize; old contents are discarded.
type Surface struct {
	rows, cols int
	owner      []int16
	colorPhase []float64
	frame      []byte
}

// NewSurface allocates a surface for the given geometry.
func NewSurface(rows, cols int) *Surface {
	s := &Surface{}
	s.Resize(rows, cols)
	return s
}

// Rows returns the current row count.
func (s *Surface) Rows() int { return s.rows }

// Cols returns the current column count.
func (s *Surface) Cols() int { return s.cols }

// Resize reallocates every buffer for the new geometry. Shape is a pure
// function of the geometry, not of resize history. The caller is responsible
// for clearing the physical screen so no stale glyphs survive outside the
// new bounds.
func (s *Surface) Resize(rows, cols int) {
	cells := rows * cols
	s.rows = rows
	s.cols = cols
	s.owner = make([]int16, cells)
	s.colorPhase = make([]float64, cells)
	s.frame = make([]byte, 0, cells*constant.MaxBytesPerCell+constant.FrameBufPadding)
	s.Clear()
}

// Clear resets every cell to background.
func (s *Surface) Clear() {
	for i := range s.owner {
		s.owner[i] = ownerNone
	}
}

// Sample plots one wave across every column using its current phase. Cells
// already occupied by a lower-index wave are overwritten; the highest index
// sampled in a tick wins the cell.
func (s *Surface) Sample(w *wave.Wave, idx int, frame uint64) {
	midRow := s.rows / 2
	halfHeight := float64(midRow)
	for x := 0; x < s.cols; x++ {
		y := midRow + int(math.Round(w.Amp*halfHeight*math.Sin(w.Freq*float64(x)+w.Phase)))
		if y < 0 || y >= s.rows {
			continue
		}
		i := y*s.cols + x
		s.owner[i] = int16(idx)
		s.colorPhase[i] = float64(x)/float64(s.cols) + float64(frame)/constant.FrameColorDivisor
	}
}

// Serialize encodes the sampled grid into the frame buffer and returns the
// resulting byte slice, owned by the surface until the next call. The frame
// starts with a cursor-home escape; rows are newline-joined. Occupied cells
// emit a palette color escape, the wave's glyph, and a reset. Background
// cells emit a space, or occasionally a dim gray star chosen by the
// generator, which advances on every background cell regardless.
//
// A capacity guard truncates the frame when the next cell's worst case would
// not fit. The partial frame is still valid escape-sequence output.
func (s *Surface) Serialize(waves []wave.Wave, pal palette.Palette, mode terminal.ColorMode, rng *xorshift) []byte {
	buf := s.frame[:0]
	limit := cap(s.frame)
	buf = append(buf, terminal.Home...)

	for y := 0; y < s.rows; y++ {
		for x := 0; x < s.cols; x++ {
			if len(buf)+constant.MaxBytesPerCell >= limit {
				s.frame = buf
				return buf
			}

			i := y*s.cols + x
			w := s.owner[i]
			if w < 0 {
				// Star-field background
				if rng.next()%constant.StarfieldDensity == 0 {
					gray := constant.StarfieldGrayBase + int((rng.state>>8)%constant.StarfieldGrayRange)
					buf = terminal.AppendFg256(buf, uint8(gray))
					buf = append(buf, '.')
					buf = append(buf, terminal.Reset...)
				} else {
					buf = append(buf, ' ')
				}
				continue
			}

			t := math.Mod(s.colorPhase[i]+float64(w)*constant.WaveColorOffset, 1.0)
			if t < 0 {
				t += 1.0
			}
			if mode == terminal.ColorModeTrueColor {
				r, g, b := pal.TrueColor(t)
				buf = terminal.AppendFgRGB(buf, r, g, b)
			} else {
				buf = terminal.AppendFg256(buf, pal.Index256(t))
			}

			// Glyph overrides can be arbitrarily long; guard separately
			glyph := waves[w].Glyph
			if len(buf)+len(glyph)+len(terminal.Reset) < limit {
				buf = append(buf, glyph...)
			}
			buf = append(buf, terminal.Reset...)
		}
		if y < s.rows-1 {
			buf = append(buf, '\n')
		}
	}

	s.frame = buf
	return buf
}
