package render

import (
	"bytes"
	"math"
	"testing"

	"github.com/OpalAayan/wavecli/constant"
	"github.com/OpalAayan/wavecli/palette"
	"github.com/OpalAayan/wavecli/terminal"
	"github.com/OpalAayan/wavecli/wave"
)

func mustPalette(t *testing.T, name string) palette.Palette {
	t.Helper()
	p, ok := palette.Lookup(name)
	if !ok {
		t.Fatalf("palette %q not found", name)
	}
	return p
}

// flatWave occupies exactly the mid row in every column.
func flatWave() wave.Wave {
	return wave.Wave{Freq: 0.06, Amp: 0, PhaseSpeed: 0.030, Glyph: "#"}
}

func TestNewSurfaceShape(t *testing.T) {
	s := NewSurface(24, 80)
	if s.Rows() != 24 || s.Cols() != 80 {
		t.Fatalf("expected 24x80, got %dx%d", s.Rows(), s.Cols())
	}
	if len(s.owner) != 24*80 || len(s.colorPhase) != 24*80 {
		t.Errorf("cell buffers not sized to geometry: %d, %d", len(s.owner), len(s.colorPhase))
	}
	wantCap := 24*80*constant.MaxBytesPerCell + constant.FrameBufPadding
	if cap(s.frame) != wantCap {
		t.Errorf("expected frame capacity %d, got %d", wantCap, cap(s.frame))
	}
	for i, o := range s.owner {
		if o != ownerNone {
			t.Fatalf("cell %d not cleared after allocation", i)
		}
	}
}

func TestResizeRoundTrip(t *testing.T) {
	s := NewSurface(24, 80)
	s.Resize(12, 40)
	if len(s.owner) != 12*40 {
		t.Errorf("expected 480 cells after shrink, got %d", len(s.owner))
	}
	s.Resize(24, 80)
	if s.Rows() != 24 || s.Cols() != 80 || len(s.owner) != 24*80 {
		t.Errorf("shape after round trip is not a pure function of geometry")
	}
	wantCap := 24*80*constant.MaxBytesPerCell + constant.FrameBufPadding
	if cap(s.frame) != wantCap {
		t.Errorf("expected frame capacity %d after round trip, got %d", wantCap, cap(s.frame))
	}
}

func TestResizeDiscardsContents(t *testing.T) {
	s := NewSurface(10, 20)
	w := flatWave()
	s.Sample(&w, 0, 0)
	s.Resize(8, 16)
	for i, o := range s.owner {
		if o != ownerNone {
			t.Fatalf("cell %d survived resize", i)
		}
	}
}

func TestClearSerializeBackgroundOnly(t *testing.T) {
	s := NewSurface(10, 20)
	waves := wave.Generate(3, "")
	s.Clear()

	frame := s.Serialize(waves, mustPalette(t, "rainbow"), terminal.ColorMode256, newXorshift(1))
	for _, w := range waves {
		if bytes.Contains(frame, []byte(w.Glyph)) {
			t.Fatalf("background-only frame contains wave glyph %q", w.Glyph)
		}
	}
	if !bytes.HasPrefix(frame, terminal.Home) {
		t.Error("frame must start with cursor home")
	}
}

func TestSampleLastWriterWins(t *testing.T) {
	s := NewSurface(10, 20)
	s.Clear()
	w0, w1 := flatWave(), flatWave()

	s.Sample(&w0, 0, 0)
	s.Sample(&w1, 1, 0)

	mid := s.Rows() / 2
	for x := 0; x < s.Cols(); x++ {
		if got := s.owner[mid*s.Cols()+x]; got != 1 {
			t.Fatalf("column %d: expected owner 1, got %d", x, got)
		}
	}
}

func TestSampleSineRows(t *testing.T) {
	// waves=1, geometry 10x20: glyph cells appear exactly where the sine
	// formula puts them for freq=0.06, amp=0.85, phase=0.
	s := NewSurface(10, 20)
	s.Clear()
	waves := wave.Generate(1, "")
	s.Sample(&waves[0], 0, 0)

	mid := s.Rows() / 2
	for x := 0; x < s.Cols(); x++ {
		want := mid + int(math.Round(0.85*float64(mid)*math.Sin(0.06*float64(x))))
		for y := 0; y < s.Rows(); y++ {
			got := s.owner[y*s.Cols()+x]
			if y == want && got != 0 {
				t.Errorf("column %d: expected glyph at row %d", x, want)
			}
			if y != want && got != ownerNone {
				t.Errorf("column %d: unexpected glyph at row %d", x, y)
			}
		}
	}
}

func TestSampleColorPhase(t *testing.T) {
	s := NewSurface(10, 20)
	s.Clear()
	w := flatWave()
	s.Sample(&w, 0, 100)

	mid := s.Rows() / 2
	x := 7
	want := float64(x)/float64(s.Cols()) + 100.0/constant.FrameColorDivisor
	if got := s.colorPhase[mid*s.Cols()+x]; math.Abs(got-want) > 1e-12 {
		t.Errorf("expected color phase %f, got %f", want, got)
	}
}

func TestSerializeDeterministic(t *testing.T) {
	pal := mustPalette(t, "ocean")
	waves := wave.Generate(2, "")

	run := func() []byte {
		s := NewSurface(12, 40)
		s.Clear()
		for i := range waves {
			w := waves[i]
			s.Sample(&w, i, 0)
		}
		frame := s.Serialize(waves, pal, terminal.ColorMode256, newXorshift(99))
		out := make([]byte, len(frame))
		copy(out, frame)
		return out
	}

	if !bytes.Equal(run(), run()) {
		t.Error("identical seed and sampling must produce byte-identical frames")
	}
}

func TestSerializeMatrixIndices(t *testing.T) {
	// matrix emits only green cube columns: index = 16 + 6*g
	s := NewSurface(6, 12)
	s.Clear()
	w := flatWave()
	s.Sample(&w, 0, 0)

	frame := s.Serialize([]wave.Wave{w}, mustPalette(t, "matrix"), terminal.ColorMode256, newXorshift(1))
	rest := frame
	for {
		i := bytes.Index(rest, []byte("\x1b[38;5;"))
		if i < 0 {
			break
		}
		rest = rest[i+7:]
		m := bytes.IndexByte(rest, 'm')
		if m < 0 {
			t.Fatal("unterminated color escape")
		}
		var idx int
		for _, c := range rest[:m] {
			idx = idx*10 + int(c-'0')
		}
		if idx >= constant.StarfieldGrayBase {
			continue // star dot
		}
		if idx < 16 || idx > 231 || (idx-16)%6 != 0 || (idx-16) > 35 {
			t.Fatalf("matrix frame contains non-green cube index %d", idx)
		}
	}
}

func TestSerializeTrueColor(t *testing.T) {
	s := NewSurface(6, 12)
	s.Clear()
	w := flatWave()
	s.Sample(&w, 0, 0)

	frame := s.Serialize([]wave.Wave{w}, mustPalette(t, "fire"), terminal.ColorModeTrueColor, newXorshift(1))
	if !bytes.Contains(frame, []byte("\x1b[38;2;")) {
		t.Error("truecolor frame must use 38;2;R;G;B escapes")
	}
}

func TestSerializeNewlineJoins(t *testing.T) {
	s := NewSurface(5, 8)
	s.Clear()
	// No stars with a run this short is not guaranteed, but newline count is
	frame := s.Serialize(nil, mustPalette(t, "rainbow"), terminal.ColorMode256, newXorshift(1))
	if got := bytes.Count(frame, []byte("\n")); got != s.Rows()-1 {
		t.Errorf("expected %d newlines, got %d", s.Rows()-1, got)
	}
}

func TestSerializeCapacityGuard(t *testing.T) {
	s := NewSurface(8, 20)
	s.Clear()
	w := flatWave()
	s.Sample(&w, 0, 0)

	// Shrink the frame buffer so the guard must fire mid-frame
	s.frame = make([]byte, 0, 64)
	frame := s.Serialize([]wave.Wave{w}, mustPalette(t, "rainbow"), terminal.ColorMode256, newXorshift(1))
	if len(frame) > 64 {
		t.Errorf("truncated frame exceeds capacity: %d bytes", len(frame))
	}
	if !bytes.HasPrefix(frame, terminal.Home) {
		t.Error("truncated frame must still begin with cursor home")
	}
}

func TestSerializeAfterShrinkStaysInBounds(t *testing.T) {
	// Resize 80x24 -> 40x12 mid-run must not touch anything outside the new
	// cell range.
	s := NewSurface(24, 80)
	waves := wave.Generate(5, "")
	s.Clear()
	for i := range waves {
		s.Sample(&waves[i], i, 0)
	}

	s.Resize(12, 40)
	if len(s.owner) != 12*40 {
		t.Fatalf("expected exactly %d cells, got %d", 12*40, len(s.owner))
	}
	s.Clear()
	for i := range waves {
		s.Sample(&waves[i], i, 1)
	}
	s.Serialize(waves, mustPalette(t, "neon"), terminal.ColorMode256, newXorshift(7))
}
