package render

import (
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/OpalAayan/wavecli/constant"
	"github.com/OpalAayan/wavecli/palette"
	"github.com/OpalAayan/wavecli/terminal"
	"github.com/OpalAayan/wavecli/wave"
)

// ErrAllocation marks a fatal buffer allocation failure during resize.
// The loop cannot run without valid buffers; callers map this to the
// out-of-memory exit code.
var ErrAllocation = errors.New("buffer allocation failed")

// Config holds the validated parameters for one animation session.
type Config struct {
	SpeedMult float64
	FPS       int
	Palette   palette.Palette
	Glyph     string // empty means per-wave defaults
	NumWaves  int
	ColorMode terminal.ColorMode
}

// Validate checks the numeric ranges. Palette resolution happens at CLI
// parse time so unknown names can be reported with the available list.
func (c Config) Validate() error {
	if c.SpeedMult <= 0 {
		return fmt.Errorf("speed must be a positive number, got %g", c.SpeedMult)
	}
	if c.FPS < constant.MinFPS || c.FPS > constant.MaxFPS {
		return fmt.Errorf("fps must be between %d and %d, got %d", constant.MinFPS, constant.MaxFPS, c.FPS)
	}
	if c.NumWaves < constant.MinWaves || c.NumWaves > constant.MaxWaves {
		return fmt.Errorf("wave count must be between %d and %d, got %d", constant.MinWaves, constant.MaxWaves, c.NumWaves)
	}
	return nil
}

// Loop drives the per-tick pipeline: poll flags, resize if requested, clear,
// sample every wave, advance phases, serialize, emit, sleep. It is the sole
// owner and sole mutator of all buffers; the notifier's signal goroutine
// only sets flags.
type Loop struct {
	cfg   Config
	out   io.Writer
	flags *terminal.Notifier

	waves   []wave.Wave
	surface *Surface
	rng     *xorshift
	frame   uint64

	// injection points for tests
	size  func() (rows, cols int)
	sleep func(time.Duration)
}

// NewLoop builds a loop from a validated config. The surface is not
// allocated here: the notifier's pre-set resize flag makes the first tick
// perform the initial geometry read and allocation.
func NewLoop(cfg Config, out io.Writer, flags *terminal.Notifier) *Loop {
	return &Loop{
		cfg:   cfg,
		out:   out,
		flags: flags,
		waves: wave.Generate(cfg.NumWaves, cfg.Glyph),
		rng:   newXorshift(constant.StarfieldSeed),
		size:  terminal.Size,
		sleep: time.Sleep,
	}
}

// Run blocks until the quit flag is observed or a resize allocation fails.
// Write errors are ignored: a failed write drops one frame's visible update
// and nothing else.
func (l *Loop) Run() error {
	delay := time.Second / time.Duration(l.cfg.FPS)
	for {
		if l.flags.QuitRequested() {
			return nil
		}
		if l.flags.TakeResize() {
			rows, cols := l.size()
			if err := l.resize(rows, cols); err != nil {
				return err
			}
			// Drop stale glyphs outside the new bounds
			l.out.Write(terminal.Clear)
		}
		l.Tick()
		l.sleep(delay)
	}
}

// Tick produces exactly one frame: clear, sample all waves in index order,
// advance all phases, serialize, emit as one write.
func (l *Loop) Tick() {
	l.surface.Clear()
	for i := range l.waves {
		l.surface.Sample(&l.waves[i], i, l.frame)
	}
	for i := range l.waves {
		l.waves[i].Advance(l.cfg.SpeedMult)
	}
	frame := l.surface.Serialize(l.waves, l.cfg.Palette, l.cfg.ColorMode, l.rng)
	if _, err := l.out.Write(frame); err != nil {
		log.Printf("frame %d write failed: %v", l.frame, err)
	}
	l.frame++
}

// Frame returns the number of completed ticks.
func (l *Loop) Frame() uint64 { return l.frame }

// resize reallocates the surface for the new geometry. A runtime allocation
// panic is converted into ErrAllocation naming the failing shape, since the
// loop has no degraded mode to fall back to.
func (l *Loop) resize(rows, cols int) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: surface %dx%d: %v", ErrAllocation, rows, cols, r)
		}
	}()
	if l.surface == nil {
		l.surface = NewSurface(rows, cols)
	} else {
		l.surface.Resize(rows, cols)
	}
	return nil
}
