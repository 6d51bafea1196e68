package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"

	"github.com/OpalAayan/wavecli/constant"
	"github.com/OpalAayan/wavecli/palette"
	"github.com/OpalAayan/wavecli/render"
	"github.com/OpalAayan/wavecli/terminal"
)

const errorPrefix = "\x1b[1;31merror:\x1b[0m"

type options struct {
	speed   float64
	fps     int
	color   string
	glyph   string
	waves   int
	mode    string
	audio   bool
	debug   bool
	version bool
	help    bool
}

// newFlagSet wires the CLI surface. Errors and usage output are handled by
// the caller, so the flag set itself stays quiet.
func newFlagSet(o *options) *pflag.FlagSet {
	fs := pflag.NewFlagSet("wavecli", pflag.ContinueOnError)
	fs.SortFlags = false
	fs.SetOutput(io.Discard)

	fs.Float64VarP(&o.speed, "speed", "s", constant.DefaultSpeed, "speed multiplier")
	fs.IntVarP(&o.fps, "fps", "f", constant.DefaultFPS, "target frames per second")
	fs.StringVarP(&o.color, "color", "c", constant.DefaultPalette, "color palette")
	fs.StringVarP(&o.glyph, "char", "g", "", "wave glyph character")
	fs.IntVarP(&o.waves, "waves", "n", constant.DefaultWaves, "number of waves")
	fs.StringVarP(&o.mode, "mode", "m", "256", "color mode: 256, truecolor, auto")
	fs.BoolVarP(&o.audio, "audio", "a", false, "play a sine drone matching the waves")
	fs.BoolVar(&o.debug, "debug", false, "write a debug log to logs/")
	fs.BoolVarP(&o.version, "version", "v", false, "print version")
	fs.BoolVarP(&o.help, "help", "h", false, "show this help")

	return fs
}

// buildConfig validates the parsed options into a render config. Unknown
// palettes and modes are reported with the valid choices; numeric ranges are
// checked by Config.Validate. Nothing is silently coerced.
func buildConfig(o options) (render.Config, error) {
	pal, ok := palette.Lookup(o.color)
	if !ok {
		return render.Config{}, fmt.Errorf("unknown palette '%s'\navailable: %s",
			o.color, strings.Join(palette.Names(), ", "))
	}

	var mode terminal.ColorMode
	switch o.mode {
	case "256":
		mode = terminal.ColorMode256
	case "truecolor", "true", "24bit":
		mode = terminal.ColorModeTrueColor
	case "auto":
		mode = terminal.DetectColorMode()
	default:
		return render.Config{}, fmt.Errorf("unknown color mode '%s' (valid: 256, truecolor, auto)", o.mode)
	}

	cfg := render.Config{
		SpeedMult: o.speed,
		FPS:       o.fps,
		Palette:   pal,
		Glyph:     o.glyph,
		NumWaves:  o.waves,
		ColorMode: mode,
	}
	if err := cfg.Validate(); err != nil {
		return render.Config{}, err
	}
	return cfg, nil
}
