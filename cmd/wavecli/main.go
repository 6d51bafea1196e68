package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"runtime/debug"

	"github.com/OpalAayan/wavecli/audio"
	"github.com/OpalAayan/wavecli/constant"
	"github.com/OpalAayan/wavecli/render"
	"github.com/OpalAayan/wavecli/terminal"
	"github.com/OpalAayan/wavecli/wave"
)

func main() {
	// Panic recovery: restore the terminal before the stack trace lands
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\x1b[31mwavecli crashed: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(constant.ExitErr)
		}
	}()

	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run parses arguments and drives one animation session. It returns the
// process exit code; every exit path restores the terminal first.
func run(args []string, out, errW io.Writer) int {
	var o options
	fs := newFlagSet(&o)
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(errW, "%s %v\n", errorPrefix, err)
		printHelp(errW)
		return constant.ExitErr
	}

	if o.help {
		printHelp(out)
		return constant.ExitOK
	}
	if o.version {
		fmt.Fprintf(out, "wavecli %s\n", constant.Version)
		return constant.ExitOK
	}

	cfg, err := buildConfig(o)
	if err != nil {
		fmt.Fprintf(errW, "%s %v\n", errorPrefix, err)
		return constant.ExitErr
	}

	if logFile := setupLogging(o.debug); logFile != nil {
		defer logFile.Close()
	}

	flags := terminal.NewNotifier()
	flags.Start()
	defer flags.Stop()

	if o.audio {
		drone := &audio.Engine{}
		if err := drone.Start(wave.Generate(cfg.NumWaves, cfg.Glyph)); err != nil {
			// Decorative only; keep rendering without sound
			log.Printf("audio unavailable: %v", err)
		} else {
			defer drone.Stop()
		}
	}

	terminal.Setup(out)
	defer terminal.Restore(out)

	if err := render.NewLoop(cfg, out, flags).Run(); err != nil {
		fmt.Fprintf(errW, "\x1b[1;31mfatal:\x1b[0m %v\n", err)
		if errors.Is(err, render.ErrAllocation) {
			return constant.ExitOOM
		}
		return constant.ExitErr
	}
	return constant.ExitOK
}
