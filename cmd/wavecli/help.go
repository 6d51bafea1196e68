package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/OpalAayan/wavecli/constant"
	"github.com/OpalAayan/wavecli/palette"
)

const boxInnerWidth = 43

// boxLine prints one banner row padded to the box width. Padding is by
// display columns, not bytes, so wide glyphs keep the box aligned.
func boxLine(w io.Writer, borderColor, contentColor int, content string) {
	pad := boxInnerWidth - runewidth.StringWidth(content)
	if pad < 0 {
		pad = 0
	}
	fmt.Fprintf(w, "\x1b[38;5;%dm  │\x1b[0m", borderColor)
	if contentColor > 0 {
		fmt.Fprintf(w, "\x1b[1;38;5;%dm%s\x1b[0m", contentColor, content)
	} else {
		fmt.Fprint(w, content)
	}
	fmt.Fprintf(w, "%s\x1b[38;5;%dm│\x1b[0m\n", strings.Repeat(" ", pad), borderColor)
}

func printHelp(w io.Writer) {
	rule := strings.Repeat("─", boxInnerWidth)

	fmt.Fprint(w, "\n")
	fmt.Fprintf(w, "\x1b[38;5;39m  ┌%s┐\x1b[0m\n", rule)
	boxLine(w, 39, 39, "  ██╗    ██╗ █████╗ ██╗   ██╗███████╗")
	boxLine(w, 75, 75, "  ██║    ██║██╔══██╗██║   ██║██╔════╝")
	boxLine(w, 111, 111, "  ██║ █╗ ██║███████║██║   ██║█████╗")
	boxLine(w, 147, 147, "  ██║███╗██║██╔══██║╚██╗ ██╔╝██╔══╝")
	boxLine(w, 183, 183, "  ╚███╔███╔╝██║  ██║ ╚████╔╝ ███████╗")
	boxLine(w, 212, 212, "   ╚══╝╚══╝ ╚═╝  ╚═╝  ╚═══╝  ╚══════╝")
	boxLine(w, 212, 0, "")

	subtitle := fmt.Sprintf("  🌊 Terminal wave visualizer · v%s", constant.Version)
	pad := boxInnerWidth - runewidth.StringWidth(subtitle)
	if pad < 0 {
		pad = 0
	}
	fmt.Fprintf(w, "\x1b[38;5;141m  │\x1b[0m\x1b[2;38;5;248m%s\x1b[0m%s\x1b[38;5;141m│\x1b[0m\n",
		subtitle, strings.Repeat(" ", pad))
	fmt.Fprintf(w, "\x1b[38;5;141m  └%s┘\x1b[0m\n\n", rule)

	fmt.Fprint(w, "\x1b[1mUSAGE\x1b[0m\n")
	fmt.Fprint(w, "  \x1b[38;5;248m$\x1b[0m wavecli \x1b[38;5;114m[OPTIONS]\x1b[0m\n\n")

	fmt.Fprint(w, "\x1b[1mOPTIONS\x1b[0m\n")
	fmt.Fprintf(w, "  \x1b[38;5;114m-s, --speed\x1b[0m \x1b[38;5;248m<float>\x1b[0m   Speed multiplier          \x1b[2m[default: %.1f]\x1b[0m\n", constant.DefaultSpeed)
	fmt.Fprintf(w, "  \x1b[38;5;114m-f, --fps\x1b[0m   \x1b[38;5;248m<int>\x1b[0m     Target frames per second  \x1b[2m[default: %d]\x1b[0m\n", constant.DefaultFPS)
	fmt.Fprintf(w, "  \x1b[38;5;114m-c, --color\x1b[0m \x1b[38;5;248m<name>\x1b[0m    Color palette             \x1b[2m[default: %s]\x1b[0m\n", constant.DefaultPalette)
	fmt.Fprint(w, "  \x1b[38;5;114m-g, --char\x1b[0m  \x1b[38;5;248m<str>\x1b[0m     Wave glyph character      \x1b[2m[default: auto]\x1b[0m\n")
	fmt.Fprintf(w, "  \x1b[38;5;114m-n, --waves\x1b[0m \x1b[38;5;248m<int>\x1b[0m     Number of waves           \x1b[2m[default: %d]\x1b[0m\n", constant.DefaultWaves)
	fmt.Fprint(w, "  \x1b[38;5;114m-m, --mode\x1b[0m  \x1b[38;5;248m<name>\x1b[0m    Color mode                \x1b[2m[default: 256]\x1b[0m\n")
	fmt.Fprint(w, "  \x1b[38;5;114m-a, --audio\x1b[0m           Play a sine drone\n")
	fmt.Fprint(w, "  \x1b[38;5;114m    --debug\x1b[0m           Write a debug log\n")
	fmt.Fprint(w, "  \x1b[38;5;114m-v, --version\x1b[0m         Print version\n")
	fmt.Fprint(w, "  \x1b[38;5;114m-h, --help\x1b[0m            Show this help\n\n")

	fmt.Fprint(w, "\x1b[1mPALETTES\x1b[0m\n")
	palettes := palette.All()
	for i, p := range palettes {
		fmt.Fprint(w, "  ")
		// eight colored blocks as a mini gradient preview
		for s := 0; s < 8; s++ {
			t := float64(s) / 7.0
			fmt.Fprintf(w, "\x1b[38;5;%dm▄\x1b[0m", p.Index256(t))
		}
		fmt.Fprintf(w, "  %-8s", p.Name())
		if i%2 == 1 || i == len(palettes)-1 {
			fmt.Fprint(w, "\n")
		}
	}

	fmt.Fprint(w, "\n\x1b[2m  ╶─ Press Ctrl+C to quit. Resize your terminal to reshape the waves. ─╴\x1b[0m\n\n")
}
