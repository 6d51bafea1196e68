package terminal

// Pre-allocated ANSI sequence fragments (avoid allocations during render)
var (
	Home       = []byte("\x1b[H")
	Clear      = []byte("\x1b[2J")
	Reset      = []byte("\x1b[0m")
	CursorHide = []byte("\x1b[?25l")
	CursorShow = []byte("\x1b[?25h")

	// Color prefixes
	fg256 = []byte("\x1b[38;5;") // followed by N;m
	fgRGB = []byte("\x1b[38;2;") // followed by R;G;B;m
)

// AppendFg256 appends the 256-color foreground escape for palette index n.
func AppendFg256(dst []byte, n uint8) []byte {
	dst = append(dst, fg256...)
	dst = appendInt(dst, int(n))
	return append(dst, 'm')
}

// AppendFgRGB appends the 24-bit foreground escape for an RGB color.
func AppendFgRGB(dst []byte, r, g, b uint8) []byte {
	dst = append(dst, fgRGB...)
	dst = appendInt(dst, int(r))
	dst = append(dst, ';')
	dst = appendInt(dst, int(g))
	dst = append(dst, ';')
	dst = appendInt(dst, int(b))
	return append(dst, 'm')
}

// appendInt appends a non-negative integer without allocation.
// Optimized for terminal values (0-255 common, 0-999 typical max)
func appendInt(dst []byte, n int) []byte {
	if n < 0 {
		n = 0
	}
	if n < 10 {
		return append(dst, byte(n)+'0')
	}
	if n < 100 {
		return append(dst, byte(n/10)+'0', byte(n%10)+'0')
	}
	if n < 1000 {
		return append(dst, byte(n/100)+'0', byte(n/10%10)+'0', byte(n%10)+'0')
	}
	// Fallback for >999 (rare)
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte(n%10) + '0'
		n /= 10
	}
	return append(dst, buf[i:]...)
}
