package constant

// Version is the wavecli release version.
const Version = "1.0.0"

// Frame serialization
const (
	// MaxBytesPerCell is the worst case for one cell: color escape +
	// UTF-8 glyph + attribute reset.
	MaxBytesPerCell = 30

	// FrameBufPadding is extra headroom on top of the per-cell worst case.
	FrameBufPadding = 256
)

// Star field background
const (
	// StarfieldDensity is the 1-in-N chance of a star per empty cell.
	StarfieldDensity = 600

	// StarfieldGrayBase is the first 256-color grayscale index used for stars.
	StarfieldGrayBase = 236

	// StarfieldGrayRange is the number of gray shades available.
	StarfieldGrayRange = 4

	// StarfieldSeed is the initial xorshift state.
	StarfieldSeed = 12345
)

// Color phase
const (
	// FrameColorDivisor converts the frame counter into color phase drift.
	FrameColorDivisor = 200.0

	// WaveColorOffset shifts each wave's color phase by its index.
	WaveColorOffset = 0.18
)

// Defaults
const (
	DefaultFPS     = 60
	DefaultWaves   = 5
	DefaultSpeed   = 1.0
	DefaultPalette = "rainbow"
)

// Limits
const (
	MinFPS   = 1
	MaxFPS   = 240
	MinWaves = 1
	MaxWaves = 50
)

// Fallback geometry when stdout is not a terminal or the size query fails
const (
	FallbackRows = 24
	FallbackCols = 80
)

// Process exit codes
const (
	ExitOK  = 0 // normal, help, version
	ExitErr = 1 // usage or configuration error
	ExitOOM = 2 // buffer allocation failure
)
