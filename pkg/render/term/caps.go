package term

import (
	"os"
	"strings"
)

// ColorLevel is how many colors a terminal can show.
type ColorLevel uint8

const (
	ColorNone ColorLevel = iota // Monochrome
	Color16                     // Basic ANSI colors
	Color256                    // ANSI 256 palette
	ColorTrue                   // 24-bit RGB
)

// String returns the level name.
func (l ColorLevel) String() string {
	switch l {
	case Color16:
		return "16"
	case Color256:
		return "256"
	case ColorTrue:
		return "truecolor"
	default:
		return "none"
	}
}

// DetectColorLevel reads COLORTERM and TERM. Unknown terminals get Color16.
func DetectColorLevel() ColorLevel {
	return colorLevel(os.Getenv)
}

func colorLevel(getenv func(string) string) ColorLevel {
	colorterm := strings.ToLower(getenv("COLORTERM"))
	if colorterm == "truecolor" || colorterm == "24bit" {
		return ColorTrue
	}

	// Emulators known to support true color without setting COLORTERM.
	for _, v := range []string{"WT_SESSION", "ITERM_SESSION_ID", "KITTY_WINDOW_ID", "KONSOLE_VERSION", "VTE_VERSION"} {
		if getenv(v) != "" {
			return ColorTrue
		}
	}

	term := strings.ToLower(getenv("TERM"))
	switch {
	case term == "dumb":
		return ColorNone
	case strings.Contains(term, "truecolor"):
		return ColorTrue
	case strings.Contains(term, "256color"):
		return Color256
	}
	return Color16
}
