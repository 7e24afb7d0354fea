package kaolin

import (
	"log/slog"

	"github.com/grindlemire/go-kaolin/internal/debug"
)

// SetLogger routes the library's diagnostics to l. Passing nil silences
// them again, which is the default.
//
// Draws log at Debug; degenerate growth passes log at Debug; measure
// functions returning NaN, infinite or negative sizes log at Warn.
func SetLogger(l *slog.Logger) {
	debug.SetLogger(l)
}

// Logger returns the logger installed with SetLogger.
func Logger() *slog.Logger {
	return debug.Logger()
}
