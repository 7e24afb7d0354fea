package layout

import (
	"math"
	"sync"

	"github.com/grindlemire/go-kaolin/internal/debug"
)

// MeasureFunc returns the size of a single line of text rendered in style.
// It must return the same result for the same input and be safe to call
// repeatedly.
type MeasureFunc func(text string, style TextStyle) (width, height float64)

// Measure calls m, treating a nil function as measuring (0, 0) and replacing
// NaN, infinite or negative results with 0.
func (m MeasureFunc) Measure(text string, style TextStyle) (width, height float64) {
	if m == nil {
		return 0, 0
	}
	w, h := m(text, style)
	if !valid(w) || !valid(h) {
		debug.Logger().Warn("layout: invalid text measurement", "text", text, "width", w, "height", h)
	}
	return sanitize(w), sanitize(h)
}

func valid(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

func sanitize(v float64) float64 {
	if !valid(v) {
		return 0
	}
	return v
}

type measureKey struct {
	text  string
	style TextStyle
}

type measureResult struct {
	width, height float64
}

// CachedMeasure memoises fn by (text, style). The returned function is safe
// for concurrent use.
func CachedMeasure(fn MeasureFunc) MeasureFunc {
	var (
		mu    sync.Mutex
		cache = make(map[measureKey]measureResult)
	)
	return func(text string, style TextStyle) (float64, float64) {
		key := measureKey{text: text, style: style}

		mu.Lock()
		r, ok := cache[key]
		mu.Unlock()
		if ok {
			return r.width, r.height
		}

		w, h := fn.Measure(text, style)

		mu.Lock()
		cache[key] = measureResult{width: w, height: h}
		mu.Unlock()
		return w, h
	}
}
