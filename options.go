package kaolin

import "github.com/grindlemire/go-kaolin/internal/layout"

// Option configures a Kaolin.
type Option func(*Kaolin)

// WithMeasureCache memoises the measure function by text and style. The
// cache lives as long as the Kaolin and is safe for concurrent draws.
func WithMeasureCache() Option {
	return func(k *Kaolin) {
		k.measure = layout.CachedMeasure(k.measure)
	}
}

// WithRootLayout sets how top-level elements are arranged in the viewport.
// The default places them left to right from the top-left corner.
func WithRootLayout(l Layout) Option {
	return func(k *Kaolin) {
		k.root = l
	}
}
