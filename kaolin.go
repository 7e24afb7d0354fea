package kaolin

import (
	"github.com/grindlemire/go-kaolin/internal/debug"
	"github.com/grindlemire/go-kaolin/internal/layout"
)

// Kaolin lays out a fixed viewport. It holds no per-draw state, so one value
// can be drawn repeatedly and, with a concurrency-safe measure function, from
// several goroutines.
type Kaolin struct {
	width, height float64
	measure       MeasureFunc
	root          Layout
}

// New creates a layout engine for a width by height viewport. measure sizes
// single lines of text; a nil measure lays all text out at zero size.
func New(width, height float64, measure MeasureFunc, opts ...Option) *Kaolin {
	k := &Kaolin{
		width:   width,
		height:  height,
		measure: measure,
	}
	for _, opt := range opts {
		opt(k)
	}
	return k
}

// Size returns the viewport dimensions.
func (k *Kaolin) Size() (width, height float64) {
	return k.width, k.height
}

// Measure returns the measure function every text element is built with.
func (k *Kaolin) Measure() MeasureFunc {
	return k.measure
}

// Draw builds the tree described by fn inside a viewport-sized root
// container, lays it out and returns the draw commands. The root container
// itself emits nothing.
func (k *Kaolin) Draw(fn func(*Scope)) *Commands {
	root := layout.NewFlexBox(layout.FlexStyle{
		Width:  Fixed(k.width),
		Height: Fixed(k.height),
		Layout: k.root,
	})
	if fn != nil {
		fn(&Scope{flex: root, measure: k.measure})
	}

	root.GrowChildrenWidth(k.width)
	root.GrowChildrenHeight(k.height)
	root.PositionChildren(NewRect(0, 0, k.width, k.height))

	cmds := layout.NewCommands()
	root.RenderChildren(cmds)

	debug.Logger().Debug("kaolin: draw",
		"width", k.width,
		"height", k.height,
		"commands", cmds.Len(),
	)
	return cmds
}
