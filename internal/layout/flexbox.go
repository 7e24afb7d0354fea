package layout

import (
	"math"

	"github.com/google/uuid"

	"github.com/grindlemire/go-kaolin/internal/debug"
)

// epsilon is the leftover space treated as fully distributed.
const epsilon = 1e-9

// FlexBox is the container element. It sizes itself from its children and
// distributes its final size back to them.
type FlexBox struct {
	id        string
	style     FlexStyle
	children  Nodes
	inherited Color
}

// NewFlexBox creates an empty container. The id is style.ID, or a random
// UUID when that is empty.
func NewFlexBox(style FlexStyle) *FlexBox {
	id := style.ID
	if id == "" {
		id = uuid.NewString()
	}
	return &FlexBox{id: id, style: style}
}

// ID returns the container id carried by its rectangle command.
func (f *FlexBox) ID() string { return f.id }

// Style returns the container style.
func (f *FlexBox) Style() FlexStyle { return f.style }

// Children returns the container's children in insertion order.
func (f *FlexBox) Children() Nodes { return f.children }

// TextColor returns the color passed down to text: the container's own
// color, otherwise the one it inherited.
func (f *FlexBox) TextColor() Color {
	return f.style.Color.Or(f.inherited)
}

// AddChild appends n and hands it the container's text color.
func (f *FlexBox) AddChild(n *Node) {
	if c := f.TextColor(); !c.IsDefault() {
		if ci, ok := n.element.(ColorInheritor); ok {
			ci.InheritColor(c)
		}
	}
	f.children = append(f.children, n)
}

// InheritColor records the parent's text color. Children already attached
// receive it too unless the container sets its own color.
func (f *FlexBox) InheritColor(c Color) {
	f.inherited = c
	if !f.style.Color.IsDefault() {
		return
	}
	for _, n := range f.children {
		if ci, ok := n.element.(ColorInheritor); ok {
			ci.InheritColor(c)
		}
	}
}

// Sizing implements Element.
func (f *FlexBox) Sizing() (width, height Dimension) {
	return f.style.Width.Dimension(), f.style.Height.Dimension()
}

// StartWidth fits the container to the children attached so far.
func (f *FlexBox) StartWidth(width Dimension) float64 {
	return width.Clamp(f.fitWidth())
}

func (f *FlexBox) gapTotal() float64 {
	return float64(f.children.Gaps()) * f.style.Layout.Gap
}

// fitWidth is the content width before any growth.
func (f *FlexBox) fitWidth() float64 {
	if f.style.HorizontalLayout() {
		return f.children.CumulativeWidth() + f.style.Padding.Horizontal() + f.gapTotal()
	}
	return f.children.MaxWidth() + f.style.Padding.Horizontal()
}

// FitHeight implements HeightFitter.
func (f *FlexBox) FitHeight(float64) float64 {
	if f.style.HorizontalLayout() {
		return f.children.MaxHeight() + f.style.Padding.Vertical()
	}
	return f.children.CumulativeHeight() + f.gapTotal() + f.style.Padding.Vertical()
}

// GrowChildrenWidth distributes width along or across the main axis, then
// recurses and re-fits every child's height to its final width.
func (f *FlexBox) GrowChildrenWidth(width float64) {
	padX := f.style.Padding.Horizontal()

	if f.style.HorizontalLayout() {
		remaining := width - padX - f.children.CumulativeWidth() - f.gapTotal()
		if remaining < 0 {
			shrinkWidth.run(f.children.Shrinkable(), remaining)
		} else {
			growWidth.run(f.children.GrowableWidth(), remaining)
		}
	} else {
		for _, n := range f.children {
			delta := width - padX - n.width
			if (delta > 0 && n.growableWidth) || (delta < 0 && n.shrinkable) {
				n.GrowWidth(delta)
			}
			n.growableWidth = false
		}
	}

	for _, n := range f.children {
		if c, ok := n.container(); ok {
			c.GrowChildrenWidth(n.width)
		}
		n.FitHeight(n.width)
	}
}

// GrowChildrenHeight distributes height. Heights only grow.
func (f *FlexBox) GrowChildrenHeight(height float64) {
	padY := f.style.Padding.Vertical()

	if f.style.HorizontalLayout() {
		for _, n := range f.children {
			if delta := height - padY - n.height; delta > 0 && n.growableHeight {
				n.GrowHeight(delta)
			}
			n.growableHeight = false
		}
	} else {
		remaining := height - padY - f.children.CumulativeHeight() - f.gapTotal()
		if remaining > 0 {
			growHeight.run(f.children.GrowableHeight(), remaining)
		}
	}

	for _, n := range f.children {
		if c, ok := n.container(); ok {
			c.GrowChildrenHeight(n.height)
		}
	}
}

// Render emits the container rectangle followed by its children.
func (f *FlexBox) Render(bounds Rect, cmds *Commands) {
	cmds.Push(DrawRectangle{
		ID:           f.id,
		X:            bounds.X,
		Y:            bounds.Y,
		Width:        bounds.Width,
		Height:       bounds.Height,
		Color:        f.style.Background,
		CornerRadius: f.style.CornerRadius,
		Border:       f.style.Border,
	})
	f.RenderChildren(cmds)
}

// RenderChildren emits the children only.
func (f *FlexBox) RenderChildren(cmds *Commands) {
	for _, n := range f.children {
		n.Render(cmds)
	}
}

// leveler spreads space over siblings tier by tier: only the siblings at the
// current extreme size change, and never past the next tier, so equal
// siblings move in lockstep.
type leveler struct {
	name    string
	size    func(*Node) float64
	weight  func(*Node) float64
	apply   func(*Node, float64) float64
	active  func(*Node) bool
	extreme func(Nodes) (float64, float64)
}

var (
	growWidth = leveler{
		name:    "grow width",
		size:    func(n *Node) float64 { return n.width },
		weight:  func(n *Node) float64 { return n.widthDim.GrowFactor() },
		apply:   (*Node).GrowWidth,
		active:  func(n *Node) bool { return n.growableWidth },
		extreme: Nodes.SmallestWidths,
	}
	shrinkWidth = leveler{
		name:    "shrink width",
		size:    func(n *Node) float64 { return n.width },
		weight:  func(*Node) float64 { return 1 },
		apply:   (*Node).GrowWidth,
		active:  func(n *Node) bool { return n.shrinkable },
		extreme: Nodes.BiggestWidths,
	}
	growHeight = leveler{
		name:    "grow height",
		size:    func(n *Node) float64 { return n.height },
		weight:  func(n *Node) float64 { return n.heightDim.GrowFactor() },
		apply:   (*Node).GrowHeight,
		active:  func(n *Node) bool { return n.growableHeight },
		extreme: Nodes.SmallestHeights,
	}
)

// run distributes remaining (negative to shrink) over eligible and returns
// what could not be placed.
func (l leveler) run(eligible Nodes, remaining float64) float64 {
	for math.Abs(remaining) > epsilon && len(eligible) > 0 {
		extreme, next := l.extreme(eligible)

		var tier Nodes
		var total float64
		for _, n := range eligible {
			if l.size(n) == extreme {
				tier = append(tier, n)
				total += l.weight(n)
			}
		}
		if total <= 0 {
			debug.Logger().Debug("layout: zero weight", "pass", l.name, "remaining", remaining)
			break
		}

		step := remaining
		if d := next - extreme; math.Abs(d) < math.Abs(step) {
			step = d
		}
		step /= total

		var applied float64
		for _, n := range tier {
			applied += l.apply(n, step*l.weight(n))
		}
		remaining -= applied

		still := eligible.filter(l.active)
		if applied == 0 && len(still) == len(eligible) {
			debug.Logger().Debug("layout: no progress", "pass", l.name, "remaining", remaining)
			break
		}
		eligible = still
	}
	return remaining
}
