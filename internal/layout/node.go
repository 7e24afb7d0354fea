package layout

import "github.com/google/uuid"

// Node wraps one Element with the mutable state of a single layout pass.
// A node is owned by exactly one parent container.
type Node struct {
	id      string
	element Element

	widthDim, heightDim Dimension

	width, height float64
	x, y          float64

	growableWidth  bool
	growableHeight bool
	shrinkable     bool
}

// NewNode creates a node for e. An empty id is replaced with a random UUID.
func NewNode(e Element, id string) *Node {
	if id == "" {
		id = uuid.NewString()
	}
	w, h := e.Sizing()
	n := &Node{
		id:             id,
		element:        e,
		widthDim:       w,
		heightDim:      h,
		width:          w.Start(),
		height:         h.Start(),
		growableWidth:  w.IsGrowable(),
		growableHeight: h.IsGrowable(),
		shrinkable:     w.IsShrinkable(),
	}
	if d, ok := e.(FlagDefaulter); ok {
		n.growableWidth, n.growableHeight, n.shrinkable = d.DefaultFlags(w, h)
	}
	if s, ok := e.(WidthStarter); ok {
		n.width = s.StartWidth(w)
	}
	return n
}

// ID returns the node's identity string.
func (n *Node) ID() string { return n.id }

// Element returns the wrapped element.
func (n *Node) Element() Element { return n.element }

// Width returns the current width.
func (n *Node) Width() float64 { return n.width }

// Height returns the current height.
func (n *Node) Height() float64 { return n.height }

// Bounds returns the node's absolute position and current size.
func (n *Node) Bounds() Rect {
	return Rect{X: n.x, Y: n.y, Width: n.width, Height: n.height}
}

// GrowFactor returns the grow weights of both axes.
func (n *Node) GrowFactor() (width, height float64) {
	return n.widthDim.GrowFactor(), n.heightDim.GrowFactor()
}

// GrowWidth grows (delta > 0) or shrinks (delta < 0) the width within its
// bounds and returns the change actually applied. Hitting a bound removes the
// node from further growth or shrinking in this pass; a node that cannot
// change at all leaves both.
func (n *Node) GrowWidth(delta float64) float64 {
	target := n.width + delta
	next := n.widthDim.Clamp(target)
	applied := next - n.width

	switch {
	case n.growableWidth && applied > 0:
		n.width = next
		if next != target {
			n.growableWidth = false
		}
		return applied
	case n.shrinkable && applied < 0:
		n.width = next
		if next != target {
			n.shrinkable = false
		}
		return applied
	default:
		n.growableWidth = false
		n.shrinkable = false
		return 0
	}
}

// GrowHeight grows the height within its bounds and returns the change
// actually applied. Heights never shrink.
func (n *Node) GrowHeight(delta float64) float64 {
	if delta <= 0 || !n.growableHeight {
		return 0
	}
	target := n.height + delta
	next := n.heightDim.Clamp(target)
	applied := next - n.height
	if applied <= 0 {
		n.growableHeight = false
		return 0
	}
	n.height = next
	if next != target {
		n.growableHeight = false
	}
	return applied
}

// FitHeight sets the height from the element's content at the final width.
// Elements without content height settle at their minimum.
func (n *Node) FitHeight(finalWidth float64) {
	var h float64
	if f, ok := n.element.(HeightFitter); ok {
		h = f.FitHeight(finalWidth)
	}
	n.height = n.heightDim.Clamp(h)
}

// SetPosition places the node and propagates its bounds to the element.
func (n *Node) SetPosition(x, y float64) {
	n.x, n.y = x, y
	if p, ok := n.element.(Positioner); ok {
		p.SetBounds(n.Bounds())
	}
}

// Render appends the node's commands.
func (n *Node) Render(cmds *Commands) {
	n.element.Render(n.Bounds(), cmds)
}

// container returns the element as a Container, if it is one.
func (n *Node) container() (Container, bool) {
	c, ok := n.element.(Container)
	return c, ok
}
