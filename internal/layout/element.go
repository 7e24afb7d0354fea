package layout

// Element is anything that can be placed in the layout tree.
// The engine works entirely with this interface; optional behaviour is
// discovered through the capability interfaces below.
type Element interface {
	// Sizing returns the width and height constraints of the element.
	Sizing() (width, height Dimension)

	// Render appends the element's commands, given its final absolute bounds.
	Render(bounds Rect, cmds *Commands)
}

// FlagDefaulter overrides the initial growable and shrinkable flags, which
// otherwise come from the element's dimensions.
type FlagDefaulter interface {
	DefaultFlags(width, height Dimension) (growWidth, growHeight, shrink bool)
}

// WidthStarter overrides the initial width of a node.
type WidthStarter interface {
	StartWidth(width Dimension) float64
}

// HeightFitter returns the content height for a final width. The result is
// clamped by the node, so implementations ignore their own bounds. This is
// also the hook for work that depends on the final width, such as wrapping.
type HeightFitter interface {
	FitHeight(finalWidth float64) float64
}

// Positioner is notified of the element's final absolute bounds.
type Positioner interface {
	SetBounds(bounds Rect)
}

// ColorInheritor receives the text color of its parent container.
type ColorInheritor interface {
	InheritColor(c Color)
}

// Container is an element that owns children.
type Container interface {
	Element

	// AddChild appends a node to the container's children.
	AddChild(n *Node)

	// GrowChildrenWidth distributes the container's final width to its children.
	GrowChildrenWidth(width float64)

	// GrowChildrenHeight distributes the container's final height to its children.
	GrowChildrenHeight(height float64)
}
