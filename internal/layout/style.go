package layout

// DefaultFontSize is used when a TextStyle leaves FontSize at zero.
const DefaultFontSize = 16

// Direction specifies the main axis for laying out children.
type Direction uint8

const (
	LeftToRight Direction = iota // Children laid out left-to-right
	TopToBottom                  // Children laid out top-to-bottom
	RightToLeft                  // Children laid out right-to-left
	BottomToTop                  // Children laid out bottom-to-top
)

// Horizontal reports whether the main axis is horizontal.
func (d Direction) Horizontal() bool {
	return d == LeftToRight || d == RightToLeft
}

// Reversed reports whether children are placed from the far edge.
func (d Direction) Reversed() bool {
	return d == RightToLeft || d == BottomToTop
}

// String returns the short name used in scene documents.
func (d Direction) String() string {
	switch d {
	case TopToBottom:
		return "ttb"
	case RightToLeft:
		return "rtl"
	case BottomToTop:
		return "btt"
	default:
		return "ltr"
	}
}

// Justify specifies how children are distributed along the main axis.
type Justify uint8

const (
	JustifyStart        Justify = iota // Pack at start
	JustifyEnd                         // Pack at end
	JustifyCenter                      // Center children
	JustifySpaceBetween                // Even space between, none at edges
	JustifySpaceAround                 // Even space between, one gap at edges
)

// String returns the short name used in scene documents.
func (j Justify) String() string {
	switch j {
	case JustifyEnd:
		return "end"
	case JustifyCenter:
		return "center"
	case JustifySpaceBetween:
		return "between"
	case JustifySpaceAround:
		return "around"
	default:
		return "start"
	}
}

// Align specifies how children are positioned on the cross axis.
type Align uint8

const (
	AlignStart   Align = iota // Align to start of cross axis
	AlignEnd                  // Align to end of cross axis
	AlignCenter               // Center on cross axis
	AlignStretch              // Placed like AlignStart; growth does the stretching
)

// String returns the short name used in scene documents.
func (a Align) String() string {
	switch a {
	case AlignEnd:
		return "end"
	case AlignCenter:
		return "center"
	case AlignStretch:
		return "stretch"
	default:
		return "start"
	}
}

// Layout groups the properties a container applies to its children.
type Layout struct {
	Direction Direction
	Align     Align
	Justify   Justify
	Gap       float64 // Space between children (main axis only)
}

// Border is a stroke drawn around a container.
type Border struct {
	Width float64
	Color Color
}

// FlexStyle contains every property of a container.
type FlexStyle struct {
	// ID is copied to the container's rectangle command. Empty means a
	// generated id.
	ID string

	// Color is inherited as the text color of descendants.
	Color      Color
	Background Color

	Layout Layout
	Width  Sizing
	Height Sizing

	Padding      Edges
	CornerRadius float64
	Border       Border
}

// HorizontalLayout reports whether children are laid out along x.
func (s FlexStyle) HorizontalLayout() bool {
	return s.Layout.Direction.Horizontal()
}

// axes swaps a (horizontal, vertical) pair into (main, cross) order.
func (s FlexStyle) axes(h, v float64) (main, cross float64) {
	if s.HorizontalLayout() {
		return h, v
	}
	return v, h
}

// TextStyle configures a text run.
type TextStyle struct {
	FontID   uint32
	FontSize float64
	Color    Color
}

// normalized fills in the default font size.
func (s TextStyle) normalized() TextStyle {
	if s.FontSize <= 0 {
		s.FontSize = DefaultFontSize
	}
	return s
}
