// layout.go re-exports layout types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package kaolin

import "github.com/grindlemire/go-kaolin/internal/layout"

// Direction specifies the main axis for laying out children.
type Direction = layout.Direction

const (
	LeftToRight = layout.LeftToRight
	TopToBottom = layout.TopToBottom
	RightToLeft = layout.RightToLeft
	BottomToTop = layout.BottomToTop
)

// Justify specifies how children are distributed along the main axis.
type Justify = layout.Justify

const (
	JustifyStart        = layout.JustifyStart
	JustifyEnd          = layout.JustifyEnd
	JustifyCenter       = layout.JustifyCenter
	JustifySpaceBetween = layout.JustifySpaceBetween
	JustifySpaceAround  = layout.JustifySpaceAround
)

// Align specifies how children are aligned along the cross axis.
type Align = layout.Align

const (
	AlignStart   = layout.AlignStart
	AlignEnd     = layout.AlignEnd
	AlignCenter  = layout.AlignCenter
	AlignStretch = layout.AlignStretch
)

// Layout groups direction, alignment, justification and gap.
type Layout = layout.Layout

// FlexStyle holds every property of a container.
type FlexStyle = layout.FlexStyle

// TextStyle holds the font and color of a text run.
type TextStyle = layout.TextStyle

// DefaultFontSize is used when a TextStyle leaves FontSize at zero.
const DefaultFontSize = layout.DefaultFontSize

// Border is a stroke drawn around a container.
type Border = layout.Border

// Sizing is the sizing policy of one axis.
type Sizing = layout.Sizing

// Policy selects how a Sizing resolves.
type Policy = layout.Policy

const (
	PolicyFit   = layout.PolicyFit
	PolicyFixed = layout.PolicyFixed
	PolicyGrow  = layout.PolicyGrow
)

// Bound is an explicit minimum or maximum of a Sizing.
type Bound = layout.Bound

// Dimension is the resolved constraint of one axis.
type Dimension = layout.Dimension

// ErrNegative is wrapped by every error about a negative sizing value.
var ErrNegative = layout.ErrNegative

// Rect represents a rectangle with position and dimensions.
type Rect = layout.Rect

// Edges represents spacing on four sides (top, right, bottom, left).
type Edges = layout.Edges

// Color is a renderer-agnostic color.
type Color = layout.Color

// ColorType distinguishes between color representations.
type ColorType = layout.ColorType

const (
	ColorDefault = layout.ColorDefault
	ColorANSI    = layout.ColorANSI
	ColorRGB     = layout.ColorRGB
)

// Element is anything that can be placed in the layout tree.
type Element = layout.Element

// MeasureFunc returns the size of one line of text.
type MeasureFunc = layout.MeasureFunc

// Commands is the ordered, single-pass output of a draw.
type Commands = layout.Commands

// Command is one drawing instruction.
type Command = layout.Command

// DrawRectangle fills and strokes a container's box.
type DrawRectangle = layout.DrawRectangle

// DrawText draws one wrapped line of text.
type DrawText = layout.DrawText

// DrawCustom hands user data to the renderer.
type DrawCustom = layout.DrawCustom

// Named colors.
var (
	Black       = layout.Black
	White       = layout.White
	Red         = layout.Red
	Green       = layout.Green
	Blue        = layout.Blue
	Transparent = layout.Transparent
)

// Fixed sizes an axis to exactly v. Panics if v is negative.
func Fixed(v float64) Sizing {
	return layout.Fixed(v)
}

// Fit sizes an axis to its content. Panics if a bound is negative.
func Fit(bounds ...Bound) Sizing {
	return layout.Fit(bounds...)
}

// Grow lets an axis take free space with factor 1.
func Grow(bounds ...Bound) Sizing {
	return layout.Grow(bounds...)
}

// GrowBy lets an axis take free space weighted by factor.
func GrowBy(factor float64, bounds ...Bound) Sizing {
	return layout.GrowBy(factor, bounds...)
}

// NewSizing builds a Sizing, returning an error instead of panicking.
func NewSizing(p Policy, value float64, bounds ...Bound) (Sizing, error) {
	return layout.NewSizing(p, value, bounds...)
}

// NewCommands returns a sequence holding cmds, for feeding a renderer
// commands that were not produced by Draw.
func NewCommands(cmds ...Command) *Commands {
	return layout.NewCommands(cmds...)
}

// Min bounds a Sizing from below.
func Min(v float64) Bound {
	return layout.Min(v)
}

// Max bounds a Sizing from above.
func Max(v float64) Bound {
	return layout.Max(v)
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height float64) Rect {
	return layout.NewRect(x, y, width, height)
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n float64) Edges {
	return layout.EdgeAll(n)
}

// EdgeSymmetric creates Edges with vertical (top/bottom) and horizontal (left/right) values.
func EdgeSymmetric(v, h float64) Edges {
	return layout.EdgeSymmetric(v, h)
}

// EdgeTRBL creates Edges following CSS order: Top, Right, Bottom, Left.
func EdgeTRBL(t, r, b, l float64) Edges {
	return layout.EdgeTRBL(t, r, b, l)
}

// EdgeHorizontal creates Edges with only left and right set.
func EdgeHorizontal(n float64) Edges {
	return layout.EdgeHorizontal(n)
}

// EdgeVertical creates Edges with only top and bottom set.
func EdgeVertical(n float64) Edges {
	return layout.EdgeVertical(n)
}

// EdgeTop creates Edges with only the top set.
func EdgeTop(n float64) Edges {
	return layout.EdgeTop(n)
}

// EdgeRight creates Edges with only the right set.
func EdgeRight(n float64) Edges {
	return layout.EdgeRight(n)
}

// EdgeBottom creates Edges with only the bottom set.
func EdgeBottom(n float64) Edges {
	return layout.EdgeBottom(n)
}

// EdgeLeft creates Edges with only the left set.
func EdgeLeft(n float64) Edges {
	return layout.EdgeLeft(n)
}

// DefaultColor returns a Color that defers to the renderer.
func DefaultColor() Color {
	return layout.DefaultColor()
}

// ANSIColor returns a Color from the ANSI 256 palette.
func ANSIColor(index uint8) Color {
	return layout.ANSIColor(index)
}

// RGBColor returns an opaque color.
func RGBColor(r, g, b uint8) Color {
	return layout.RGBColor(r, g, b)
}

// RGBAColor returns a color with alpha.
func RGBAColor(r, g, b, a uint8) Color {
	return layout.RGBAColor(r, g, b, a)
}

// Hex returns the color packed as 0xRRGGBBAA.
func Hex(v uint32) Color {
	return layout.Hex(v)
}

// HexColor parses "#RGB", "#RRGGBB" or "#RRGGBBAA".
func HexColor(s string) (Color, error) {
	return layout.HexColor(s)
}

// CachedMeasure memoises fn by text and style.
func CachedMeasure(fn MeasureFunc) MeasureFunc {
	return layout.CachedMeasure(fn)
}
