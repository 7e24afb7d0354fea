package term

import (
	kaolin "github.com/grindlemire/go-kaolin"
	"github.com/rivo/uniseg"
)

// Attr is a bitfield of text attributes.
type Attr uint8

const (
	AttrBold Attr = 1 << iota
	AttrDim
	AttrItalic
	AttrUnderline
)

// Style is the look of one cell. The zero value uses the terminal defaults.
type Style struct {
	Fg    kaolin.Color
	Bg    kaolin.Color
	Attrs Attr
}

// Equal reports whether both styles are identical.
func (s Style) Equal(other Style) bool {
	return s.Fg.Equal(other.Fg) && s.Bg.Equal(other.Bg) && s.Attrs == other.Attrs
}

// Cell is one character cell. A wide grapheme occupies its own cell plus a
// continuation cell with an empty Text and zero Width.
type Cell struct {
	Text  string
	Style Style
	Width uint8
}

var blank = Cell{Text: " ", Width: 1}

// IsContinuation reports whether the cell is the second half of a wide
// grapheme.
func (c Cell) IsContinuation() bool {
	return c.Width == 0
}

// GraphemeWidth returns the number of cells s takes up, treating zero-width
// clusters as one cell.
func GraphemeWidth(s string) int {
	return max(uniseg.StringWidth(s), 1)
}
