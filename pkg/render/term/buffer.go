package term

import (
	"io"
	"strings"

	"github.com/rivo/uniseg"
)

// Buffer is a grid of cells.
type Buffer struct {
	cells  []Cell
	width  int
	height int
}

// NewBuffer creates a width by height grid of blank cells. Negative sizes
// become zero.
func NewBuffer(width, height int) *Buffer {
	width, height = max(width, 0), max(height, 0)
	b := &Buffer{
		cells:  make([]Cell, width*height),
		width:  width,
		height: height,
	}
	b.Clear()
	return b
}

// Size returns the buffer dimensions in cells.
func (b *Buffer) Size() (width, height int) {
	return b.width, b.height
}

func (b *Buffer) idx(x, y int) int {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return -1
	}
	return y*b.width + x
}

// Cell returns the cell at (x, y), or the zero Cell when out of bounds.
func (b *Buffer) Cell(x, y int) Cell {
	i := b.idx(x, y)
	if i < 0 {
		return Cell{}
	}
	return b.cells[i]
}

// Clear resets every cell to a blank with the default style.
func (b *Buffer) Clear() {
	for i := range b.cells {
		b.cells[i] = blank
	}
}

// set writes c at (x, y), first blanking any wide grapheme it would split.
func (b *Buffer) set(x, y int, c Cell) {
	i := b.idx(x, y)
	if i < 0 {
		return
	}
	b.unsplit(x, y)
	if c.Width == 2 {
		b.unsplit(x+1, y)
	}
	b.cells[i] = c
}

func (b *Buffer) unsplit(x, y int) {
	cur := b.Cell(x, y)
	switch {
	case cur.IsContinuation() && x > 0:
		left := b.cells[b.idx(x-1, y)]
		b.cells[b.idx(x-1, y)] = Cell{Text: " ", Style: left.Style, Width: 1}
	case cur.Width == 2 && x+1 < b.width:
		right := b.cells[b.idx(x+1, y)]
		b.cells[b.idx(x+1, y)] = Cell{Text: " ", Style: right.Style, Width: 1}
	}
}

// Fill blanks a rectangle of cells and paints them with style.
func (b *Buffer) Fill(x, y, width, height int, style Style) {
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+width, b.width), min(y+height, b.height)
	for row := y0; row < y1; row++ {
		for col := x0; col < x1; col++ {
			b.set(col, row, Cell{Text: " ", Style: style, Width: 1})
		}
	}
}

// SetString writes s from (x, y) one grapheme cluster at a time, clipped
// to the buffer without wrapping. A default background keeps the
// background already in each cell. It returns the number of columns the
// string advanced.
func (b *Buffer) SetString(x, y int, s string, style Style) int {
	if y < 0 || y >= b.height {
		return 0
	}

	col := x
	state := -1
	for s != "" {
		var cluster string
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		width := GraphemeWidth(cluster)

		if col >= b.width {
			break
		}
		if col < 0 || (width == 2 && col+1 >= b.width) {
			col += width
			continue
		}

		st := style
		if st.Bg.IsDefault() {
			st.Bg = b.Cell(col, y).Style.Bg
		}
		b.set(col, y, Cell{Text: cluster, Style: st, Width: uint8(width)})
		if width == 2 {
			b.cells[b.idx(col+1, y)] = Cell{Style: st}
		}
		col += width
	}
	return col - x
}

// String renders the text of the grid with one line per row.
func (b *Buffer) String() string {
	var sb strings.Builder
	for y := range b.height {
		for x := range b.width {
			sb.WriteString(b.cells[y*b.width+x].Text)
		}
		if y < b.height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// StringTrimmed is String with trailing spaces removed from every row.
func (b *Buffer) StringTrimmed() string {
	lines := strings.Split(b.String(), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	return strings.Join(lines, "\n")
}

// WriteANSI writes the grid with SGR escape sequences for colors limited to
// level. Every row ends with a style reset and a newline.
func (b *Buffer) WriteANSI(w io.Writer, level ColorLevel) error {
	esc := newEscBuilder(b.width * 4)
	for y := range b.height {
		esc.Reset()
		cur := Style{}
		for x := range b.width {
			c := b.cells[y*b.width+x]
			if c.IsContinuation() {
				continue
			}
			if !c.Style.Equal(cur) {
				esc.SetStyle(c.Style, level)
				cur = c.Style
			}
			esc.WriteString(c.Text)
		}
		if !cur.Equal(Style{}) {
			esc.ResetStyle()
		}
		esc.Newline()
		if _, err := w.Write(esc.Bytes()); err != nil {
			return err
		}
	}
	return nil
}
