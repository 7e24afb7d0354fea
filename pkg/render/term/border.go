package term

// BorderStyle selects the box-drawing characters of a border.
type BorderStyle int

const (
	BorderSingle BorderStyle = iota
	BorderRounded
	BorderThick
	BorderDouble
)

// BorderChars holds the characters used to draw a box border.
type BorderChars struct {
	TopLeft, Top, TopRight          string
	Left, Right                     string
	BottomLeft, Bottom, BottomRight string
}

// Chars returns the box-drawing characters for b.
func (b BorderStyle) Chars() BorderChars {
	switch b {
	case BorderRounded:
		return BorderChars{"╭", "─", "╮", "│", "│", "╰", "─", "╯"}
	case BorderThick:
		return BorderChars{"┏", "━", "┓", "┃", "┃", "┗", "━", "┛"}
	case BorderDouble:
		return BorderChars{"╔", "═", "╗", "║", "║", "╚", "═", "╝"}
	default:
		return BorderChars{"┌", "─", "┐", "│", "│", "└", "─", "┘"}
	}
}

// borderFor picks a style from a stroke width and corner radius.
func borderFor(width, radius float64) BorderStyle {
	switch {
	case width >= 3:
		return BorderDouble
	case width >= 2:
		return BorderThick
	case radius > 0:
		return BorderRounded
	default:
		return BorderSingle
	}
}

// DrawBox draws a border around a rectangle of cells. Boxes smaller than
// 2x2 are skipped.
func (b *Buffer) DrawBox(x, y, width, height int, border BorderStyle, style Style) {
	if width < 2 || height < 2 {
		return
	}
	chars := border.Chars()
	right, bottom := x+width-1, y+height-1

	b.SetString(x, y, chars.TopLeft, style)
	b.SetString(right, y, chars.TopRight, style)
	b.SetString(x, bottom, chars.BottomLeft, style)
	b.SetString(right, bottom, chars.BottomRight, style)
	for col := x + 1; col < right; col++ {
		b.SetString(col, y, chars.Top, style)
		b.SetString(col, bottom, chars.Bottom, style)
	}
	for row := y + 1; row < bottom; row++ {
		b.SetString(x, row, chars.Left, style)
		b.SetString(right, row, chars.Right, style)
	}
}
