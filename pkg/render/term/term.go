// Package term draws kaolin commands into a grid of terminal cells.
//
// Layout units map to cells through a cell size, one by one by default, so
// a layout measured with [Renderer.Measure] lines up with the grid.
package term

import (
	"math"

	"github.com/rivo/uniseg"

	kaolin "github.com/grindlemire/go-kaolin"
	"github.com/grindlemire/go-kaolin/internal/debug"
)

// Size used when the output is not a terminal.
const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// Size returns the size of the terminal open on fd, falling back to
// DefaultWidth by DefaultHeight.
func Size(fd int) (width, height int) {
	w, h, err := terminalSize(fd)
	if err != nil || w <= 0 || h <= 0 {
		debug.Logger().Debug("term: using default size", "fd", fd, "error", err)
		return DefaultWidth, DefaultHeight
	}
	return w, h
}

// CustomFunc draws a DrawCustom command into the cells it covers.
type CustomFunc func(buf *Buffer, x, y, width, height int, cmd kaolin.DrawCustom)

// Option configures a Renderer.
type Option func(*Renderer)

// WithCellSize sets how many layout units one cell spans. Non-positive
// values are ignored.
func WithCellSize(width, height float64) Option {
	return func(r *Renderer) {
		if width > 0 {
			r.cellW = width
		}
		if height > 0 {
			r.cellH = height
		}
	}
}

// WithForeground sets the color of text and borders with the default color.
func WithForeground(c kaolin.Color) Option {
	return func(r *Renderer) { r.foreground = c }
}

// WithFontAttrs renders text using font id with attrs.
func WithFontAttrs(id uint32, attrs Attr) Option {
	return func(r *Renderer) { r.fontAttrs[id] = attrs }
}

// WithCustom sets the function that draws custom elements. Without one they
// are outlined.
func WithCustom(fn CustomFunc) Option {
	return func(r *Renderer) { r.custom = fn }
}

// Renderer draws commands into a Buffer.
type Renderer struct {
	buf          *Buffer
	cellW, cellH float64
	foreground   kaolin.Color
	fontAttrs    map[uint32]Attr
	custom       CustomFunc
}

// New creates a renderer with a cols by rows buffer. Font id 1 is drawn
// bold unless overridden.
func New(cols, rows int, opts ...Option) *Renderer {
	r := &Renderer{
		buf:       NewBuffer(cols, rows),
		cellW:     1,
		cellH:     1,
		fontAttrs: map[uint32]Attr{1: AttrBold},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Viewport returns the buffer size in layout units.
func (r *Renderer) Viewport() (width, height float64) {
	w, h := r.buf.Size()
	return float64(w) * r.cellW, float64(h) * r.cellH
}

// Measure implements kaolin.MeasureFunc: every column is one cell wide and
// every line one cell tall.
func (r *Renderer) Measure(s string, _ kaolin.TextStyle) (width, height float64) {
	return float64(uniseg.StringWidth(s)) * r.cellW, r.cellH
}

// Buffer returns the cells drawn so far.
func (r *Renderer) Buffer() *Buffer {
	return r.buf
}

// Render consumes cmds and draws them in order over the current buffer.
func (r *Renderer) Render(cmds *kaolin.Commands) {
	var n int
	for cmd := range cmds.All() {
		r.draw(cmd)
		n++
	}
	debug.Logger().Debug("term: rendered", "commands", n)
}

func (r *Renderer) draw(cmd kaolin.Command) {
	switch cmd := cmd.(type) {
	case kaolin.DrawRectangle:
		if !r.visible(cmd.Bounds()) {
			return
		}
		x, y, w, h := r.cells(cmd.Bounds())
		if !cmd.Color.IsDefault() {
			r.buf.Fill(x, y, w, h, Style{Bg: cmd.Color})
		}
		if cmd.Border.Width > 0 {
			style := Style{Fg: cmd.Border.Color.Or(r.foreground)}
			r.buf.DrawBox(x, y, w, h, borderFor(cmd.Border.Width/r.cellW, cmd.CornerRadius), style)
		}
	case kaolin.DrawText:
		style := Style{
			Fg:    cmd.Color.Or(r.foreground),
			Attrs: r.fontAttrs[cmd.FontID],
		}
		r.buf.SetString(r.col(cmd.X), r.row(cmd.Y), cmd.Text, style)
	case kaolin.DrawCustom:
		if !r.visible(cmd.Bounds()) {
			return
		}
		x, y, w, h := r.cells(cmd.Bounds())
		if r.custom != nil {
			r.custom(r.buf, x, y, w, h, cmd)
			return
		}
		r.buf.DrawBox(x, y, w, h, BorderSingle, Style{Fg: r.foreground})
	}
}

func (r *Renderer) col(x float64) int { return int(math.Round(x / r.cellW)) }
func (r *Renderer) row(y float64) int { return int(math.Round(y / r.cellH)) }

// visible reports whether rect overlaps the grid with a positive area.
func (r *Renderer) visible(rect kaolin.Rect) bool {
	w, h := r.Viewport()
	return !rect.Intersect(kaolin.NewRect(0, 0, w, h)).IsEmpty()
}

// cells snaps a rectangle to the grid by rounding both of its edges.
func (r *Renderer) cells(rect kaolin.Rect) (x, y, width, height int) {
	x, y = r.col(rect.X), r.row(rect.Y)
	return x, y, r.col(rect.Right()) - x, r.row(rect.Bottom()) - y
}
