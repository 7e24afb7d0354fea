package term

import (
	"strconv"

	kaolin "github.com/grindlemire/go-kaolin"
)

// escBuilder builds SGR escape sequences into a reusable buffer.
type escBuilder struct {
	buf []byte
}

func newEscBuilder(capacity int) *escBuilder {
	return &escBuilder{buf: make([]byte, 0, capacity)}
}

func (e *escBuilder) Reset() {
	e.buf = e.buf[:0]
}

func (e *escBuilder) Bytes() []byte {
	return e.buf
}

func (e *escBuilder) writeCSI() {
	e.buf = append(e.buf, '\x1b', '[')
}

func (e *escBuilder) writeInt(n int) {
	e.buf = strconv.AppendInt(e.buf, int64(n), 10)
}

// ResetStyle resets all attributes and colors.
func (e *escBuilder) ResetStyle() {
	e.writeCSI()
	e.buf = append(e.buf, '0', 'm')
}

// SetStyle starts from a reset and adds only non-default attributes.
func (e *escBuilder) SetStyle(s Style, level ColorLevel) {
	e.writeCSI()
	e.buf = append(e.buf, '0')

	if s.Attrs&AttrBold != 0 {
		e.buf = append(e.buf, ';', '1')
	}
	if s.Attrs&AttrDim != 0 {
		e.buf = append(e.buf, ';', '2')
	}
	if s.Attrs&AttrItalic != 0 {
		e.buf = append(e.buf, ';', '3')
	}
	if s.Attrs&AttrUnderline != 0 {
		e.buf = append(e.buf, ';', '4')
	}

	e.appendColor(s.Fg, true, level)
	e.appendColor(s.Bg, false, level)
	e.buf = append(e.buf, 'm')
}

func (e *escBuilder) appendColor(c kaolin.Color, fg bool, level ColorLevel) {
	if c.IsDefault() || level == ColorNone {
		return
	}
	if _, _, _, a := c.ToRGBA(); a == 0 {
		return
	}

	base := 48
	if fg {
		base = 38
	}

	if c.Type() == kaolin.ColorRGB && level >= ColorTrue {
		r, g, b, _ := c.ToRGBA()
		e.buf = append(e.buf, ';')
		e.writeInt(base)
		e.buf = append(e.buf, ';', '2', ';')
		e.writeInt(int(r))
		e.buf = append(e.buf, ';')
		e.writeInt(int(g))
		e.buf = append(e.buf, ';')
		e.writeInt(int(b))
		return
	}

	idx := c.ToANSI().ANSI()
	switch {
	case idx < 8:
		e.buf = append(e.buf, ';')
		e.writeInt(base - 8 + int(idx))
	case idx < 16:
		e.buf = append(e.buf, ';')
		e.writeInt(base + 52 + int(idx) - 8)
	case level >= Color256:
		e.buf = append(e.buf, ';')
		e.writeInt(base)
		e.buf = append(e.buf, ';', '5', ';')
		e.writeInt(int(idx))
	}
}

func (e *escBuilder) WriteString(s string) {
	e.buf = append(e.buf, s...)
}

func (e *escBuilder) Newline() {
	e.buf = append(e.buf, '\n')
}
