package layout

import (
	"math"
	"strings"
)

// Text is a leaf element holding a run of text. Its height depends on the
// width it is given: lines are wrapped once the width is final.
type Text struct {
	content   string
	style     TextStyle
	measure   MeasureFunc
	lines     []Span
	inherited Color
}

// NewText creates a text element measured with measure. A zero font size
// becomes DefaultFontSize.
func NewText(content string, style TextStyle, measure MeasureFunc) *Text {
	return &Text{
		content: content,
		style:   style.normalized(),
		measure: measure,
	}
}

// Content returns the unwrapped text.
func (t *Text) Content() string { return t.content }

// Style returns the text style.
func (t *Text) Style() TextStyle { return t.style }

// Spans returns the line spans of the last wrap.
func (t *Text) Spans() []Span { return t.lines }

// Lines returns the trimmed text of each wrapped line.
func (t *Text) Lines() []string {
	out := make([]string, len(t.lines))
	for i, sp := range t.lines {
		out[i] = strings.TrimSpace(t.content[sp.Start:sp.End])
	}
	return out
}

// Color returns the style color, or the inherited one when unset.
func (t *Text) Color() Color {
	return t.style.Color.Or(t.inherited)
}

// InheritColor implements ColorInheritor.
func (t *Text) InheritColor(c Color) {
	t.inherited = c
}

// lineSize measures one line with surrounding whitespace removed. A blank
// line is as tall as a space.
func (t *Text) lineSize(line string) (width, height float64) {
	line = strings.TrimSpace(line)
	if line == "" {
		_, h := t.measure.Measure(" ", t.style)
		return 0, h
	}
	return t.measure.Measure(line, t.style)
}

// explicitLines splits on newlines, dropping one trailing empty line and
// carriage returns.
func (t *Text) explicitLines() []string {
	if t.content == "" {
		return nil
	}
	lines := strings.Split(t.content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// PreferredSize is the unwrapped size: the widest explicit line by the sum
// of their heights.
func (t *Text) PreferredSize() (width, height float64) {
	for _, line := range t.explicitLines() {
		w, h := t.measure.Measure(line, t.style)
		if strings.TrimSpace(line) == "" {
			_, h = t.lineSize(line)
		}
		width = max(width, w)
		height += h
	}
	return width, height
}

// MinimumSize is the size of the widest and of the tallest word.
func (t *Text) MinimumSize() (width, height float64) {
	for _, word := range strings.Fields(t.content) {
		w, h := t.measure.Measure(word, t.style)
		width = max(width, w)
		height = max(height, h)
	}
	return width, height
}

// Sizing implements Element. Text prefers its unwrapped width and may shrink
// down to its widest word; its height is at least the unwrapped height until
// wrapping refits it.
func (t *Text) Sizing() (width, height Dimension) {
	prefW, prefH := t.PreferredSize()
	minW, _ := t.MinimumSize()
	return FixedDimension(minW, prefW, prefW), FixedDimension(prefH, prefH, math.Inf(1))
}

// DefaultFlags implements FlagDefaulter: text never grows and can always shrink.
func (t *Text) DefaultFlags(Dimension, Dimension) (growWidth, growHeight, shrink bool) {
	return false, false, true
}

// FitHeight implements HeightFitter by wrapping to the final width.
func (t *Text) FitHeight(finalWidth float64) float64 {
	return t.Wrap(finalWidth)
}

// Render emits one command per non-blank line, top to bottom.
func (t *Text) Render(bounds Rect, cmds *Commands) {
	y := bounds.Y
	color := t.Color()
	for _, sp := range t.lines {
		line := strings.TrimSpace(t.content[sp.Start:sp.End])
		_, h := t.lineSize(line)
		if line != "" {
			cmds.Push(DrawText{
				Text:     line,
				X:        bounds.X,
				Y:        y,
				FontID:   t.style.FontID,
				FontSize: t.style.FontSize,
				Color:    color,
			})
		}
		y += h
	}
}
