package kaolin

import "math"

// measureText gives every byte 10 units of width and every line 20 units of height.
func measureText(text string, _ TextStyle) (float64, float64) {
	return float64(10 * len(text)), 20
}

// collect drains cmds and clears generated ids so commands compare by value.
func collect(cmds *Commands) []Command {
	var out []Command
	for c := range cmds.All() {
		switch c := c.(type) {
		case DrawRectangle:
			c.ID = ""
			out = append(out, c)
		case DrawCustom:
			c.ID = ""
			out = append(out, c)
		default:
			out = append(out, c)
		}
	}
	return out
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func rect(x, y, w, h float64) DrawRectangle {
	return DrawRectangle{X: x, Y: y, Width: w, Height: h}
}

func line(s string, x, y float64) DrawText {
	return DrawText{Text: s, X: x, Y: y, FontSize: DefaultFontSize}
}
