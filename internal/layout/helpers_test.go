package layout

// testMeasure gives every byte 10 units of width and every line 20 units of height.
func testMeasure(text string, _ TextStyle) (float64, float64) {
	return float64(10 * len(text)), 20
}

func box(style FlexStyle, children ...*Node) *Node {
	f := NewFlexBox(style)
	for _, c := range children {
		f.AddChild(c)
	}
	return NewNode(f, f.ID())
}

func text(content string) *Node {
	return NewNode(NewText(content, TextStyle{}, testMeasure), "")
}

func custom(id string, w, h Sizing) *Node {
	return NewNode(NewCustom(id, w, h, nil), id)
}

// layoutTree runs the full layout over children placed in a w by h viewport
// and returns the emitted commands.
func layoutTree(w, h float64, children ...*Node) []Command {
	root := NewFlexBox(FlexStyle{Width: Fixed(w), Height: Fixed(h)})
	for _, c := range children {
		root.AddChild(c)
	}
	root.GrowChildrenWidth(w)
	root.GrowChildrenHeight(h)
	root.PositionChildren(NewRect(0, 0, w, h))

	cmds := NewCommands()
	root.RenderChildren(cmds)
	return cmds.Collect()
}

// stripIDs clears generated ids so commands compare by value.
func stripIDs(cmds []Command) []Command {
	out := make([]Command, len(cmds))
	for i, c := range cmds {
		switch c := c.(type) {
		case DrawRectangle:
			c.ID = ""
			out[i] = c
		case DrawCustom:
			c.ID = ""
			out[i] = c
		default:
			out[i] = c
		}
	}
	return out
}
