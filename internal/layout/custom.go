package layout

import "github.com/google/uuid"

// Custom is a leaf element that reserves space and hands opaque data to the
// renderer through a DrawCustom command.
type Custom struct {
	id            string
	width, height Sizing
	data          any
}

// NewCustom creates a custom element. An empty id is replaced with a random UUID.
func NewCustom(id string, width, height Sizing, data any) *Custom {
	if id == "" {
		id = uuid.NewString()
	}
	return &Custom{id: id, width: width, height: height, data: data}
}

// ID returns the element id.
func (c *Custom) ID() string { return c.id }

// Sizing implements Element.
func (c *Custom) Sizing() (width, height Dimension) {
	return c.width.Dimension(), c.height.Dimension()
}

// Render implements Element.
func (c *Custom) Render(bounds Rect, cmds *Commands) {
	cmds.Push(DrawCustom{
		ID:     c.id,
		X:      bounds.X,
		Y:      bounds.Y,
		Width:  bounds.Width,
		Height: bounds.Height,
		Data:   c.data,
	})
}
