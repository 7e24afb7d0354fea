package layout

import (
	"fmt"
	"iter"
)

// Command is one drawing instruction. Its concrete type is DrawRectangle,
// DrawText or DrawCustom. All coordinates are absolute.
type Command interface {
	// Bounds returns the area the command draws into. Text commands report
	// their origin with zero size.
	Bounds() Rect

	command()
}

// DrawRectangle fills a (possibly rounded) rectangle and strokes its border.
type DrawRectangle struct {
	ID            string
	X, Y          float64
	Width, Height float64
	Color         Color
	CornerRadius  float64
	Border        Border
}

// DrawText draws one already wrapped and trimmed line of text with its top
// left corner at (X, Y).
type DrawText struct {
	Text     string
	X, Y     float64
	FontID   uint32
	FontSize float64
	Color    Color
}

// DrawCustom hands user data to the renderer along with the element's bounds.
type DrawCustom struct {
	ID            string
	X, Y          float64
	Width, Height float64
	Data          any
}

func (DrawRectangle) command() {}
func (DrawText) command()      {}
func (DrawCustom) command()    {}

func (c DrawRectangle) Bounds() Rect { return NewRect(c.X, c.Y, c.Width, c.Height) }
func (c DrawText) Bounds() Rect      { return NewRect(c.X, c.Y, 0, 0) }
func (c DrawCustom) Bounds() Rect    { return NewRect(c.X, c.Y, c.Width, c.Height) }

func (c DrawRectangle) String() string {
	return fmt.Sprintf("rect(%g, %g, %g x %g, %v)", c.X, c.Y, c.Width, c.Height, c.Color)
}

func (c DrawText) String() string {
	return fmt.Sprintf("text(%q at %g, %g, %v)", c.Text, c.X, c.Y, c.Color)
}

func (c DrawCustom) String() string {
	return fmt.Sprintf("custom(%g, %g, %g x %g)", c.X, c.Y, c.Width, c.Height)
}

// Commands is an ordered, single-pass sequence of drawing commands.
type Commands struct {
	list []Command
	next int
}

// NewCommands returns a sequence holding cmds.
func NewCommands(cmds ...Command) *Commands {
	return &Commands{list: cmds}
}

// Push appends a command.
func (c *Commands) Push(cmd Command) {
	c.list = append(c.list, cmd)
}

// Len returns the number of commands not yet consumed.
func (c *Commands) Len() int {
	return len(c.list) - c.next
}

// IsEmpty reports whether every command has been consumed.
func (c *Commands) IsEmpty() bool {
	return c.Len() == 0
}

// Next consumes and returns the next command.
func (c *Commands) Next() (Command, bool) {
	if c.next >= len(c.list) {
		return nil, false
	}
	cmd := c.list[c.next]
	c.list[c.next] = nil
	c.next++
	return cmd, true
}

// All consumes the remaining commands in order.
func (c *Commands) All() iter.Seq[Command] {
	return func(yield func(Command) bool) {
		for {
			cmd, ok := c.Next()
			if !ok || !yield(cmd) {
				return
			}
		}
	}
}

// Collect consumes the remaining commands into a slice.
func (c *Commands) Collect() []Command {
	out := make([]Command, 0, c.Len())
	for cmd := range c.All() {
		out = append(out, cmd)
	}
	return out
}
