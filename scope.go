package kaolin

import "github.com/grindlemire/go-kaolin/internal/layout"

// Scope appends children to one container while a tree is being built.
// Methods return the scope so calls can be chained.
type Scope struct {
	flex    *layout.FlexBox
	measure MeasureFunc
}

// With adds a container styled by style and fills it by calling contents
// with a scope of its own. The container's width is fitted to its children
// once contents returns.
func (s *Scope) With(style FlexStyle, contents func(*Scope)) *Scope {
	child := layout.NewFlexBox(style)
	if contents != nil {
		contents(&Scope{flex: child, measure: s.measure})
	}
	s.flex.AddChild(layout.NewNode(child, child.ID()))
	return s
}

// Text adds a run of text that wraps to the width it is given.
func (s *Scope) Text(content string, style TextStyle) *Scope {
	s.flex.AddChild(layout.NewNode(layout.NewText(content, style, s.measure), ""))
	return s
}

// Custom adds an element sized by style.Width and style.Height that renders
// as a DrawCustom command carrying data.
func (s *Scope) Custom(style FlexStyle, data any) *Scope {
	c := layout.NewCustom(style.ID, style.Width, style.Height, data)
	s.flex.AddChild(layout.NewNode(c, c.ID()))
	return s
}

// Element adds a user-defined element. id may be empty.
func (s *Scope) Element(id string, e Element) *Scope {
	s.flex.AddChild(layout.NewNode(e, id))
	return s
}

// Style returns the style of the container being filled.
func (s *Scope) Style() FlexStyle {
	return s.flex.Style()
}
