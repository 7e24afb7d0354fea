package scene

import (
	"errors"
	"fmt"

	kaolin "github.com/grindlemire/go-kaolin"
)

// compiled is a document with every style resolved.
type compiled struct {
	root  kaolin.Layout
	items []item
}

type item struct {
	kind      string
	style     kaolin.FlexStyle
	text      string
	textStyle kaolin.TextStyle
	data      string
	children  []item
}

func (d *Document) compile() (*compiled, error) {
	var errs []error
	fail := func(path string, err error) {
		errs = append(errs, fmt.Errorf("%s: %w", path, err))
	}

	if d.Width <= 0 || d.Height <= 0 {
		fail("viewport", fmt.Errorf("%w: %gx%g", ErrViewport, d.Width, d.Height))
	}
	if len(d.Children) == 0 {
		errs = append(errs, ErrEmpty)
	}
	if d.Background != "" {
		if _, err := kaolin.HexColor(d.Background); err != nil {
			fail("background", err)
		}
	}

	root, err := parseLayout(d.Direction, d.Align, d.Justify, d.Gap)
	if err != nil {
		fail("layout", err)
	}

	items := compileElements("children", d.Children, fail)
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return &compiled{root: root, items: items}, nil
}

func compileElements(path string, elems []Element, fail func(string, error)) []item {
	items := make([]item, 0, len(elems))
	for i, e := range elems {
		p := fmt.Sprintf("%s[%d]", path, i)
		it, ok := compileElement(p, e, fail)
		if ok {
			items = append(items, it)
		}
	}
	return items
}

func compileElement(path string, e Element, fail func(string, error)) (item, bool) {
	it := item{kind: e.Kind}
	ok := true
	check := func(field string, err error) {
		if err != nil {
			fail(path+"."+field, err)
			ok = false
		}
	}

	switch e.Kind {
	case KindBox, KindCustom:
	case KindText:
		if len(e.Children) > 0 {
			check("children", errors.New("text elements cannot have children"))
		}
	default:
		fail(path, fmt.Errorf("%w %q", ErrUnknownKind, e.Kind))
		return it, false
	}

	var err error
	it.style.ID = e.ID
	it.style.Layout, err = parseLayout(e.Direction, e.Align, e.Justify, e.Gap)
	check("layout", err)
	pad := e.Padding.Edges
	if least := min(pad.Top, pad.Right, pad.Bottom, pad.Left); least < 0 {
		check("padding", fmt.Errorf("%w: %g", kaolin.ErrNegative, least))
	}
	it.style.Padding = e.Padding.Edges

	it.style.Width, err = e.Width.sizing()
	check("width", err)
	it.style.Height, err = e.Height.sizing()
	check("height", err)

	it.style.Background, err = parseColor(e.Background)
	check("background", err)
	it.style.Color, err = parseColor(e.Color)
	check("color", err)

	if e.Radius < 0 {
		check("radius", fmt.Errorf("%w: %g", kaolin.ErrNegative, e.Radius))
	}
	it.style.CornerRadius = e.Radius

	if e.Border != nil {
		if e.Border.Width < 0 {
			check("border.width", fmt.Errorf("%w: %g", kaolin.ErrNegative, e.Border.Width))
		}
		it.style.Border.Width = e.Border.Width
		it.style.Border.Color, err = parseColor(e.Border.Color)
		check("border.color", err)
	}

	if e.FontSize < 0 {
		check("font_size", fmt.Errorf("%w: %g", kaolin.ErrNegative, e.FontSize))
	}
	it.text = e.Text
	it.textStyle = kaolin.TextStyle{FontID: e.FontID, FontSize: e.FontSize, Color: it.style.Color}
	it.data = e.Data

	it.children = compileElements(path+".children", e.Children, fail)
	return it, ok
}

func (c *compiled) build(s *kaolin.Scope) {
	buildItems(s, c.items)
}

func buildItems(s *kaolin.Scope, items []item) {
	for _, it := range items {
		switch it.kind {
		case KindBox:
			children := it.children
			s.With(it.style, func(s *kaolin.Scope) {
				buildItems(s, children)
			})
		case KindText:
			s.Text(it.text, it.textStyle)
		case KindCustom:
			s.Custom(it.style, it.data)
		}
	}
}

func (s *SizingSpec) sizing() (kaolin.Sizing, error) {
	if s == nil {
		return kaolin.Fit(), nil
	}

	var bounds []kaolin.Bound
	lo, hi := s.Min, s.Max
	if s.Fit != nil {
		if s.Fit.Min != nil {
			lo = s.Fit.Min
		}
		if s.Fit.Max != nil {
			hi = s.Fit.Max
		}
	}
	if lo != nil {
		bounds = append(bounds, kaolin.Min(*lo))
	}
	if hi != nil {
		bounds = append(bounds, kaolin.Max(*hi))
	}

	switch {
	case s.Fixed != nil && (s.Grow != nil || s.Fit != nil):
		return kaolin.Sizing{}, errors.New("fixed cannot be combined with grow or fit")
	case s.Grow != nil && s.Fit != nil:
		return kaolin.Sizing{}, errors.New("grow cannot be combined with fit")
	case s.Fixed != nil:
		if len(bounds) > 0 {
			return kaolin.Sizing{}, errors.New("fixed sizing takes no min or max")
		}
		return kaolin.NewSizing(kaolin.PolicyFixed, *s.Fixed)
	case s.Grow != nil:
		return kaolin.NewSizing(kaolin.PolicyGrow, *s.Grow, bounds...)
	default:
		return kaolin.NewSizing(kaolin.PolicyFit, 0, bounds...)
	}
}

func parseColor(s string) (kaolin.Color, error) {
	if s == "" {
		return kaolin.DefaultColor(), nil
	}
	return kaolin.HexColor(s)
}

func parseLayout(direction, align, justify string, gap float64) (kaolin.Layout, error) {
	var l kaolin.Layout
	var errs []error

	switch direction {
	case "", "ltr":
		l.Direction = kaolin.LeftToRight
	case "ttb":
		l.Direction = kaolin.TopToBottom
	case "rtl":
		l.Direction = kaolin.RightToLeft
	case "btt":
		l.Direction = kaolin.BottomToTop
	default:
		errs = append(errs, fmt.Errorf("unknown direction %q", direction))
	}

	switch align {
	case "", "start":
		l.Align = kaolin.AlignStart
	case "end":
		l.Align = kaolin.AlignEnd
	case "center":
		l.Align = kaolin.AlignCenter
	case "stretch":
		l.Align = kaolin.AlignStretch
	default:
		errs = append(errs, fmt.Errorf("unknown align %q", align))
	}

	switch justify {
	case "", "start":
		l.Justify = kaolin.JustifyStart
	case "end":
		l.Justify = kaolin.JustifyEnd
	case "center":
		l.Justify = kaolin.JustifyCenter
	case "between":
		l.Justify = kaolin.JustifySpaceBetween
	case "around":
		l.Justify = kaolin.JustifySpaceAround
	default:
		errs = append(errs, fmt.Errorf("unknown justify %q", justify))
	}

	if gap < 0 {
		errs = append(errs, fmt.Errorf("gap: %w: %g", kaolin.ErrNegative, gap))
	}
	l.Gap = gap

	return l, errors.Join(errs...)
}
