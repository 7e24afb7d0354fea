package layout

// SetBounds implements Positioner by placing the children inside bounds.
func (f *FlexBox) SetBounds(bounds Rect) {
	f.PositionChildren(bounds)
}

// PositionChildren assigns absolute positions to the children within bounds.
// Sizes must be final; positioning never changes them.
func (f *FlexBox) PositionChildren(bounds Rect) {
	s := f.style
	pad := s.Padding
	horizontal := s.HorizontalLayout()

	mainTotal, crossTotal := s.axes(bounds.Width, bounds.Height)
	mainPad, crossPad := s.axes(pad.Horizontal(), pad.Vertical())
	inner := bounds.Inset(pad)
	mainStart, crossStart := s.axes(inner.X, inner.Y)
	mainEnd, crossEnd := s.axes(inner.Right(), inner.Bottom())

	gaps := float64(f.children.Gaps())
	content := f.children.CumulativeHeight()
	if horizontal {
		content = f.children.CumulativeWidth()
	}
	empty := mainTotal - content

	var policyGap float64
	switch s.Layout.Justify {
	case JustifySpaceBetween:
		if gaps > 0 {
			policyGap = empty / gaps
		}
	case JustifySpaceAround:
		policyGap = empty / (gaps + 2)
	}
	gap := max(policyGap, s.Layout.Gap)
	leftover := empty - gap*gaps

	var cursor float64
	switch s.Layout.Justify {
	case JustifySpaceAround:
		cursor = mainStart + gap
	case JustifyEnd:
		cursor = mainEnd - content - gap*gaps
	case JustifyCenter:
		cursor = mainStart + (leftover-mainPad)/2
	default:
		cursor = mainStart
	}

	usableCross := crossTotal - crossPad
	reversed := s.Layout.Direction.Reversed()

	for _, n := range f.children {
		mainSize, crossSize := s.axes(n.width, n.height)

		var cross float64
		switch s.Layout.Align {
		case AlignCenter:
			cross = crossStart + (usableCross-crossSize)/2
		case AlignEnd:
			cross = crossEnd - crossSize
		default:
			cross = crossStart
		}

		main := cursor
		if reversed {
			main = mainStart + mainEnd - cursor - mainSize
		}

		if horizontal {
			n.SetPosition(main, cross)
		} else {
			n.SetPosition(cross, main)
		}
		cursor += mainSize + gap
	}
}
