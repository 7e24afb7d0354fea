package layout

// Edges represents values for four sides of a box.
type Edges struct {
	Top, Right, Bottom, Left float64
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n float64) Edges {
	return Edges{Top: n, Right: n, Bottom: n, Left: n}
}

// EdgeSymmetric creates Edges with vertical (top/bottom) and horizontal (left/right) values.
func EdgeSymmetric(v, h float64) Edges {
	return Edges{Top: v, Right: h, Bottom: v, Left: h}
}

// EdgeTRBL creates Edges following CSS order: Top, Right, Bottom, Left.
func EdgeTRBL(t, r, b, l float64) Edges {
	return Edges{Top: t, Right: r, Bottom: b, Left: l}
}

// EdgeHorizontal creates Edges with only left and right set.
func EdgeHorizontal(n float64) Edges {
	return Edges{Right: n, Left: n}
}

// EdgeVertical creates Edges with only top and bottom set.
func EdgeVertical(n float64) Edges {
	return Edges{Top: n, Bottom: n}
}

// Horizontal returns the sum of Left and Right.
func (e Edges) Horizontal() float64 {
	return e.Left + e.Right
}

// Vertical returns the sum of Top and Bottom.
func (e Edges) Vertical() float64 {
	return e.Top + e.Bottom
}

// IsZero returns true if all edge values are zero.
func (e Edges) IsZero() bool {
	return e.Top == 0 && e.Right == 0 && e.Bottom == 0 && e.Left == 0
}

// EdgeTop creates Edges with only the top set.
func EdgeTop(n float64) Edges {
	return Edges{Top: n}
}

// EdgeRight creates Edges with only the right set.
func EdgeRight(n float64) Edges {
	return Edges{Right: n}
}

// EdgeBottom creates Edges with only the bottom set.
func EdgeBottom(n float64) Edges {
	return Edges{Bottom: n}
}

// EdgeLeft creates Edges with only the left set.
func EdgeLeft(n float64) Edges {
	return Edges{Left: n}
}
