package layout

import "math"

// Nodes is an ordered group of siblings. Order is insertion order, which is
// also render order.
type Nodes []*Node

// Gaps returns the number of gaps between siblings.
func (ns Nodes) Gaps() int {
	if len(ns) == 0 {
		return 0
	}
	return len(ns) - 1
}

// CumulativeWidth returns the sum of current widths.
func (ns Nodes) CumulativeWidth() float64 {
	var sum float64
	for _, n := range ns {
		sum += n.width
	}
	return sum
}

// CumulativeHeight returns the sum of current heights.
func (ns Nodes) CumulativeHeight() float64 {
	var sum float64
	for _, n := range ns {
		sum += n.height
	}
	return sum
}

// MaxWidth returns the largest current width, or 0 if empty.
func (ns Nodes) MaxWidth() float64 {
	var m float64
	for _, n := range ns {
		m = max(m, n.width)
	}
	return m
}

// MaxHeight returns the largest current height, or 0 if empty.
func (ns Nodes) MaxHeight() float64 {
	var m float64
	for _, n := range ns {
		m = max(m, n.height)
	}
	return m
}

// GrowableWidth returns the nodes that can still grow horizontally.
func (ns Nodes) GrowableWidth() Nodes {
	return ns.filter(func(n *Node) bool { return n.growableWidth })
}

// GrowableHeight returns the nodes that can still grow vertically.
func (ns Nodes) GrowableHeight() Nodes {
	return ns.filter(func(n *Node) bool { return n.growableHeight })
}

// Shrinkable returns the nodes that can still shrink.
func (ns Nodes) Shrinkable() Nodes {
	return ns.filter(func(n *Node) bool { return n.shrinkable })
}

func (ns Nodes) filter(keep func(*Node) bool) Nodes {
	var out Nodes
	for _, n := range ns {
		if keep(n) {
			out = append(out, n)
		}
	}
	return out
}

// SmallestWidths returns the smallest and second smallest distinct widths.
// Missing values are +Inf.
func (ns Nodes) SmallestWidths() (smallest, second float64) {
	return smallestTwo(ns, func(n *Node) float64 { return n.width })
}

// SmallestHeights returns the smallest and second smallest distinct heights.
// Missing values are +Inf.
func (ns Nodes) SmallestHeights() (smallest, second float64) {
	return smallestTwo(ns, func(n *Node) float64 { return n.height })
}

// BiggestWidths returns the biggest and second biggest distinct widths.
// Missing values are 0.
func (ns Nodes) BiggestWidths() (biggest, second float64) {
	for _, n := range ns {
		switch {
		case n.width > biggest:
			second = biggest
			biggest = n.width
		case n.width > second && n.width < biggest:
			second = n.width
		}
	}
	return biggest, second
}

func smallestTwo(ns Nodes, size func(*Node) float64) (smallest, second float64) {
	smallest, second = math.Inf(1), math.Inf(1)
	for _, n := range ns {
		v := size(n)
		switch {
		case v < smallest:
			second = smallest
			smallest = v
		case v < second && v > smallest:
			second = v
		}
	}
	return smallest, second
}
