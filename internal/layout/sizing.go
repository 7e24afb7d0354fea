package layout

import (
	"errors"
	"fmt"
	"math"
)

// ErrNegative is returned (or panicked with) when a sizing value is negative.
var ErrNegative = errors.New("negative sizing value")

// Policy selects how a Sizing resolves along one axis.
type Policy uint8

const (
	PolicyFit   Policy = iota // Collapse to the minimum content size
	PolicyFixed               // Exactly the given size
	PolicyGrow                // Take a share of the free space
)

// String returns the policy name.
func (p Policy) String() string {
	switch p {
	case PolicyFixed:
		return "fixed"
	case PolicyGrow:
		return "grow"
	default:
		return "fit"
	}
}

// Bound is an explicit minimum or maximum passed to Fit, Grow or NewSizing.
type Bound struct {
	max   bool
	value float64
}

// Min bounds a Sizing from below.
func Min(v float64) Bound {
	return Bound{value: v}
}

// Max bounds a Sizing from above.
func Max(v float64) Bound {
	return Bound{max: true, value: v}
}

// Sizing is the user-facing sizing policy of one axis.
// The zero value is Fit with no bounds.
type Sizing struct {
	policy Policy
	value  float64 // fixed size or grow factor
	min    float64
	max    float64
	hasMax bool
}

// NewSizing builds a Sizing, returning an error wrapping ErrNegative if any
// input is negative. For PolicyFixed value is the size, for PolicyGrow it is
// the factor and for PolicyFit it is ignored.
func NewSizing(p Policy, value float64, bounds ...Bound) (Sizing, error) {
	s := Sizing{policy: p, value: value}
	for _, b := range bounds {
		if b.max {
			s.max = b.value
			s.hasMax = true
		} else {
			s.min = b.value
		}
	}
	if err := s.Validate(); err != nil {
		return Sizing{}, err
	}
	return s, nil
}

func mustSizing(p Policy, value float64, bounds ...Bound) Sizing {
	s, err := NewSizing(p, value, bounds...)
	if err != nil {
		panic(err)
	}
	return s
}

// Fixed sizes an axis to exactly v. Panics if v is negative.
func Fixed(v float64) Sizing {
	return mustSizing(PolicyFixed, v)
}

// Fit sizes an axis to its content, optionally bounded.
// Panics if a bound is negative.
func Fit(bounds ...Bound) Sizing {
	return mustSizing(PolicyFit, 0, bounds...)
}

// Grow lets an axis take free space with factor 1.
func Grow(bounds ...Bound) Sizing {
	return mustSizing(PolicyGrow, 1, bounds...)
}

// GrowBy lets an axis take free space weighted by factor.
// Panics if factor or a bound is negative.
func GrowBy(factor float64, bounds ...Bound) Sizing {
	return mustSizing(PolicyGrow, factor, bounds...)
}

// Policy returns the sizing policy.
func (s Sizing) Policy() Policy {
	return s.policy
}

// Validate reports a negative fixed size, factor or bound.
func (s Sizing) Validate() error {
	switch {
	case s.policy == PolicyFixed && s.value < 0:
		return fmt.Errorf("%w: fixed size %g", ErrNegative, s.value)
	case s.policy == PolicyGrow && s.value < 0:
		return fmt.Errorf("%w: grow factor %g", ErrNegative, s.value)
	case s.min < 0:
		return fmt.Errorf("%w: min %g", ErrNegative, s.min)
	case s.hasMax && s.max < 0:
		return fmt.Errorf("%w: max %g", ErrNegative, s.max)
	}
	return nil
}

// Dimension resolves the policy into a per-axis constraint.
func (s Sizing) Dimension() Dimension {
	upper := math.Inf(1)
	if s.hasMax {
		upper = s.max
	}
	switch s.policy {
	case PolicyFixed:
		return Dimension{Min: s.value, Preferred: Preferred{Value: s.value}, Max: s.value}
	case PolicyGrow:
		return Dimension{Min: s.min, Preferred: Preferred{Grow: true, Value: s.value}, Max: upper}
	default:
		return Dimension{Min: s.min, Preferred: Preferred{Value: s.min}, Max: upper}
	}
}

// String formats the sizing the way it would be written in code.
func (s Sizing) String() string {
	switch s.policy {
	case PolicyFixed:
		return fmt.Sprintf("fixed(%g)", s.value)
	case PolicyGrow:
		return fmt.Sprintf("grow(%g)", s.value)
	default:
		return "fit"
	}
}

// Preferred is the size an axis gravitates to: a fixed value, or a grow factor.
type Preferred struct {
	Grow  bool
	Value float64
}

// Dimension is the resolved constraint of one axis.
type Dimension struct {
	Min       float64
	Preferred Preferred
	Max       float64
}

// FixedDimension returns a Dimension preferring v within [lo, hi].
func FixedDimension(lo, v, hi float64) Dimension {
	return Dimension{Min: lo, Preferred: Preferred{Value: v}, Max: hi}
}

// IsFixed reports whether the preferred size is a fixed value.
func (d Dimension) IsFixed() bool {
	return !d.Preferred.Grow
}

// IsGrowable reports whether the axis takes part in growth.
func (d Dimension) IsGrowable() bool {
	return d.Preferred.Grow
}

// IsShrinkable reports whether the axis has room between its bounds.
func (d Dimension) IsShrinkable() bool {
	return d.Max > d.Min
}

// GrowFactor returns the grow weight, or 0 for fixed preferences.
func (d Dimension) GrowFactor() float64 {
	if d.Preferred.Grow {
		return d.Preferred.Value
	}
	return 0
}

// Start returns the initial size: the fixed preference, otherwise min.
func (d Dimension) Start() float64 {
	if d.Preferred.Grow {
		return d.Min
	}
	return d.Preferred.Value
}

// Clamp bounds x to [Min, Max]. NaN maps to Min; if Min > Max, Min wins.
func (d Dimension) Clamp(x float64) float64 {
	if math.IsNaN(x) {
		return d.Min
	}
	if x > d.Max {
		x = d.Max
	}
	if x < d.Min {
		x = d.Min
	}
	return x
}
