package scene

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	kaolin "github.com/grindlemire/go-kaolin"
)

var (
	// ErrEmpty is returned for documents without elements.
	ErrEmpty = errors.New("scene has no elements")

	// ErrUnknownKind is returned for elements with an unsupported kind.
	ErrUnknownKind = errors.New("unknown element kind")

	// ErrViewport is returned when the viewport is not positive.
	ErrViewport = errors.New("viewport must be positive")
)

// Kinds of element.
const (
	KindBox    = "box"
	KindText   = "text"
	KindCustom = "custom"
)

// Document is a decoded scene file.
type Document struct {
	Width      float64 `toml:"width"`
	Height     float64 `toml:"height"`
	Background string  `toml:"background"`

	// Arrangement of top-level elements.
	Direction string  `toml:"direction"`
	Align     string  `toml:"align"`
	Justify   string  `toml:"justify"`
	Gap       float64 `toml:"gap"`

	Children []Element `toml:"children"`
}

// Element is one node of the tree.
type Element struct {
	Kind string `toml:"kind"`
	ID   string `toml:"id"`

	Direction string  `toml:"direction"`
	Align     string  `toml:"align"`
	Justify   string  `toml:"justify"`
	Gap       float64 `toml:"gap"`
	Padding   Padding `toml:"padding"`

	Width  *SizingSpec `toml:"width"`
	Height *SizingSpec `toml:"height"`

	Background string      `toml:"background"`
	Color      string      `toml:"color"`
	Radius     float64     `toml:"radius"`
	Border     *BorderSpec `toml:"border"`

	Text     string  `toml:"text"`
	FontID   uint32  `toml:"font_id"`
	FontSize float64 `toml:"font_size"`

	// Data is handed to the renderer by custom elements.
	Data string `toml:"data"`

	Children []Element `toml:"children"`
}

// SizingSpec is the sizing table of one axis.
type SizingSpec struct {
	Fixed *float64    `toml:"fixed"`
	Grow  *float64    `toml:"grow"`
	Fit   *BoundsSpec `toml:"fit"`
	Min   *float64    `toml:"min"`
	Max   *float64    `toml:"max"`
}

// BoundsSpec holds the bounds of a fit sizing.
type BoundsSpec struct {
	Min *float64 `toml:"min"`
	Max *float64 `toml:"max"`
}

// BorderSpec is a container border.
type BorderSpec struct {
	Width float64 `toml:"width"`
	Color string  `toml:"color"`
}

// Padding accepts a single number, [vertical, horizontal] or
// [top, right, bottom, left].
type Padding struct {
	kaolin.Edges
}

// UnmarshalTOML implements toml.Unmarshaler.
func (p *Padding) UnmarshalTOML(v any) error {
	switch v := v.(type) {
	case int64, float64:
		n, _ := number(v)
		p.Edges = kaolin.EdgeAll(n)
		return nil
	case []any:
		nums := make([]float64, len(v))
		for i, item := range v {
			n, ok := number(item)
			if !ok {
				return fmt.Errorf("padding[%d]: expected a number, got %T", i, item)
			}
			nums[i] = n
		}
		switch len(nums) {
		case 1:
			p.Edges = kaolin.EdgeAll(nums[0])
		case 2:
			p.Edges = kaolin.EdgeSymmetric(nums[0], nums[1])
		case 4:
			p.Edges = kaolin.EdgeTRBL(nums[0], nums[1], nums[2], nums[3])
		default:
			return fmt.Errorf("padding: expected 1, 2 or 4 values, got %d", len(nums))
		}
		return nil
	default:
		return fmt.Errorf("padding: expected a number or an array, got %T", v)
	}
}

func number(v any) (float64, bool) {
	switch v := v.(type) {
	case int64:
		return float64(v), true
	case float64:
		return v, true
	}
	return 0, false
}

// Load reads and decodes the document at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Parse decodes a document. Keys that do not belong to the format are
// rejected so typos do not pass silently.
func Parse(data []byte) (*Document, error) {
	var doc Document
	md, err := toml.Decode(string(data), &doc)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	return &doc, nil
}

// Validate reports every problem in the document.
func (d *Document) Validate() error {
	_, err := d.compile()
	return err
}

// BackgroundColor returns the viewport background, or the default color
// when the document does not set one or sets an invalid one.
func (d *Document) BackgroundColor() kaolin.Color {
	if d.Background == "" {
		return kaolin.DefaultColor()
	}
	c, err := kaolin.HexColor(d.Background)
	if err != nil {
		return kaolin.DefaultColor()
	}
	return c
}

// Build appends the document's elements to s.
func (d *Document) Build(s *kaolin.Scope) error {
	c, err := d.compile()
	if err != nil {
		return err
	}
	c.build(s)
	return nil
}

// Draw lays the document out at its own viewport size.
func (d *Document) Draw(measure kaolin.MeasureFunc, opts ...kaolin.Option) (*kaolin.Commands, error) {
	c, err := d.compile()
	if err != nil {
		return nil, err
	}
	opts = append([]kaolin.Option{kaolin.WithRootLayout(c.root)}, opts...)
	k := kaolin.New(d.Width, d.Height, measure, opts...)
	return k.Draw(c.build), nil
}

// Count returns the number of elements in the document.
func (d *Document) Count() int {
	var count func([]Element) int
	count = func(es []Element) int {
		n := len(es)
		for _, e := range es {
			n += count(e.Children)
		}
		return n
	}
	return count(d.Children)
}
