package layout

import (
	"errors"
	"fmt"
	"strings"
)

// ColorType distinguishes between color representations.
type ColorType uint8

const (
	// ColorDefault leaves the choice to the renderer (no color set).
	ColorDefault ColorType = iota
	// ColorANSI represents an ANSI 256 palette color (0-255).
	ColorANSI
	// ColorRGB represents a 32-bit RGBA color.
	ColorRGB
)

// Color is a renderer-agnostic color. The zero value is the default color:
// renderers substitute their own foreground or background for it.
type Color struct {
	typ ColorType
	// For ANSI: r holds the palette index (0-255)
	// For RGB: r, g, b, a hold the color components
	r, g, b, a uint8
}

// DefaultColor returns a Color that defers to the renderer.
func DefaultColor() Color {
	return Color{typ: ColorDefault}
}

// ANSIColor returns a Color from the ANSI 256 palette.
func ANSIColor(index uint8) Color {
	return Color{typ: ColorANSI, r: index}
}

// RGBColor returns an opaque color.
func RGBColor(r, g, b uint8) Color {
	return Color{typ: ColorRGB, r: r, g: g, b: b, a: 0xff}
}

// RGBAColor returns a color with alpha.
func RGBAColor(r, g, b, a uint8) Color {
	return Color{typ: ColorRGB, r: r, g: g, b: b, a: a}
}

// Hex returns the color packed as 0xRRGGBBAA.
func Hex(v uint32) Color {
	return RGBAColor(uint8(v>>24), uint8(v>>16), uint8(v>>8), uint8(v))
}

// HexColor parses a hex color string and returns a Color.
// Supported formats: "#RGB", "#RRGGBB" and "#RRGGBBAA".
func HexColor(hex string) (Color, error) {
	hex = strings.TrimPrefix(hex, "#")

	switch len(hex) {
	case 8:
		r, g, b, err := parseHexTriplet(hex[:6])
		if err != nil {
			return Color{}, err
		}
		a, err := parseHexByte(hex[6:8])
		if err != nil {
			return Color{}, err
		}
		return RGBAColor(r, g, b, a), nil
	case 6:
		r, g, b, err := parseHexTriplet(hex)
		if err != nil {
			return Color{}, err
		}
		return RGBColor(r, g, b), nil
	case 3:
		// #RGB -> expand to #RRGGBB
		var c [3]uint8
		for i := range c {
			n, err := parseHexNibble(hex[i])
			if err != nil {
				return Color{}, err
			}
			c[i] = n<<4 | n
		}
		return RGBColor(c[0], c[1], c[2]), nil
	default:
		return Color{}, errors.New("invalid hex color format: expected #RGB, #RRGGBB or #RRGGBBAA")
	}
}

func parseHexTriplet(s string) (r, g, b uint8, err error) {
	if r, err = parseHexByte(s[0:2]); err != nil {
		return
	}
	if g, err = parseHexByte(s[2:4]); err != nil {
		return
	}
	b, err = parseHexByte(s[4:6])
	return
}

// parseHexByte parses a two-character hex string into a byte.
func parseHexByte(s string) (uint8, error) {
	high, err := parseHexNibble(s[0])
	if err != nil {
		return 0, err
	}
	low, err := parseHexNibble(s[1])
	if err != nil {
		return 0, err
	}
	return high<<4 | low, nil
}

// parseHexNibble parses a single hex character into a nibble (0-15).
func parseHexNibble(c byte) (uint8, error) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', nil
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, nil
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, nil
	default:
		return 0, fmt.Errorf("invalid hex character %q", c)
	}
}

// Type returns the ColorType of this color.
func (c Color) Type() ColorType {
	return c.typ
}

// IsDefault returns true if no color was set.
func (c Color) IsDefault() bool {
	return c.typ == ColorDefault
}

// Or returns c, or fallback when c is the default color.
func (c Color) Or(fallback Color) Color {
	if c.typ == ColorDefault {
		return fallback
	}
	return c
}

// ANSI returns the ANSI palette index.
// Panics if the color is not an ANSI color.
func (c Color) ANSI() uint8 {
	if c.typ != ColorANSI {
		panic("Color.ANSI() called on non-ANSI color")
	}
	return c.r
}

// Equal returns true if both colors are identical.
func (c Color) Equal(other Color) bool {
	if c.typ != other.typ {
		return false
	}
	switch c.typ {
	case ColorANSI:
		return c.r == other.r
	case ColorRGB:
		return c.r == other.r && c.g == other.g && c.b == other.b && c.a == other.a
	}
	return true
}

// ToRGBA returns the components of any color.
// ANSI colors are approximated; the default color is fully transparent.
func (c Color) ToRGBA() (r, g, b, a uint8) {
	switch c.typ {
	case ColorRGB:
		return c.r, c.g, c.b, c.a
	case ColorANSI:
		r, g, b = ansiToRGB(c.r)
		return r, g, b, 0xff
	}
	return 0, 0, 0, 0
}

// ToANSI approximates an RGB color to the nearest ANSI 256 palette entry.
// Uses the 6x6x6 color cube (indices 16-231) plus grayscale (232-255).
// Returns the color unchanged if it's already ANSI or default.
func (c Color) ToANSI() Color {
	if c.typ != ColorRGB {
		return c
	}

	r, g, b := c.r, c.g, c.b

	if r == g && g == b {
		if r < 8 {
			return ANSIColor(16)
		}
		if r > 248 {
			return ANSIColor(231)
		}
		return ANSIColor(uint8(232 + (int(r)-8)*24/240))
	}

	ri := int(r) * 5 / 255
	gi := int(g) * 5 / 255
	bi := int(b) * 5 / 255
	return ANSIColor(uint8(16 + 36*ri + 6*gi + bi))
}

// String formats the color for diagnostics: "default", "ansi(n)" or "#rrggbbaa".
func (c Color) String() string {
	switch c.typ {
	case ColorANSI:
		return fmt.Sprintf("ansi(%d)", c.r)
	case ColorRGB:
		return fmt.Sprintf("#%02x%02x%02x%02x", c.r, c.g, c.b, c.a)
	}
	return "default"
}

// Named colors.
var (
	Black       = RGBColor(0, 0, 0)
	White       = RGBColor(255, 255, 255)
	Red         = RGBColor(255, 0, 0)
	Green       = RGBColor(0, 255, 0)
	Blue        = RGBColor(0, 0, 255)
	Transparent = RGBAColor(0, 0, 0, 0)
)

// ansi16RGB maps ANSI colors 0-15 to approximate RGB values.
var ansi16RGB = [16][3]uint8{
	{0, 0, 0},
	{205, 49, 49},
	{13, 188, 121},
	{229, 229, 16},
	{36, 114, 200},
	{188, 63, 188},
	{17, 168, 205},
	{229, 229, 229},
	{102, 102, 102},
	{241, 76, 76},
	{35, 209, 139},
	{245, 245, 67},
	{59, 142, 234},
	{214, 112, 214},
	{41, 184, 219},
	{255, 255, 255},
}

func ansiToRGB(idx uint8) (r, g, b uint8) {
	switch {
	case idx < 16:
		rgb := ansi16RGB[idx]
		return rgb[0], rgb[1], rgb[2]
	case idx < 232:
		// 6x6x6 cube: 0->0, 1->95, 2->135, 3->175, 4->215, 5->255
		idx -= 16
		cube := func(v uint8) uint8 {
			if v == 0 {
				return 0
			}
			return 55 + v*40
		}
		return cube(idx / 36), cube((idx % 36) / 6), cube(idx % 6)
	default:
		gray := 8 + (idx-232)*10
		return gray, gray, gray
	}
}
