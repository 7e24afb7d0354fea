package term

import (
	"bytes"
	"testing"

	kaolin "github.com/grindlemire/go-kaolin"
)

func TestBuffer_SetString(t *testing.T) {
	type tc struct {
		width    int
		setup    func(b *Buffer)
		x, y     int
		s        string
		advanced int
		expected string
	}

	tests := map[string]tc{
		"ascii": {
			width: 5, x: 1, s: "hi",
			advanced: 2, expected: " hi  ",
		},
		"clipped right": {
			width: 3, x: 1, s: "hello",
			advanced: 2, expected: " he",
		},
		"clipped left": {
			width: 4, x: -1, s: "abc",
			advanced: 3, expected: "bc  ",
		},
		"wide grapheme": {
			width: 4, x: 0, s: "世",
			advanced: 2, expected: "世  ",
		},
		"wide grapheme at last column": {
			width: 3, x: 0, s: "ab世",
			advanced: 4, expected: "ab ",
		},
		"combining mark": {
			width: 3, x: 0, s: "éx",
			advanced: 2, expected: "éx ",
		},
		"overwrite half of wide": {
			width: 4,
			setup: func(b *Buffer) { b.SetString(0, 0, "世", Style{}) },
			x:     1, s: "x",
			advanced: 1, expected: " x  ",
		},
		"overwrite start of wide": {
			width: 4,
			setup: func(b *Buffer) { b.SetString(1, 0, "世", Style{}) },
			x:     1, s: "x",
			advanced: 1, expected: " x  ",
		},
		"row out of range": {
			width: 3, x: 0, y: 1, s: "abc",
			advanced: 0, expected: "   ",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			b := NewBuffer(tt.width, 1)
			if tt.setup != nil {
				tt.setup(b)
			}
			if got := b.SetString(tt.x, tt.y, tt.s, Style{}); got != tt.advanced {
				t.Errorf("SetString() = %d, want %d", got, tt.advanced)
			}
			if got := b.String(); got != tt.expected {
				t.Errorf("String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestGraphemeWidth(t *testing.T) {
	type tc struct {
		s        string
		expected int
	}

	tests := map[string]tc{
		"ascii":          {s: "a", expected: 1},
		"wide":           {s: "世", expected: 2},
		"combining mark": {s: "e\u0301", expected: 1},
		"zero width":     {s: "\u200b", expected: 1},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := GraphemeWidth(tt.s); got != tt.expected {
				t.Errorf("GraphemeWidth(%q) = %d, want %d", tt.s, got, tt.expected)
			}
		})
	}
}

func TestBuffer_FillKeepsBackground(t *testing.T) {
	b := NewBuffer(4, 2)
	b.Fill(0, 0, 3, 1, Style{Bg: kaolin.Red})
	b.SetString(0, 0, "ab", Style{Fg: kaolin.Blue})

	cell := b.Cell(1, 0)
	if cell.Text != "b" || !cell.Style.Fg.Equal(kaolin.Blue) || !cell.Style.Bg.Equal(kaolin.Red) {
		t.Errorf("Cell(1, 0) = %+v, want b in blue on red", cell)
	}
	if bg := b.Cell(3, 0).Style.Bg; !bg.IsDefault() {
		t.Errorf("Cell(3, 0) background = %v, want default", bg)
	}
}

func TestBuffer_FillClips(t *testing.T) {
	b := NewBuffer(3, 3)
	b.Fill(-2, -2, 10, 10, Style{Bg: kaolin.Green})
	for y := range 3 {
		for x := range 3 {
			if bg := b.Cell(x, y).Style.Bg; !bg.Equal(kaolin.Green) {
				t.Fatalf("Cell(%d, %d) background = %v, want green", x, y, bg)
			}
		}
	}
	if c := b.Cell(5, 5); c != (Cell{}) {
		t.Errorf("Cell(5, 5) = %+v, want zero cell", c)
	}
}

func TestBuffer_DrawBox(t *testing.T) {
	type tc struct {
		border   BorderStyle
		w, h     int
		expected string
	}

	tests := map[string]tc{
		"single":    {border: BorderSingle, w: 4, h: 3, expected: "┌──┐\n│  │\n└──┘"},
		"rounded":   {border: BorderRounded, w: 3, h: 2, expected: "╭─╮\n╰─╯"},
		"thick":     {border: BorderThick, w: 2, h: 2, expected: "┏┓\n┗┛"},
		"double":    {border: BorderDouble, w: 3, h: 3, expected: "╔═╗\n║ ║\n╚═╝"},
		"too small": {border: BorderSingle, w: 1, h: 3, expected: "\n\n"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			b := NewBuffer(tt.w, tt.h)
			b.DrawBox(0, 0, tt.w, tt.h, tt.border, Style{})
			if got := b.StringTrimmed(); got != tt.expected {
				t.Errorf("StringTrimmed() =\n%s\nwant\n%s", got, tt.expected)
			}
		})
	}
}

func TestBuffer_WriteANSI(t *testing.T) {
	type tc struct {
		level    ColorLevel
		style    Style
		expected string
	}

	tests := map[string]tc{
		"true color": {
			level:    ColorTrue,
			style:    Style{Fg: kaolin.Red},
			expected: "\x1b[0;38;2;255;0;0ma\x1b[0mb\n",
		},
		"256 approximation": {
			level:    Color256,
			style:    Style{Fg: kaolin.Red},
			expected: "\x1b[0;38;5;196ma\x1b[0mb\n",
		},
		"basic ansi": {
			level:    Color16,
			style:    Style{Fg: kaolin.ANSIColor(1)},
			expected: "\x1b[0;31ma\x1b[0mb\n",
		},
		"bright background": {
			level:    Color16,
			style:    Style{Bg: kaolin.ANSIColor(9)},
			expected: "\x1b[0;101ma\x1b[0mb\n",
		},
		"attributes": {
			level:    ColorNone,
			style:    Style{Fg: kaolin.Red, Attrs: AttrBold | AttrUnderline},
			expected: "\x1b[0;1;4ma\x1b[0mb\n",
		},
		"transparent": {
			level:    ColorTrue,
			style:    Style{Bg: kaolin.Transparent},
			expected: "\x1b[0ma\x1b[0mb\n",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			b := NewBuffer(2, 1)
			b.SetString(0, 0, "a", tt.style)
			b.SetString(1, 0, "b", Style{})

			var out bytes.Buffer
			if err := b.WriteANSI(&out, tt.level); err != nil {
				t.Fatalf("WriteANSI() error = %v", err)
			}
			if got := out.String(); got != tt.expected {
				t.Errorf("WriteANSI() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestBuffer_WriteANSIResetsRow(t *testing.T) {
	b := NewBuffer(1, 2)
	b.SetString(0, 0, "x", Style{Attrs: AttrBold})

	var out bytes.Buffer
	if err := b.WriteANSI(&out, ColorTrue); err != nil {
		t.Fatalf("WriteANSI() error = %v", err)
	}
	if got, want := out.String(), "\x1b[0;1mx\x1b[0m\n \n"; got != want {
		t.Errorf("WriteANSI() = %q, want %q", got, want)
	}
}
