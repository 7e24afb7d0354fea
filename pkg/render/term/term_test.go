package term

import (
	"testing"

	kaolin "github.com/grindlemire/go-kaolin"
)

func TestRenderer_Render(t *testing.T) {
	type tc struct {
		cols, rows int
		opts       []Option
		draw       func(s *kaolin.Scope)
		expected   string
	}

	tests := map[string]tc{
		"bordered text": {
			cols: 10, rows: 3,
			draw: func(s *kaolin.Scope) {
				s.With(kaolin.FlexStyle{
					Width:   kaolin.Fixed(10),
					Height:  kaolin.Fixed(3),
					Padding: kaolin.EdgeAll(1),
					Border:  kaolin.Border{Width: 1},
				}, func(s *kaolin.Scope) {
					s.Text("hi", kaolin.TextStyle{})
				})
			},
			expected: "┌────────┐\n│hi      │\n└────────┘",
		},
		"rounded corners": {
			cols: 4, rows: 2,
			draw: func(s *kaolin.Scope) {
				s.With(kaolin.FlexStyle{
					Width:        kaolin.Fixed(4),
					Height:       kaolin.Fixed(2),
					CornerRadius: 1,
					Border:       kaolin.Border{Width: 1},
				}, nil)
			},
			expected: "╭──╮\n╰──╯",
		},
		"centered": {
			cols: 9, rows: 3,
			draw: func(s *kaolin.Scope) {
				s.With(kaolin.FlexStyle{
					Width:  kaolin.Grow(),
					Height: kaolin.Grow(),
					Layout: kaolin.Layout{Align: kaolin.AlignCenter, Justify: kaolin.JustifyCenter},
				}, func(s *kaolin.Scope) {
					s.Text("abc", kaolin.TextStyle{})
				})
			},
			expected: "\n   abc\n",
		},
		"wrapped": {
			cols: 5, rows: 3,
			draw: func(s *kaolin.Scope) {
				s.With(kaolin.FlexStyle{Width: kaolin.Fixed(5), Layout: kaolin.Layout{Direction: kaolin.TopToBottom}}, func(s *kaolin.Scope) {
					s.Text("one two six", kaolin.TextStyle{})
				})
			},
			expected: "one\ntwo\nsix",
		},
		"custom outline": {
			cols: 3, rows: 3,
			draw: func(s *kaolin.Scope) {
				s.Custom(kaolin.FlexStyle{Width: kaolin.Fixed(3), Height: kaolin.Fixed(3)}, nil)
			},
			expected: "┌─┐\n│ │\n└─┘",
		},
		"cell size": {
			cols: 4, rows: 2,
			opts: []Option{WithCellSize(8, 16)},
			draw: func(s *kaolin.Scope) {
				s.With(kaolin.FlexStyle{Width: kaolin.Fixed(32), Height: kaolin.Fixed(32), Border: kaolin.Border{Width: 1}}, nil)
			},
			expected: "┌──┐\n└──┘",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			r := New(tt.cols, tt.rows, tt.opts...)
			w, h := r.Viewport()
			r.Render(kaolin.New(w, h, r.Measure).Draw(tt.draw))
			if got := r.Buffer().StringTrimmed(); got != tt.expected {
				t.Errorf("buffer =\n%s\nwant\n%s", got, tt.expected)
			}
		})
	}
}

func TestRenderer_Styles(t *testing.T) {
	r := New(6, 1, WithForeground(kaolin.White), WithFontAttrs(2, AttrItalic))
	r.Render(kaolin.NewCommands(
		kaolin.DrawRectangle{Width: 6, Height: 1, Color: kaolin.Blue},
		kaolin.DrawText{Text: "a", X: 0},
		kaolin.DrawText{Text: "b", X: 1, FontID: 1, Color: kaolin.Red},
		kaolin.DrawText{Text: "c", X: 2, FontID: 2},
	))

	type tc struct {
		x        int
		expected Style
	}

	tests := map[string]tc{
		"foreground fallback": {x: 0, expected: Style{Fg: kaolin.White, Bg: kaolin.Blue}},
		"bold font":           {x: 1, expected: Style{Fg: kaolin.Red, Bg: kaolin.Blue, Attrs: AttrBold}},
		"custom attrs":        {x: 2, expected: Style{Fg: kaolin.White, Bg: kaolin.Blue, Attrs: AttrItalic}},
		"background only":     {x: 4, expected: Style{Bg: kaolin.Blue}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := r.Buffer().Cell(tt.x, 0).Style; !got.Equal(tt.expected) {
				t.Errorf("Cell(%d, 0).Style = %+v, want %+v", tt.x, got, tt.expected)
			}
		})
	}
}

func TestRenderer_Custom(t *testing.T) {
	var got [4]int
	r := New(10, 10, WithCellSize(2, 2), WithCustom(func(buf *Buffer, x, y, w, h int, cmd kaolin.DrawCustom) {
		got = [4]int{x, y, w, h}
		buf.SetString(x, y, cmd.Data.(string), Style{})
	}))
	r.Render(kaolin.NewCommands(kaolin.DrawCustom{X: 2, Y: 4, Width: 6, Height: 4, Data: "*"}))

	if got != [4]int{1, 2, 3, 2} {
		t.Errorf("custom cells = %v, want [1 2 3 2]", got)
	}
	if c := r.Buffer().Cell(1, 2); c.Text != "*" {
		t.Errorf("Cell(1, 2) = %q, want *", c.Text)
	}
}

func TestRenderer_SkipsHiddenAreas(t *testing.T) {
	type tc struct {
		cmd kaolin.Command
	}

	tests := map[string]tc{
		"rect past right edge": {cmd: kaolin.DrawRectangle{X: 4, Y: 0, Width: 3, Height: 2, Color: kaolin.Red}},
		"rect above grid":      {cmd: kaolin.DrawRectangle{X: 0, Y: -3, Width: 4, Height: 3, Border: kaolin.Border{Width: 1}}},
		"zero width rect":      {cmd: kaolin.DrawRectangle{X: 1, Y: 0, Width: 0, Height: 2, Border: kaolin.Border{Width: 1}}},
		"custom off grid":      {cmd: kaolin.DrawCustom{X: -5, Y: 0, Width: 5, Height: 2}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			called := false
			r := New(4, 2, WithCustom(func(*Buffer, int, int, int, int, kaolin.DrawCustom) { called = true }))
			r.Render(kaolin.NewCommands(tt.cmd))

			if called {
				t.Error("custom func called for a hidden element")
			}
			for y := range 2 {
				for x := range 4 {
					if c := r.Buffer().Cell(x, y); c != blank {
						t.Errorf("Cell(%d, %d) = %+v, want blank", x, y, c)
					}
				}
			}
		})
	}
}

func TestRenderer_ClipsPartialRect(t *testing.T) {
	r := New(4, 2)
	r.Render(kaolin.NewCommands(kaolin.DrawRectangle{X: 2, Y: 0, Width: 5, Height: 2, Color: kaolin.Red}))

	for x, want := range []bool{false, false, true, true} {
		if got := r.Buffer().Cell(x, 0).Style.Bg.Equal(kaolin.Red); got != want {
			t.Errorf("Cell(%d, 0) red = %v, want %v", x, got, want)
		}
	}
}

func TestRenderer_Measure(t *testing.T) {
	r := New(1, 1, WithCellSize(10, 20))

	type tc struct {
		text          string
		width, height float64
	}

	tests := map[string]tc{
		"ascii": {text: "abc", width: 30, height: 20},
		"wide":  {text: "世界", width: 40, height: 20},
		"empty": {text: "", width: 0, height: 20},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			w, h := r.Measure(tt.text, kaolin.TextStyle{})
			if w != tt.width || h != tt.height {
				t.Errorf("Measure(%q) = %g, %g, want %g, %g", tt.text, w, h, tt.width, tt.height)
			}
		})
	}
}

func TestSize_Fallback(t *testing.T) {
	w, h := Size(-1)
	if w != DefaultWidth || h != DefaultHeight {
		t.Errorf("Size(-1) = %d, %d, want %d, %d", w, h, DefaultWidth, DefaultHeight)
	}
}
