package raster

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/gogpu/gg"

	kaolin "github.com/grindlemire/go-kaolin"
)

func newRenderer(t *testing.T, w, h float64, opts ...Option) *Renderer {
	t.Helper()
	r, err := New(w, h, opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() { _ = r.Close() })
	return r
}

// near reports whether got is within a small tolerance of want on every channel.
func near(got color.Color, want kaolin.Color) bool {
	c := color.RGBAModel.Convert(got).(color.RGBA)
	r, g, b, a := want.ToRGBA()
	diff := func(x, y uint8) bool {
		d := int(x) - int(y)
		return d > -8 && d < 8
	}
	return diff(c.R, r) && diff(c.G, g) && diff(c.B, b) && diff(c.A, a)
}

func TestNew_Size(t *testing.T) {
	type tc struct {
		width, height float64
		bounds        image.Rectangle
		wantErr       bool
	}

	tests := map[string]tc{
		"whole":      {width: 40, height: 30, bounds: image.Rect(0, 0, 40, 30)},
		"fractional": {width: 10.5, height: 3.2, bounds: image.Rect(0, 0, 11, 4)},
		"zero width": {width: 0, height: 30, wantErr: true},
		"negative":   {width: 10, height: -1, wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			r, err := New(tt.width, tt.height)
			if tt.wantErr {
				if !errors.Is(err, ErrSize) {
					t.Fatalf("New() error = %v, want ErrSize", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			defer r.Close()
			if got := r.Image().Bounds(); got != tt.bounds {
				t.Errorf("bounds = %v, want %v", got, tt.bounds)
			}
		})
	}
}

func TestRenderer_Rectangles(t *testing.T) {
	type probe struct {
		x, y int
		want kaolin.Color
	}
	type tc struct {
		cmd    kaolin.DrawRectangle
		probes []probe
	}

	tests := map[string]tc{
		"filled": {
			cmd: kaolin.DrawRectangle{X: 10, Y: 10, Width: 20, Height: 20, Color: kaolin.Red},
			probes: []probe{
				{x: 20, y: 20, want: kaolin.Red},
				{x: 5, y: 5, want: kaolin.White},
				{x: 35, y: 35, want: kaolin.White},
			},
		},
		"default color draws nothing": {
			cmd: kaolin.DrawRectangle{X: 0, Y: 0, Width: 40, Height: 40},
			probes: []probe{
				{x: 20, y: 20, want: kaolin.White},
			},
		},
		"border only": {
			cmd: kaolin.DrawRectangle{
				X: 10, Y: 10, Width: 20, Height: 20,
				Border: kaolin.Border{Width: 2, Color: kaolin.Blue},
			},
			probes: []probe{
				{x: 10, y: 20, want: kaolin.Blue},
				{x: 29, y: 20, want: kaolin.Blue},
				{x: 20, y: 20, want: kaolin.White},
				{x: 8, y: 20, want: kaolin.White},
			},
		},
		"border wider than box": {
			cmd: kaolin.DrawRectangle{
				X: 10, Y: 10, Width: 6, Height: 20,
				Border: kaolin.Border{Width: 4, Color: kaolin.Blue},
			},
			probes: []probe{
				{x: 13, y: 20, want: kaolin.Blue},
				{x: 10, y: 11, want: kaolin.Blue},
				{x: 18, y: 20, want: kaolin.White},
				{x: 13, y: 32, want: kaolin.White},
			},
		},
		"rounded": {
			cmd: kaolin.DrawRectangle{X: 0, Y: 0, Width: 40, Height: 40, Color: kaolin.Green, CornerRadius: 15},
			probes: []probe{
				{x: 20, y: 20, want: kaolin.Green},
				{x: 0, y: 0, want: kaolin.White},
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			r := newRenderer(t, 40, 40)
			if err := r.Render(kaolin.NewCommands(tt.cmd)); err != nil {
				t.Fatalf("Render() error = %v", err)
			}
			img := r.Image()
			for _, p := range tt.probes {
				if got := img.At(p.x, p.y); !near(got, p.want) {
					t.Errorf("pixel (%d, %d) = %v, want %v", p.x, p.y, got, p.want)
				}
			}
		})
	}
}

func TestRenderer_Text(t *testing.T) {
	r := newRenderer(t, 200, 40)

	style := kaolin.TextStyle{FontSize: 24}
	w, h := r.Measure("Kaolin", style)
	if w <= 0 || h <= 0 {
		t.Fatalf("Measure() = %g, %g, want positive", w, h)
	}

	cmds := kaolin.New(200, 40, r.Measure).Draw(func(s *kaolin.Scope) {
		s.Text("Kaolin", style)
	})
	if err := r.Render(cmds); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	img := r.Image()
	inked := 0
	for y := 0; y < int(h); y++ {
		for x := 0; x < int(w); x++ {
			if !near(img.At(x, y), kaolin.White) {
				inked++
			}
		}
	}
	if inked == 0 {
		t.Error("no pixels were drawn inside the measured text bounds")
	}
	for x := int(w) + 2; x < 200; x++ {
		if !near(img.At(x, int(h)/2), kaolin.White) {
			t.Fatalf("pixel (%d, %d) drawn past the measured width %g", x, int(h)/2, w)
		}
	}
}

func TestFonts(t *testing.T) {
	fonts, err := NewFonts()
	if err != nil {
		t.Fatalf("NewFonts() error = %v", err)
	}
	defer fonts.Close()

	short, _ := fonts.Measure("ab", kaolin.TextStyle{})
	long, _ := fonts.Measure("abcd", kaolin.TextStyle{})
	if short <= 0 || long <= short {
		t.Errorf("Measure widths = %g, %g, want 0 < short < long", short, long)
	}

	_, small := fonts.Measure("x", kaolin.TextStyle{FontSize: 10})
	_, big := fonts.Measure("x", kaolin.TextStyle{FontSize: 40})
	if big <= small {
		t.Errorf("line heights = %g, %g, want larger size taller", small, big)
	}

	regular, _ := fonts.Measure("monospace", kaolin.TextStyle{FontID: FontRegular})
	unknown, _ := fonts.Measure("monospace", kaolin.TextStyle{FontID: 99})
	if regular != unknown {
		t.Errorf("unknown font width = %g, want regular width %g", unknown, regular)
	}

	if err := fonts.Register(7, []byte("not a font")); err == nil {
		t.Error("Register() expected an error for invalid data")
	}
}

func TestRenderer_Custom(t *testing.T) {
	var got []kaolin.DrawCustom
	r := newRenderer(t, 50, 50, WithCustom(func(ctx *gg.Context, cmd kaolin.DrawCustom) error {
		got = append(got, cmd)
		return nil
	}))

	cmd := kaolin.DrawCustom{ID: "icon", X: 5, Y: 5, Width: 10, Height: 10, Data: "star"}
	if err := r.Render(kaolin.NewCommands(cmd)); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if len(got) != 1 || got[0] != cmd {
		t.Errorf("custom calls = %v, want [%v]", got, cmd)
	}

	failing := newRenderer(t, 50, 50, WithCustom(func(*gg.Context, kaolin.DrawCustom) error {
		return errors.New("boom")
	}))
	if err := failing.Render(kaolin.NewCommands(cmd)); err == nil {
		t.Error("Render() expected the custom error")
	}
}

func TestRenderer_Placeholder(t *testing.T) {
	r := newRenderer(t, 50, 50, WithForeground(kaolin.Red))
	cmd := kaolin.DrawCustom{X: 10, Y: 10, Width: 30, Height: 30}
	if err := r.Render(kaolin.NewCommands(cmd)); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	img := r.Image()
	if !near(img.At(10, 25), kaolin.Red) {
		t.Errorf("outline pixel = %v, want red", img.At(10, 25))
	}
	if !near(img.At(25, 25), kaolin.White) {
		t.Errorf("center pixel = %v, want white", img.At(25, 25))
	}
}

func TestRenderer_Output(t *testing.T) {
	r := newRenderer(t, 16, 8, WithBackground(kaolin.Blue))
	cmds := kaolin.NewCommands(kaolin.DrawRectangle{Width: 4, Height: 4, Color: kaolin.Red})
	if err := r.Render(cmds); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !cmds.IsEmpty() {
		t.Error("Render() left commands unconsumed")
	}

	var buf bytes.Buffer
	if err := r.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG() error = %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if img.Bounds().Dx() != 16 || img.Bounds().Dy() != 8 {
		t.Errorf("decoded bounds = %v, want 16x8", img.Bounds())
	}
	if !near(img.At(12, 4), kaolin.Blue) {
		t.Errorf("background pixel = %v, want blue", img.At(12, 4))
	}

	path := filepath.Join(t.TempDir(), "out.png")
	if err := r.SavePNG(path); err != nil {
		t.Fatalf("SavePNG() error = %v", err)
	}
}
