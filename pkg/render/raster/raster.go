// Package raster draws kaolin commands into an image with gg.
package raster

import (
	"errors"
	"fmt"
	"image"
	"io"
	"math"

	"github.com/gogpu/gg"

	kaolin "github.com/grindlemire/go-kaolin"
	"github.com/grindlemire/go-kaolin/internal/debug"
)

// ErrSize is returned for a canvas without area.
var ErrSize = errors.New("canvas size must be positive")

// CustomFunc draws a DrawCustom command.
type CustomFunc func(ctx *gg.Context, cmd kaolin.DrawCustom) error

// Option configures a Renderer.
type Option func(*Renderer)

// WithBackground sets the color the canvas is cleared to.
func WithBackground(c kaolin.Color) Option {
	return func(r *Renderer) { r.background = c }
}

// WithForeground sets the color used for text with the default color.
func WithForeground(c kaolin.Color) Option {
	return func(r *Renderer) { r.foreground = c }
}

// WithFonts uses fonts instead of loading the Go fonts. The caller keeps
// ownership and closes them.
func WithFonts(f *Fonts) Option {
	return func(r *Renderer) { r.fonts = f }
}

// WithCustom sets the function that draws custom elements. Without one they
// are outlined in the foreground color.
func WithCustom(fn CustomFunc) Option {
	return func(r *Renderer) { r.custom = fn }
}

// Renderer rasterizes commands onto a fixed-size canvas.
type Renderer struct {
	ctx        *gg.Context
	fonts      *Fonts
	ownFonts   bool
	background kaolin.Color
	foreground kaolin.Color
	custom     CustomFunc
}

// New creates a width by height canvas. Fractional sizes are rounded up.
func New(width, height float64, opts ...Option) (*Renderer, error) {
	w, h := int(math.Ceil(width)), int(math.Ceil(height))
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %gx%g", ErrSize, width, height)
	}

	r := &Renderer{
		background: kaolin.White,
		foreground: kaolin.Black,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.fonts == nil {
		fonts, err := NewFonts()
		if err != nil {
			return nil, err
		}
		r.fonts = fonts
		r.ownFonts = true
	}

	r.ctx = gg.NewContext(w, h)
	r.ctx.ClearWithColor(toRGBA(r.background.Or(kaolin.Transparent)))
	return r, nil
}

// Measure sizes text with the renderer's fonts, so layouts drawn with it
// match the pixels.
func (r *Renderer) Measure(s string, style kaolin.TextStyle) (float64, float64) {
	return r.fonts.Measure(s, style)
}

// Fonts returns the renderer's fonts.
func (r *Renderer) Fonts() *Fonts {
	return r.fonts
}

// Render consumes cmds and draws them in order.
func (r *Renderer) Render(cmds *kaolin.Commands) error {
	var n int
	for cmd := range cmds.All() {
		if err := r.draw(cmd); err != nil {
			return fmt.Errorf("command %d (%v): %w", n, cmd, err)
		}
		n++
	}
	debug.Logger().Debug("raster: rendered", "commands", n)
	return nil
}

func (r *Renderer) draw(cmd kaolin.Command) error {
	switch cmd := cmd.(type) {
	case kaolin.DrawRectangle:
		return r.rectangle(cmd)
	case kaolin.DrawText:
		return r.text(cmd)
	case kaolin.DrawCustom:
		if r.custom != nil {
			return r.custom(r.ctx, cmd)
		}
		return r.placeholder(cmd)
	}
	return nil
}

func (r *Renderer) rectangle(cmd kaolin.DrawRectangle) error {
	if !cmd.Color.IsDefault() {
		r.path(cmd.X, cmd.Y, cmd.Width, cmd.Height, cmd.CornerRadius)
		r.setColor(cmd.Color)
		if err := r.ctx.Fill(); err != nil {
			return err
		}
	}

	bw := cmd.Border.Width
	if bw <= 0 {
		return nil
	}
	border := cmd.Border.Color.Or(r.foreground)
	if bw*2 >= cmd.Width || bw*2 >= cmd.Height {
		// The stroke covers the whole box.
		r.path(cmd.X, cmd.Y, cmd.Width, cmd.Height, cmd.CornerRadius)
		r.setColor(border)
		return r.ctx.Fill()
	}
	// Stroke inside the bounds so neighbours do not overlap.
	half := bw / 2
	r.path(cmd.X+half, cmd.Y+half, cmd.Width-bw, cmd.Height-bw, max(cmd.CornerRadius-half, 0))
	r.setColor(border)
	r.ctx.SetLineWidth(bw)
	return r.ctx.Stroke()
}

func (r *Renderer) path(x, y, w, h, radius float64) {
	if radius > 0 {
		r.ctx.DrawRoundedRectangle(x, y, w, h, min(radius, w/2, h/2))
		return
	}
	r.ctx.DrawRectangle(x, y, w, h)
}

func (r *Renderer) text(cmd kaolin.DrawText) error {
	face := r.fonts.Face(kaolin.TextStyle{FontID: cmd.FontID, FontSize: cmd.FontSize})
	if face == nil {
		return errors.New("no font registered")
	}
	r.ctx.SetFont(face)
	r.setColor(cmd.Color.Or(r.foreground))
	r.ctx.DrawString(cmd.Text, cmd.X, cmd.Y+face.Metrics().Ascent)
	return nil
}

func (r *Renderer) placeholder(cmd kaolin.DrawCustom) error {
	r.ctx.DrawRectangle(cmd.X+0.5, cmd.Y+0.5, max(cmd.Width-1, 0), max(cmd.Height-1, 0))
	r.setColor(r.foreground)
	r.ctx.SetLineWidth(1)
	return r.ctx.Stroke()
}

func (r *Renderer) setColor(c kaolin.Color) {
	rgba := toRGBA(c)
	r.ctx.SetRGBA(rgba.R, rgba.G, rgba.B, rgba.A)
}

func toRGBA(c kaolin.Color) gg.RGBA {
	r, g, b, a := c.ToRGBA()
	return gg.RGBA{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}
}

// Image returns the canvas.
func (r *Renderer) Image() image.Image {
	return r.ctx.Image()
}

// EncodePNG writes the canvas to w as a PNG.
func (r *Renderer) EncodePNG(w io.Writer) error {
	return r.ctx.EncodePNG(w)
}

// SavePNG writes the canvas to path as a PNG.
func (r *Renderer) SavePNG(path string) error {
	return r.ctx.SavePNG(path)
}

// Close releases the canvas and any fonts the renderer loaded itself.
func (r *Renderer) Close() error {
	err := r.ctx.Close()
	if r.ownFonts {
		err = errors.Join(err, r.fonts.Close())
	}
	return err
}
