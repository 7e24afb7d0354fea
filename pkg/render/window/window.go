//go:build raylib

package window

import (
	"context"
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	kaolin "github.com/grindlemire/go-kaolin"
	"github.com/grindlemire/go-kaolin/internal/debug"
)

// FrameFunc lays out one frame at the given window size.
type FrameFunc func(width, height float64, measure kaolin.MeasureFunc) (*kaolin.Commands, error)

// CustomFunc draws a DrawCustom command. It runs between BeginDrawing and
// EndDrawing.
type CustomFunc func(cmd kaolin.DrawCustom)

// Config describes the window.
type Config struct {
	Title         string
	Width, Height int
	FPS           int
	Background    kaolin.Color
	Foreground    kaolin.Color
	Custom        CustomFunc
}

func (c Config) withDefaults() Config {
	if c.Title == "" {
		c.Title = "kaolin"
	}
	if c.Width <= 0 {
		c.Width = 800
	}
	if c.Height <= 0 {
		c.Height = 600
	}
	if c.FPS <= 0 {
		c.FPS = 60
	}
	c.Background = c.Background.Or(kaolin.White)
	c.Foreground = c.Foreground.Or(kaolin.Black)
	return c
}

// Measure implements kaolin.MeasureFunc with raylib's default font. It is
// only valid while a window is open.
func Measure(text string, style kaolin.TextStyle) (width, height float64) {
	size := fontSize(style.FontSize)
	return float64(rl.MeasureText(text, size)), float64(size)
}

func fontSize(size float64) int32 {
	if size <= 0 {
		size = kaolin.DefaultFontSize
	}
	return int32(math.Round(size))
}

// Run opens a window and draws frame until the window is closed or ctx is
// done. raylib must be driven from the goroutine that called Run, and that
// goroutine should be locked to its OS thread.
func Run(ctx context.Context, cfg Config, frame FrameFunc) error {
	cfg = cfg.withDefaults()

	rl.SetTraceLogLevel(rl.LogWarning)
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(cfg.Width), int32(cfg.Height), cfg.Title)
	defer rl.CloseWindow()
	if !rl.IsWindowReady() {
		return fmt.Errorf("window: could not open a %dx%d window", cfg.Width, cfg.Height)
	}
	rl.SetTargetFPS(int32(cfg.FPS))

	log := debug.Logger()
	log.Info("window: opened", "width", cfg.Width, "height", cfg.Height)

	for !rl.WindowShouldClose() {
		if err := ctx.Err(); err != nil {
			return nil
		}

		w, h := float64(rl.GetScreenWidth()), float64(rl.GetScreenHeight())
		cmds, err := frame(w, h, Measure)
		if err != nil {
			return err
		}

		rl.BeginDrawing()
		rl.ClearBackground(toRL(cfg.Background))
		for cmd := range cmds.All() {
			draw(cfg, cmd)
		}
		rl.EndDrawing()

		if rl.IsWindowResized() {
			log.Debug("window: resized", "width", w, "height", h)
		}
	}
	return nil
}

func draw(cfg Config, cmd kaolin.Command) {
	switch cmd := cmd.(type) {
	case kaolin.DrawRectangle:
		rec := rl.NewRectangle(float32(cmd.X), float32(cmd.Y), float32(cmd.Width), float32(cmd.Height))
		if !cmd.Color.IsDefault() {
			if cmd.CornerRadius > 0 {
				rl.DrawRectangleRounded(rec, roundness(cmd), 8, toRL(cmd.Color))
			} else {
				rl.DrawRectangleRec(rec, toRL(cmd.Color))
			}
		}
		if cmd.Border.Width > 0 {
			rl.DrawRectangleLinesEx(rec, float32(cmd.Border.Width), toRL(cmd.Border.Color.Or(cfg.Foreground)))
		}
	case kaolin.DrawText:
		rl.DrawText(cmd.Text, int32(math.Round(cmd.X)), int32(math.Round(cmd.Y)),
			fontSize(cmd.FontSize), toRL(cmd.Color.Or(cfg.Foreground)))
	case kaolin.DrawCustom:
		if cfg.Custom != nil {
			cfg.Custom(cmd)
			return
		}
		rec := rl.NewRectangle(float32(cmd.X), float32(cmd.Y), float32(cmd.Width), float32(cmd.Height))
		rl.DrawRectangleLinesEx(rec, 1, toRL(cfg.Foreground))
	}
}

// roundness converts a corner radius to raylib's fraction of the shorter side.
func roundness(cmd kaolin.DrawRectangle) float32 {
	short := min(cmd.Width, cmd.Height)
	if short <= 0 {
		return 0
	}
	return float32(min(2*cmd.CornerRadius/short, 1))
}

func toRL(c kaolin.Color) rl.Color {
	r, g, b, a := c.ToRGBA()
	return rl.NewColor(r, g, b, a)
}
