//go:build raylib

package cli

import (
	"runtime"

	"github.com/spf13/cobra"

	kaolin "github.com/grindlemire/go-kaolin"
	"github.com/grindlemire/go-kaolin/pkg/render/window"
)

func init() {
	// raylib must run on the main thread.
	runtime.LockOSThread()
	extraCommands = append(extraCommands, (*CLI).windowCommand)
}

func (c *CLI) windowCommand() *cobra.Command {
	var fps int
	cmd := &cobra.Command{
		Use:   "window scene.toml",
		Short: "Show a scene in a resizable window",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fallback := viewport{width: c.Config.Viewport.Width, height: c.Config.Viewport.Height}
			doc, err := loadScene(args[0], viewport{}, fallback)
			if err != nil {
				return err
			}

			cfg := window.Config{
				Title:      args[0],
				Width:      int(doc.Width),
				Height:     int(doc.Height),
				FPS:        fps,
				Background: doc.BackgroundColor(),
			}
			c.Logger.Info("Opening window", "scene", args[0])
			return window.Run(cmd.Context(), cfg, func(w, h float64, measure kaolin.MeasureFunc) (*kaolin.Commands, error) {
				frame := *doc
				frame.Width, frame.Height = w, h
				return frame.Draw(measure, kaolin.WithMeasureCache())
			})
		},
	}
	cmd.Flags().IntVar(&fps, "fps", 60, "target frames per second")
	return cmd
}
