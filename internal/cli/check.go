package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func (c *CLI) checkCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check [scene.toml | dir | dir/...]...",
		Short: "Validate scene files without rendering",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCheck(cmd.OutOrStdout(), args)
		},
	}
}

// runCheck loads and validates every scene, reporting each failure and
// returning an error if any scene failed.
func (c *CLI) runCheck(w io.Writer, args []string) error {
	files, err := collectScenes(args)
	if err != nil {
		return err
	}
	c.Logger.Debug("checking", "scenes", len(files))

	fallback := viewport{width: c.Config.Viewport.Width, height: c.Config.Viewport.Height}
	var errorCount int
	for _, path := range files {
		doc, err := loadScene(path, viewport{}, fallback)
		if err != nil {
			fmt.Fprintf(w, "FAIL %v\n", err)
			errorCount++
			continue
		}
		fmt.Fprintf(w, "ok   %s (%d elements)\n", path, doc.Count())
	}

	if errorCount > 0 {
		return fmt.Errorf("%d of %d file(s) had errors", errorCount, len(files))
	}
	return nil
}
