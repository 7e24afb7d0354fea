// Package cli implements the kaolin command-line interface.
//
// Commands:
//   - render: lay scene files out and write PNG images or terminal output
//   - check: validate scene files without rendering them
//   - inspect: print the draw commands of a scene as a table
//   - window: show a scene in a resizable window (raylib builds only)
//   - version: print build information
//
// All commands support --verbose (-v) for debug logging. The CLI logger is
// also installed as the library logger, so engine diagnostics show up at
// debug level, unless KAOLIN_DEBUG sends them to a file.
package cli

import (
	"io"
	"log/slog"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	kaolin "github.com/grindlemire/go-kaolin"
	"github.com/grindlemire/go-kaolin/internal/config"
	"github.com/grindlemire/go-kaolin/internal/debug"
	"github.com/grindlemire/go-kaolin/pkg/buildinfo"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// extraCommands are registered by optional, build-tagged commands.
var extraCommands []func(*CLI) *cobra.Command

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config config.Config
}

// New creates a CLI logging to w.
func New(w io.Writer, level log.Level, cfg config.Config) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: cfg,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "kaolin",
		Short:        "Kaolin lays out and renders flexbox scenes",
		Long:         `Kaolin computes flexbox layouts for scene files written in TOML and renders them to PNG images, the terminal or a window.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			// A KAOLIN_DEBUG file takes precedence over the console.
			if !debug.Enabled() {
				kaolin.SetLogger(slog.New(c.Logger))
			}
			return nil
		},
	}
	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.checkCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.versionCommand())
	for _, extra := range extraCommands {
		root.AddCommand(extra(c))
	}

	return root
}

func (c *CLI) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Println(buildinfo.String())
		},
	}
}
