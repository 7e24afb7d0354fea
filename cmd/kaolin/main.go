// Command kaolin lays out TOML scene files and renders them.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/grindlemire/go-kaolin/internal/cli"
	"github.com/grindlemire/go-kaolin/internal/config"
	"github.com/grindlemire/go-kaolin/internal/debug"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	if err := debug.InitFromEnv(); err != nil {
		return err
	}
	defer debug.Close()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	var verbose bool
	level := cli.ParseLevel(cfg.Log.Level)
	c := cli.New(os.Stderr, level, cfg)
	root := c.RootCommand()
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	originalPreRun := root.PersistentPreRunE
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if verbose {
			c.SetLogLevel(cli.LogDebug)
		}
		if originalPreRun != nil {
			return originalPreRun(cmd, args)
		}
		return nil
	}

	return root.ExecuteContext(ctx)
}
