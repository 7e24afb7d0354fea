package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	kaolin "github.com/grindlemire/go-kaolin"
	"github.com/grindlemire/go-kaolin/internal/config"
	"github.com/grindlemire/go-kaolin/pkg/render/raster"
	"github.com/grindlemire/go-kaolin/pkg/render/term"
	"github.com/grindlemire/go-kaolin/pkg/scene"
)

// Layout units per terminal cell for the term backend.
const (
	cellWidth  = 8
	cellHeight = 16
)

type renderOptions struct {
	backend     string
	outDir      string
	size        viewport
	concurrency int
	noCache     bool
	plain       bool
}

func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOptions{
		backend:     c.Config.Render.Backend,
		outDir:      c.Config.Render.OutDir,
		concurrency: c.Config.Render.Concurrency,
		noCache:     !c.Config.Render.Cache,
	}

	cmd := &cobra.Command{
		Use:   "render [scene.toml | dir | dir/...]...",
		Short: "Render scene files to PNG images or the terminal",
		Long: `Render lays out each scene file and draws it with the chosen backend.

The png backend writes <name>.png into the output directory. The term backend
prints each scene to stdout in order, scaling ` + fmt.Sprint(cellWidth) + `x` + fmt.Sprint(cellHeight) + ` layout units to one cell.
Scenes are rendered concurrently.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), cmd.OutOrStdout(), args, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.backend, "backend", "b", opts.backend, "render backend: png or term")
	f.StringVarP(&opts.outDir, "out", "o", opts.outDir, "output directory for png files")
	f.Float64VarP(&opts.size.width, "width", "W", 0, "override the scene width")
	f.Float64VarP(&opts.size.height, "height", "H", 0, "override the scene height")
	f.IntVarP(&opts.concurrency, "concurrency", "j", opts.concurrency, "scenes rendered at once")
	f.BoolVar(&opts.noCache, "no-cache", opts.noCache, "measure every text run without memoising")
	f.BoolVar(&opts.plain, "plain", false, "term backend: print text without colors")
	return cmd
}

func (c *CLI) runRender(ctx context.Context, w io.Writer, args []string, opts renderOptions) error {
	switch opts.backend {
	case config.BackendPNG, config.BackendTerm:
	default:
		return fmt.Errorf("unknown backend %q", opts.backend)
	}
	if opts.concurrency < 1 {
		return fmt.Errorf("concurrency must be at least 1, got %d", opts.concurrency)
	}

	files, err := collectScenes(args)
	if err != nil {
		return err
	}
	c.Logger.Debug("rendering", "scenes", len(files), "backend", opts.backend, "concurrency", opts.concurrency)

	prog := newProgress(c.Logger)
	outputs := make([]bytes.Buffer, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.concurrency)
	for i, path := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return c.renderScene(path, opts, &outputs[i])
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i := range outputs {
		if _, err := outputs[i].WriteTo(w); err != nil {
			return err
		}
	}
	prog.done(fmt.Sprintf("Rendered %d scene(s)", len(files)))
	return nil
}

func (c *CLI) renderScene(path string, opts renderOptions, out *bytes.Buffer) error {
	var kopts []kaolin.Option
	if !opts.noCache {
		kopts = append(kopts, kaolin.WithMeasureCache())
	}

	switch opts.backend {
	case config.BackendTerm:
		cols, rows := term.Size(int(os.Stdout.Fd()))
		fallback := viewport{width: float64(cols * cellWidth), height: float64(rows * cellHeight)}
		doc, err := loadScene(path, opts.size, fallback)
		if err != nil {
			return err
		}
		return c.renderTerm(doc, kopts, opts.plain, out)

	default:
		fallback := viewport{width: c.Config.Viewport.Width, height: c.Config.Viewport.Height}
		doc, err := loadScene(path, opts.size, fallback)
		if err != nil {
			return err
		}
		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)) + ".png"
		dest := filepath.Join(opts.outDir, name)
		if err := c.renderPNG(doc, kopts, dest); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		return nil
	}
}

func (c *CLI) renderPNG(doc *scene.Document, kopts []kaolin.Option, dest string) error {
	r, err := raster.New(doc.Width, doc.Height, raster.WithBackground(doc.BackgroundColor()))
	if err != nil {
		return err
	}
	defer r.Close()

	cmds, err := doc.Draw(r.Measure, kopts...)
	if err != nil {
		return err
	}
	n := cmds.Len()
	if err := r.Render(cmds); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return fmt.Errorf("mkdir output dir: %w", err)
	}
	if err := r.SavePNG(dest); err != nil {
		return fmt.Errorf("write png: %w", err)
	}
	c.Logger.Info("Wrote image", "path", dest, "commands", n)
	return nil
}

func (c *CLI) renderTerm(doc *scene.Document, kopts []kaolin.Option, plain bool, out *bytes.Buffer) error {
	cols := int(math.Ceil(doc.Width / cellWidth))
	rows := int(math.Ceil(doc.Height / cellHeight))
	r := term.New(cols, rows, term.WithCellSize(cellWidth, cellHeight))

	bg := doc.BackgroundColor()
	if !bg.IsDefault() {
		r.Buffer().Fill(0, 0, cols, rows, term.Style{Bg: bg})
	}

	cmds, err := doc.Draw(r.Measure, kopts...)
	if err != nil {
		return err
	}
	r.Render(cmds)

	if plain {
		out.WriteString(r.Buffer().StringTrimmed())
		out.WriteByte('\n')
		return nil
	}
	return r.Buffer().WriteANSI(out, term.DetectColorLevel())
}
