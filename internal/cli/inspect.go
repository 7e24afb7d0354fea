package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	kaolin "github.com/grindlemire/go-kaolin"
	"github.com/grindlemire/go-kaolin/pkg/render/raster"
	"github.com/grindlemire/go-kaolin/pkg/render/term"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	numberStyle = cellStyle.Align(lipgloss.Right)
)

func (c *CLI) inspectCommand() *cobra.Command {
	var (
		size  viewport
		cells bool
	)
	cmd := &cobra.Command{
		Use:   "inspect scene.toml",
		Short: "Print the draw commands of a scene as a table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInspect(cmd.OutOrStdout(), args[0], size, cells)
		},
	}
	f := cmd.Flags()
	f.Float64VarP(&size.width, "width", "W", 0, "override the scene width")
	f.Float64VarP(&size.height, "height", "H", 0, "override the scene height")
	f.BoolVar(&cells, "cells", false, "measure text in terminal cells instead of with the Go fonts")
	return cmd
}

func (c *CLI) runInspect(w io.Writer, path string, size viewport, cells bool) error {
	fallback := viewport{width: c.Config.Viewport.Width, height: c.Config.Viewport.Height}
	doc, err := loadScene(path, size, fallback)
	if err != nil {
		return err
	}

	var measure kaolin.MeasureFunc
	if cells {
		measure = term.New(0, 0).Measure
	} else {
		fonts, err := raster.NewFonts()
		if err != nil {
			return err
		}
		defer fonts.Close()
		measure = fonts.Measure
	}

	cmds, err := doc.Draw(measure)
	if err != nil {
		return err
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "KIND", "ID", "X", "Y", "W", "H", "DETAIL").
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0 || (col >= 3 && col <= 6):
				return numberStyle
			default:
				return cellStyle
			}
		})

	var n int
	for cmd := range cmds.All() {
		t.Row(commandRow(n, cmd)...)
		n++
	}

	fmt.Fprintf(w, "%s  %gx%g  %d command(s)\n", path, doc.Width, doc.Height, n)
	fmt.Fprintln(w, t.Render())
	return nil
}

func commandRow(i int, cmd kaolin.Command) []string {
	b := cmd.Bounds()
	num := func(v float64) string { return fmt.Sprintf("%.4g", v) }
	row := []string{fmt.Sprint(i), "", "", num(b.X), num(b.Y), num(b.Width), num(b.Height), ""}

	switch cmd := cmd.(type) {
	case kaolin.DrawRectangle:
		row[1], row[2] = "rect", cmd.ID
		row[7] = cmd.Color.String()
		if cmd.Border.Width > 0 {
			row[7] += fmt.Sprintf(" border %g %v", cmd.Border.Width, cmd.Border.Color)
		}
	case kaolin.DrawText:
		row[1] = "text"
		row[5], row[6] = "", ""
		row[7] = fmt.Sprintf("%q size %g", cmd.Text, cmd.FontSize)
	case kaolin.DrawCustom:
		row[1], row[2] = "custom", cmd.ID
		row[7] = fmt.Sprint(cmd.Data)
	}
	return row
}
