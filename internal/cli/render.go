// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvroute/dijkstra"
	"github.com/katalvlaran/lvroute/render"
)

const (
	formatDOT = "dot"
	formatSVG = "svg"
)

type renderOpts struct {
	from, to string
	format   string
	output   string
}

func newRenderCmd() *cobra.Command {
	opts := renderOpts{format: formatDOT}

	cmd := &cobra.Command{
		Use:   "render FILE",
		Short: "Draw a graph as DOT or SVG",
		Long: `Draw a graph file with Graphviz.

With --from/--to the shortest path between them is highlighted.`,
		Example: `  lvroute render roads.toml --from A --to E --format svg -o roads.svg`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.from, "from", "", "start vertex of the highlighted path")
	cmd.Flags().StringVar(&opts.to, "to", "", "end vertex of the highlighted path")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: dot or svg")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.MarkFlagsRequiredTogether("from", "to")

	return cmd
}

func runRender(cmd *cobra.Command, file string, opts renderOpts) error {
	format := strings.ToLower(opts.format)
	if format != formatDOT && format != formatSVG {
		return fmt.Errorf("unknown format %q (want %s or %s)", opts.format, formatDOT, formatSVG)
	}

	f, g, err := loadGraph(cmd, file)
	if err != nil {
		return err
	}
	logger := loggerFromContext(cmd.Context())

	ropts := render.Options{Title: f.Name}
	if opts.from != "" {
		p, ok := dijkstra.ShortestPath(g, opts.from, opts.to, dijkstra.WithLogger(logger))
		if !ok {
			logger.Warn("no path to highlight", "from", opts.from, "to", opts.to)
		} else {
			ropts.Path = p.Vertices
		}
	}

	dot := render.ToDOT(g, ropts)
	data := []byte(dot)
	if format == formatSVG {
		prog := newProgress(logger)
		if data, err = render.RenderSVG(cmd.Context(), dot); err != nil {
			return err
		}
		prog.done("rendered svg", "bytes", len(data))
	}

	if opts.output == "" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(opts.output, data, 0o644); err != nil {
		return err
	}
	printSuccess(cmd.OutOrStdout(), "rendered %s", format)
	printFile(cmd.OutOrStdout(), opts.output)

	return nil
}
