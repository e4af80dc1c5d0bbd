// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvroute/dijkstra"
	"github.com/katalvlaran/lvroute/graphfile"
)

var errNoQueries = errors.New("no queries: pass --from and --to or add [[query]] tables to the file")

type pathOpts struct {
	from, to    string
	maxDistance float64
	capped      bool // --max-distance was given
}

func newPathCmd() *cobra.Command {
	var opts pathOpts

	cmd := &cobra.Command{
		Use:   "path FILE",
		Short: "Find shortest paths in a graph file",
		Long: `Find the minimum-weight path between two vertices.

Without --from/--to every [[query]] table stored in the file is answered.
An unreachable target is reported, not treated as a failure.`,
		Example: `  lvroute path roads.toml --from A --to E
  lvroute path roads.toml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.capped = cmd.Flags().Changed("max-distance")
			return runPath(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.from, "from", "", "start vertex")
	cmd.Flags().StringVar(&opts.to, "to", "", "end vertex")
	cmd.Flags().Float64Var(&opts.maxDistance, "max-distance", 0, "ignore paths longer than this (default no limit)")
	cmd.MarkFlagsRequiredTogether("from", "to")

	return cmd
}

func runPath(cmd *cobra.Command, file string, opts pathOpts) error {
	if opts.capped && (opts.maxDistance < 0 || math.IsNaN(opts.maxDistance)) {
		return fmt.Errorf("--max-distance %g: %w", opts.maxDistance, dijkstra.ErrBadMaxDistance)
	}

	f, g, err := loadGraph(cmd, file)
	if err != nil {
		return err
	}

	queries := f.Queries
	if opts.from != "" {
		queries = []graphfile.Query{{From: opts.from, To: opts.to}}
	}
	if len(queries) == 0 {
		return errNoQueries
	}

	logger := loggerFromContext(cmd.Context())
	qopts := []dijkstra.Option{dijkstra.WithLogger(logger)}
	if opts.capped {
		qopts = append(qopts, dijkstra.WithMaxDistance(opts.maxDistance))
	}

	out := cmd.OutOrStdout()
	for _, q := range queries {
		p, ok := dijkstra.ShortestPath(g, q.From, q.To, qopts...)
		if !ok {
			printWarning(out, "no path from %s to %s", q.From, q.To)
			continue
		}
		printSuccess(out, "%s %s %s  distance %s  hops %s",
			q.From, iconArrow, q.To,
			styleNumber.Render(formatWeight(p.Distance)),
			styleNumber.Render(strconv.Itoa(p.Hops())))
		printDetail(out, "%s", p.String())
	}

	return nil
}

func formatWeight(w float64) string {
	return strconv.FormatFloat(w, 'g', -1, 64)
}
