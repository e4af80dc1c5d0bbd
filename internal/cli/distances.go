// SPDX-License-Identifier: MIT

package cli

import (
	"math"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvroute/dijkstra"
)

func newDistancesCmd() *cobra.Command {
	var source string

	cmd := &cobra.Command{
		Use:     "distances FILE",
		Short:   "Print the distance from one vertex to every other vertex",
		Example: `  lvroute distances roads.toml --source A`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, g, err := loadGraph(cmd, args[0])
			if err != nil {
				return err
			}

			dist, _, err := dijkstra.Dijkstra(g,
				dijkstra.Source(source),
				dijkstra.WithLogger(loggerFromContext(cmd.Context())))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printTitle(out, "distances from %s", source)
			printStats(out, g.VertexCount(), g.EdgeCount())
			for _, v := range g.Vertices() {
				d := dist[v]
				if math.IsInf(d, 1) {
					printKeyValue(out, v, styleDim.Render("unreachable"))
					continue
				}
				printKeyValue(out, v, formatWeight(d))
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&source, "source", "s", "", "source vertex")
	_ = cmd.MarkFlagRequired("source")

	return cmd
}
