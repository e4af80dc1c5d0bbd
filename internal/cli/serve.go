// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvroute/internal/server"
)

func newServeCmd() *cobra.Command {
	addr := ":8080"

	cmd := &cobra.Command{
		Use:   "serve FILE",
		Short: "Serve shortest-path queries over HTTP",
		Long: `Load a graph file and answer queries until interrupted.

Endpoints: /healthz, /vertices, /path?from=&to=, /distances?source=`,
		Example: `  lvroute serve roads.toml --addr 127.0.0.1:9000`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, g, err := loadGraph(cmd, args[0])
			if err != nil {
				return err
			}
			return server.New(g, loggerFromContext(cmd.Context())).ListenAndServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", addr, "listen address")

	return cmd
}
