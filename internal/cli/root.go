// SPDX-License-Identifier: MIT

// Package cli implements the lvroute command-line interface.
//
// # Commands
//
//   - path: shortest path between two vertices, or every query stored in the file
//   - distances: single-source distance table
//   - render: DOT or SVG drawing with an optional highlighted path
//   - generate: write a fixture graph (path, cycle, star, grid, complete, random) as TOML
//   - serve: HTTP query service over a graph file
//
// All commands accept --verbose (-v) for debug logging, which includes the
// settle/relax trace of every query. The logger travels in the command context.
package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/graphfile"
)

var (
	version = "dev"
	commit  string
	date    string
)

// SetVersion sets the version information shown by --version. main calls it
// with values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the lvroute CLI.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

// NewRootCommand assembles the command tree. Output goes to the command's
// out/err writers, so callers may redirect them with SetOut/SetErr.
func NewRootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "lvroute",
		Short:        "lvroute finds shortest paths in weighted graphs",
		Long:         `lvroute loads undirected weighted graphs from TOML files and answers shortest-path queries from the command line or over HTTP.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(cmd.ErrOrStderr(), level)))
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("lvroute %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newPathCmd())
	root.AddCommand(newDistancesCmd())
	root.AddCommand(newRenderCmd())
	root.AddCommand(newGenerateCmd())
	root.AddCommand(newServeCmd())

	return root
}

// loadGraph reads a graph file and builds its graph, logging the elapsed time.
func loadGraph(cmd *cobra.Command, path string) (*graphfile.File, *core.Graph, error) {
	logger := loggerFromContext(cmd.Context())
	prog := newProgress(logger)

	f, err := graphfile.Load(path)
	if err != nil {
		return nil, nil, err
	}
	g, err := f.Graph()
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	prog.done("loaded graph", "file", path, "vertices", g.VertexCount(), "edges", g.EdgeCount())

	return f, g, nil
}
