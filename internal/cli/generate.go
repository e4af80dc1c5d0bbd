// SPDX-License-Identifier: MIT

package cli

import (
	"bytes"
	"fmt"
	"math"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvroute/builder"
	"github.com/katalvlaran/lvroute/graphfile"
)

type generateOpts struct {
	n          int
	rows, cols int
	p          float64
	seed       int64
	minWeight  float64
	maxWeight  float64
	integer    bool
	ids        string
	name       string
	output     string
}

func newGenerateCmd() *cobra.Command {
	opts := generateOpts{
		n:         6,
		rows:      3,
		cols:      3,
		p:         0.3,
		seed:      1,
		minWeight: 1,
		maxWeight: 1,
		ids:       "number",
	}

	cmd := &cobra.Command{
		Use:       "generate KIND",
		Short:     "Write a generated graph as TOML",
		Long:      `Generate a fixture graph. KIND is one of path, cycle, star, grid, complete or random.`,
		Example:   `  lvroute generate random --n 20 --p 0.2 --weight-min 1 --weight-max 10 --seed 7 -o random.toml`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"path", "cycle", "star", "grid", "complete", "random"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, args[0], opts)
		},
	}

	cmd.Flags().IntVarP(&opts.n, "n", "n", opts.n, "vertex count")
	cmd.Flags().IntVar(&opts.rows, "rows", opts.rows, "grid rows")
	cmd.Flags().IntVar(&opts.cols, "cols", opts.cols, "grid columns")
	cmd.Flags().Float64VarP(&opts.p, "p", "p", opts.p, "edge probability for random graphs")
	cmd.Flags().Int64Var(&opts.seed, "seed", opts.seed, "random seed")
	cmd.Flags().Float64Var(&opts.minWeight, "weight-min", opts.minWeight, "minimum edge weight")
	cmd.Flags().Float64Var(&opts.maxWeight, "weight-max", opts.maxWeight, "maximum edge weight")
	cmd.Flags().BoolVar(&opts.integer, "integer", false, "draw integral weights")
	cmd.Flags().StringVar(&opts.ids, "ids", opts.ids, "vertex IDs: number, letter or column")
	cmd.Flags().StringVar(&opts.name, "name", "", "graph name stored in the file (default KIND)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")

	return cmd
}

func constructorFor(kind string, opts generateOpts) (builder.Constructor, error) {
	switch kind {
	case "path":
		return builder.Path(opts.n), nil
	case "cycle":
		return builder.Cycle(opts.n), nil
	case "star":
		return builder.Star(opts.n), nil
	case "grid":
		return builder.Grid(opts.rows, opts.cols), nil
	case "complete":
		return builder.Complete(opts.n), nil
	case "random":
		return builder.RandomSparse(opts.n, opts.p), nil
	}
	return nil, fmt.Errorf("unknown graph kind %q", kind)
}

func idSchemeFor(name string) (builder.IDFn, error) {
	switch name {
	case "number":
		return builder.DefaultIDFn, nil
	case "letter":
		return builder.SymbolIDFn, nil
	case "column":
		return builder.ExcelColumnIDFn, nil
	}
	return nil, fmt.Errorf("unknown id scheme %q (want number, letter or column)", name)
}

// usesIDScheme reports whether the constructor for kind names vertices with
// the --ids scheme. Grid always uses "r,c".
func usesIDScheme(kind string) bool {
	return kind != "grid"
}

// weightFnFor validates the weight range. With --integer the bounds are
// narrowed to the whole numbers inside [min, max].
func weightFnFor(opts generateOpts) (builder.WeightFn, error) {
	lo, hi := opts.minWeight, opts.maxWeight
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(hi, 0) || lo < 0 || hi < lo {
		return nil, fmt.Errorf("invalid weight range [%g, %g]", lo, hi)
	}
	if !opts.integer {
		return builder.UniformWeightFn(lo, hi), nil
	}

	ilo, ihi := math.Ceil(lo), math.Floor(hi)
	if ilo > ihi {
		return nil, fmt.Errorf("weight range [%g, %g] contains no integer", lo, hi)
	}
	return builder.IntUniformWeightFn(int(ilo), int(ihi)), nil
}

func runGenerate(cmd *cobra.Command, kind string, opts generateOpts) error {
	ctor, err := constructorFor(kind, opts)
	if err != nil {
		return err
	}
	idFn, err := idSchemeFor(opts.ids)
	if err != nil {
		return err
	}
	if opts.ids == "letter" && usesIDScheme(kind) && opts.n > 26 {
		return fmt.Errorf("letter IDs support at most 26 vertices, got %d", opts.n)
	}
	weightFn, err := weightFnFor(opts)
	if err != nil {
		return err
	}

	g, err := builder.BuildGraph(nil, []builder.BuilderOption{
		builder.WithSeed(opts.seed),
		builder.WithIDScheme(idFn),
		builder.WithWeightFn(weightFn),
	}, ctor)
	if err != nil {
		return err
	}

	name := opts.name
	if name == "" {
		name = kind
	}
	loggerFromContext(cmd.Context()).Debug("generated graph", "kind", kind, "vertices", g.VertexCount(), "edges", g.EdgeCount())

	var buf bytes.Buffer
	if err := graphfile.FromGraph(name, g).Encode(&buf); err != nil {
		return err
	}
	if opts.output == "" {
		_, err = cmd.OutOrStdout().Write(buf.Bytes())
		return err
	}
	if err := os.WriteFile(opts.output, buf.Bytes(), 0o644); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printSuccess(out, "generated %s graph", kind)
	printStats(out, g.VertexCount(), g.EdgeCount())
	printFile(out, opts.output)

	return nil
}
