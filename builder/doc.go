// SPDX-License-Identifier: MIT

// Package builder provides deterministic fixture graphs for core.Graph:
// paths, cycles, stars, grids, complete graphs and random sparse graphs.
//
// The package offers:
//
//   - BuildGraph(gopts, bopts, cons...): create a graph and apply constructors in order.
//   - Constructors: Path, Cycle, Star, Grid, Complete, RandomSparse.
//   - Vertex-ID schemes (IDFn): DefaultIDFn ("0","1",…), SymbolIDFn ("A".."Z"),
//     ExcelColumnIDFn ("A",…,"Z","AA",…).
//   - Edge-weight distributions (WeightFn): DefaultWeightFn, ConstantWeightFn,
//     UniformWeightFn, IntUniformWeightFn.
//   - BuilderOption: WithIDScheme, WithSeed, WithRand, WithWeightFn.
//
// Guarantees:
//
//   - Determinism: same inputs, options, seed and constructor order ⇒ identical graphs.
//   - Option constructors panic on meaningless input; constructors return
//     sentinel errors wrapped with the constructor name and never panic.
//   - Every weight produced is finite and ≥ 0, as core.Graph requires.
//
// Fixtures are used by the dijkstra tests (brute-force cross-checks),
// benchmarks and the `lvroute generate` command.
package builder
