// SPDX-License-Identifier: MIT

package builder

import "math/rand"

// builderConfig is the resolved, immutable configuration handed to every
// Constructor. It is produced by newBuilderConfig from BuilderOptions.
type builderConfig struct {
	idFn     IDFn       // vertex index → ID
	rng      *rand.Rand // nil unless WithSeed/WithRand
	weightFn WeightFn   // per-edge weight generator
}

// newBuilderConfig applies opts over the defaults: decimal IDs, no RNG,
// constant DefaultEdgeWeight.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		rng:      nil,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// weight draws the next edge weight.
func (c builderConfig) weight() float64 { return c.weightFn(c.rng) }
