package dataset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/izar/dataset"
)

// sampleDataset assembles a tiny posterior-shaped dataset for group tests.
func sampleDataset(t *testing.T, names ...string) *dataset.Dataset {
	t.Helper()
	vars := make([]dataset.Variable, 0, len(names))
	for _, name := range names {
		vars = append(vars, dataset.Variable{Name: name, Values: zeros(t, 4, 100, 3)})
	}
	ds, err := dataset.Assemble(vars, nil)
	require.NoError(t, err)

	return ds
}

// TestPosteriorVarNames covers the posterior → prior → empty fallback chain.
func TestPosteriorVarNames(t *testing.T) {
	id := &dataset.InferenceData{}
	assert.Empty(t, id.PosteriorVarNames(), "no groups, no names")

	id.Prior = sampleDataset(t, "mu", "tau")
	assert.Equal(t, []string{"mu", "tau"}, id.PosteriorVarNames())

	id.Posterior = sampleDataset(t, "theta")
	assert.Equal(t, []string{"theta"}, id.PosteriorVarNames(), "posterior takes precedence")
}

// TestPosteriorChainsDraws covers the group fallback order and the
// (-1, -1) absent answer.
func TestPosteriorChainsDraws(t *testing.T) {
	id := &dataset.InferenceData{}
	chains, draws := id.PosteriorChainsDraws()
	assert.Equal(t, -1, chains)
	assert.Equal(t, -1, draws)

	id.SampleStats = sampleDataset(t, "lp")
	chains, draws = id.PosteriorChainsDraws()
	assert.Equal(t, 4, chains)
	assert.Equal(t, 100, draws)
}

// TestPredictionsDims verifies posterior-predictive variables contribute
// free dims only, while observed/constant data contribute full dims.
func TestPredictionsDims(t *testing.T) {
	id := &dataset.InferenceData{
		PosteriorPredictive: sampleDataset(t, "y_hat"),
		ObservedData:        sampleDataset(t, "y"),
	}

	dims := id.PredictionsDims(nil)
	assert.Equal(t, []string{"y_hat_dim_0"}, dims["y_hat"], "chain/draw must be stripped")
	assert.Equal(t, []string{"chain", "draw", "y_dim_0"}, dims["y"], "observed data keeps full dims")
}

// TestPredictionsDims_CallerOverride verifies a non-nil dims map passes
// through untouched.
func TestPredictionsDims_CallerOverride(t *testing.T) {
	id := &dataset.InferenceData{PosteriorPredictive: sampleDataset(t, "y_hat")}
	override := map[string][]string{"y_hat": {"obs"}}

	assert.Equal(t, override, id.PredictionsDims(override))
}
