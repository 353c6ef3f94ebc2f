package compare_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/izar/compare"
)

// threeModels returns an unsorted three-model WAIC table.
func threeModels() *compare.Table {
	return &compare.Table{
		Criterion: compare.WAIC,
		Rows: []compare.Row{
			{Model: "hierarchical", Value: 612.5, SE: 12.0, PIC: 4.1, DSE: 3.3, Rank: 1},
			{Model: "pooled", Value: 604.2, SE: 11.1, PIC: 2.8, DSE: 0, Rank: 0},
			{Model: "unpooled", Value: 630.9, SE: 14.6, PIC: 9.7, DSE: 6.8, Rank: 2},
		},
	}
}

// TestBuildPlotModel_EmptyAndMissing covers the fatal preconditions.
func TestBuildPlotModel_EmptyAndMissing(t *testing.T) {
	_, err := compare.BuildPlotModel(nil, nil)
	assert.ErrorIs(t, err, compare.ErrEmptyTable)

	_, err = compare.BuildPlotModel(&compare.Table{Criterion: compare.WAIC}, nil)
	assert.ErrorIs(t, err, compare.ErrEmptyTable)

	bad := threeModels()
	bad.Criterion = "aic"
	_, err = compare.BuildPlotModel(bad, nil)
	assert.ErrorIs(t, err, compare.ErrMissingCriterion)
}

// TestBuildPlotModel_CriterionCaseInsensitive mirrors column-name lookup:
// "LOO" and "loo" are the same criterion.
func TestBuildPlotModel_CriterionCaseInsensitive(t *testing.T) {
	tbl := threeModels()
	tbl.Criterion = "LOO"

	_, err := compare.BuildPlotModel(tbl, nil)
	assert.NoError(t, err)
}

// TestBuildPlotModel_TickLayout verifies the 2n-1 linspace with half-step
// offsets on the difference rows.
func TestBuildPlotModel_TickLayout(t *testing.T) {
	pm, err := compare.BuildPlotModel(threeModels(), nil)
	require.NoError(t, err)

	// n=3 → 5 ticks, step -0.25, odd ticks nudged by -0.125
	require.Len(t, pm.YTicks, 5)
	assert.InDelta(t, -0.25, pm.Step, 1e-12)
	assert.InDelta(t, 0.0, pm.YTicks[0], 1e-12)
	assert.InDelta(t, -0.375, pm.YTicks[1], 1e-12)
	assert.InDelta(t, -0.5, pm.YTicks[2], 1e-12)
	assert.InDelta(t, -0.875, pm.YTicks[3], 1e-12)
	assert.InDelta(t, -1.0, pm.YTicks[4], 1e-12)

	assert.Equal(t, [2]float64{-1.25, 0.25}, pm.YRange)
}

// TestBuildPlotModel_OrderByRank verifies the in-place best-first sort and
// the label interleaving.
func TestBuildPlotModel_OrderByRank(t *testing.T) {
	tbl := threeModels()
	pm, err := compare.BuildPlotModel(tbl, nil)
	require.NoError(t, err)

	assert.Equal(t, "pooled", tbl.Rows[0].Model, "table must be sorted in place")
	assert.Equal(t, []string{"pooled", "", "hierarchical", "", "unpooled"}, pm.YLabels)
	assert.Equal(t, 604.2, pm.RefLineX, "reference line sits at the best model")
}

// TestBuildPlotModel_Geometry verifies marker and bar coordinates.
func TestBuildPlotModel_Geometry(t *testing.T) {
	pm, err := compare.BuildPlotModel(threeModels(), nil)
	require.NoError(t, err)

	require.Len(t, pm.IC, 3)
	assert.Equal(t, compare.Point{X: 604.2, Y: pm.YTicks[0]}, pm.IC[0])

	require.Len(t, pm.SEBars, 3)
	assert.InDelta(t, 604.2-11.1, pm.SEBars[0].X0, 1e-9)
	assert.InDelta(t, 604.2+11.1, pm.SEBars[0].X1, 1e-9)

	require.Len(t, pm.Insample, 3)
	assert.InDelta(t, 604.2-2*2.8, pm.Insample[0].X, 1e-9)

	// diff rows exist for all but the top-ranked model, at the odd ticks
	require.Len(t, pm.Diff, 2)
	require.Len(t, pm.DSEBars, 2)
	assert.Equal(t, pm.YTicks[1], pm.Diff[0].Y)
	assert.InDelta(t, 612.5-3.3, pm.DSEBars[0].X0, 1e-9)
	assert.InDelta(t, 612.5+3.3, pm.DSEBars[0].X1, 1e-9)
}

// TestBuildPlotModel_Toggles verifies each geometry group can be switched
// off independently.
func TestBuildPlotModel_Toggles(t *testing.T) {
	opts := compare.PlotOptions{OrderByRank: true}
	pm, err := compare.BuildPlotModel(threeModels(), &opts)
	require.NoError(t, err)

	assert.Len(t, pm.IC, 3, "IC markers are unconditional")
	assert.Empty(t, pm.SEBars)
	assert.Empty(t, pm.Insample)
	assert.Empty(t, pm.Diff)
	assert.Empty(t, pm.DSEBars)
}

// TestBuildPlotModel_ScaleLabel verifies the x-axis label: capitalized
// scale when given, "Deviance" by default.
func TestBuildPlotModel_ScaleLabel(t *testing.T) {
	tbl := threeModels()
	pm, err := compare.BuildPlotModel(tbl, nil)
	require.NoError(t, err)
	assert.Equal(t, "Deviance", pm.XLabel)

	tbl = threeModels()
	tbl.Scale = "log"
	pm, err = compare.BuildPlotModel(tbl, nil)
	require.NoError(t, err)
	assert.Equal(t, "Log", pm.XLabel)
}

// TestBuildPlotModel_SingleModel covers the degenerate one-row layout.
func TestBuildPlotModel_SingleModel(t *testing.T) {
	tbl := &compare.Table{
		Criterion: compare.LOO,
		Rows:      []compare.Row{{Model: "only", Value: 100, SE: 5, PIC: 1, Rank: 0}},
	}
	pm, err := compare.BuildPlotModel(tbl, nil)
	require.NoError(t, err)

	assert.Equal(t, []float64{0}, pm.YTicks)
	assert.Equal(t, 0.0, pm.Step)
	assert.Empty(t, pm.Diff)
	assert.Len(t, pm.IC, 1)
}
