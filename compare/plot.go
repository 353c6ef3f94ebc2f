package compare

import "strings"

// PlotOptions configures BuildPlotModel.
//
// Fields:
//   - InsampleDev   — include in-sample deviance points (Value - 2·PIC).
//   - StandardError — include ±SE bars on the IC points.
//   - ICDiff        — include difference rows (points + ±dSE bars) for all
//     but the top-ranked model, interleaved between model rows.
//   - OrderByRank   — sort the table best-first, in place, before layout.
type PlotOptions struct {
	InsampleDev   bool
	StandardError bool
	ICDiff        bool
	OrderByRank   bool
}

// DefaultPlotOptions returns the conventional layout: everything on.
func DefaultPlotOptions() PlotOptions {
	return PlotOptions{InsampleDev: true, StandardError: true, ICDiff: true, OrderByRank: true}
}

// Point is one marker position in plot coordinates (x = criterion value,
// y = tick position).
type Point struct {
	X, Y float64
}

// Segment is one horizontal error bar: (X0,Y)–(X1,Y).
type Segment struct {
	X0, X1, Y float64
}

// PlotModel is the backend-agnostic geometry of a comparison plot. Y runs
// from 0 (best model) down to -1; X is in criterion units.
type PlotModel struct {
	YTicks  []float64 // 2n-1 positions: models at even indices, diffs at odd
	YLabels []string  // model names at even indices, "" between
	Step    float64   // signed distance between adjacent ticks

	IC       []Point   // one per model, at the even ticks
	SEBars   []Segment // ±SE around each IC point (StandardError)
	Insample []Point   // Value - 2·PIC per model (InsampleDev)
	Diff     []Point   // all but the top-ranked model, at the odd ticks (ICDiff)
	DSEBars  []Segment // ±dSE around each Diff point (ICDiff)

	RefLineX float64    // vertical reference at the best model's value
	XLabel   string     // capitalized scale, "Deviance" by default
	YRange   [2]float64 // suggested y-limits: (-1+Step, -Step)
}

// capitalize upper-cases the first rune, ASCII is all the scales use.
func capitalize(s string) string {
	if s == "" {
		return s
	}

	return strings.ToUpper(s[:1]) + s[1:]
}

// BuildPlotModel lays out a comparison plot for t.
//
// Layout convention:
//  1. 2n-1 tick positions spread linearly over [0, -1]; odd (difference)
//     positions are nudged by half a step so each diff row sits between
//     its model and the one above.
//  2. Model markers go at the even ticks, top-ranked first; difference
//     markers for rows 1..n-1 go at the odd ticks.
//  3. The reference line sits at the best model's criterion value.
//
// With opts.OrderByRank the table is sorted best-first in place; that is
// the only mutation ever applied to t.
//
// Errors:
//   - ErrEmptyTable       — t is nil or has no rows.
//   - ErrMissingCriterion — t.Criterion is not waic/loo.
//
// Complexity: O(n log n) with sorting, O(n) otherwise.
func BuildPlotModel(t *Table, opts *PlotOptions) (*PlotModel, error) {
	if t == nil || len(t.Rows) == 0 {
		return nil, ErrEmptyTable
	}
	if !t.Criterion.recognized() {
		return nil, ErrMissingCriterion
	}
	var o PlotOptions
	if opts != nil {
		o = *opts
	} else {
		o = DefaultPlotOptions()
	}
	if o.OrderByRank {
		t.SortByRank()
	}

	n := len(t.Rows)
	num := 2*n - 1
	step := 0.0
	if num > 1 {
		step = -1.0 / float64(num-1)
	}

	// Stage 1: tick positions and labels.
	ticks := make([]float64, num)
	labels := make([]string, num)
	for i := range ticks {
		ticks[i] = float64(i) * step
		if i%2 == 1 {
			ticks[i] += step / 2
		} else {
			labels[i] = t.Rows[i/2].Model
		}
	}

	// Stage 2: model markers, error bars, deviance points.
	model := &PlotModel{
		YTicks:   ticks,
		YLabels:  labels,
		Step:     step,
		RefLineX: t.Rows[0].Value,
		YRange:   [2]float64{-1 + step, -step},
	}
	scale := t.Scale
	if scale == "" {
		scale = "deviance"
	}
	model.XLabel = capitalize(scale)

	for i, row := range t.Rows {
		y := ticks[2*i]
		model.IC = append(model.IC, Point{X: row.Value, Y: y})
		if o.StandardError {
			model.SEBars = append(model.SEBars, Segment{X0: row.Value - row.SE, X1: row.Value + row.SE, Y: y})
		}
		if o.InsampleDev {
			model.Insample = append(model.Insample, Point{X: row.Value - 2*row.PIC, Y: y})
		}
	}

	// Stage 3: difference rows for everything below the top rank.
	if o.ICDiff && n > 1 {
		for i, row := range t.Rows[1:] {
			y := ticks[2*i+1]
			model.Diff = append(model.Diff, Point{X: row.Value, Y: y})
			model.DSEBars = append(model.DSEBars, Segment{X0: row.Value - row.DSE, X1: row.Value + row.DSE, Y: y})
		}
	}

	return model, nil
}
