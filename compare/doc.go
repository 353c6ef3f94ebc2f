// Package compare lays out model-comparison summaries: given a ranking of
// models by an information criterion, it computes the full geometry of the
// classic comparison plot without touching any drawing backend.
//
// What:
//
//   - Table: ordered rows of {model, IC value, SE, pIC, rank, dSE}.
//   - BuildPlotModel: y-tick layout over [0, -1], IC points with standard
//     error bars, difference points with dSE bars for all but the
//     top-ranked model, in-sample deviance points, the best-model
//     reference line, and the x-axis label derived from the IC scale.
//
// Why:
//
//   - The plot layout encodes real conventions (2n-1 tick positions with
//     half-step offsets, dSE rows interleaved between models) that every
//     backend must reproduce identically; computing them once keeps
//     matplotlib-style and bokeh-style renderers in agreement.
//
// Errors:
//
//   - ErrEmptyTable: no rows to lay out.
//   - ErrMissingCriterion: the table's criterion is not a recognized
//     information criterion (waic, loo).
//
// The renderer consumes a PlotModel read-only; the only mutation this
// package ever performs on a Table is the optional in-place sort by rank.
package compare
