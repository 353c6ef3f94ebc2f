// Package compare: domain types for information-criterion comparison.
package compare

import (
	"sort"
	"strings"
)

// Criterion names the information criterion a Table is ranked by.
type Criterion string

const (
	// WAIC is the widely applicable information criterion.
	WAIC Criterion = "waic"

	// LOO is the Pareto-smoothed leave-one-out approximation.
	LOO Criterion = "loo"
)

// recognized reports whether c is a criterion this package can lay out.
// Matching is case-insensitive, mirroring column-name lookup in the wider
// ecosystem.
func (c Criterion) recognized() bool {
	switch Criterion(strings.ToLower(string(c))) {
	case WAIC, LOO:
		return true
	default:
		return false
	}
}

// Row is one model's entry in a comparison table.
//
// Fields:
//   - Model — model name, used as the y-axis label.
//   - Value — the information-criterion estimate.
//   - SE    — standard error of Value.
//   - PIC   — penalization term (effective number of parameters).
//   - DSE   — standard error of the difference against the top-ranked
//     model; zero for the top-ranked row itself.
//   - Rank  — 0 is the best model.
type Row struct {
	Model string
	Value float64
	SE    float64
	PIC   float64
	DSE   float64
	Rank  int
}

// Table is the ordered result of a model comparison. Scale optionally
// names the reporting scale of the criterion ("deviance", "log", ...);
// empty means deviance, the conventional default.
type Table struct {
	Criterion Criterion
	Scale     string
	Rows      []Row
}

// SortByRank orders rows best-first, in place. The sort is stable so rows
// sharing a rank keep their relative order.
// Complexity: O(n log n).
func (t *Table) SortByRank() {
	sort.SliceStable(t.Rows, func(i, j int) bool { return t.Rows[i].Rank < t.Rows[j].Rank })
}
