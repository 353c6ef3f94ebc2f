// Package dataset: domain types for labeled arrays and datasets.
// This file intentionally contains ONLY domain-facing types; errors live in
// errors.go and the warning channel in diag.go per the package conventions.
package dataset

import (
	"github.com/katalvlaran/izar/ndarray"
)

// Reserved dimension names of the sampling convention. Axis 0 of every
// labeled sample array is DimChain, axis 1 is DimDraw.
const (
	// DimChain names the independent-sampling-run axis.
	DimChain = "chain"

	// DimDraw names the within-chain sample axis.
	DimDraw = "draw"
)

// Coords maps a dimension name to its ordered coordinate labels. Labels
// need not be numeric; default generation uses 0..n-1 ints. Every function
// in this package deep-copies incoming Coords before mutating, so callers
// never observe changes to their own maps.
type Coords map[string][]any

// Clone returns a deep copy: the map and each label slice are copied.
// Labels themselves are scalars and shared. A nil receiver yields an
// empty, writable map.
// Complexity: O(total labels).
func (c Coords) Clone() Coords {
	out := make(Coords, len(c))
	for name, labels := range c {
		cp := make([]any, len(labels))
		copy(cp, labels)
		out[name] = cp
	}

	return out
}

// Attrs is the attribute record attached to a Dataset: string keys to
// JSON-serializable scalar values.
type Attrs map[string]any

// DataArray is a value of some shape paired with an ordered list of
// dimension names and a coordinate map covering exactly those names.
//
// Invariants (established by NewDataArray, preserved by every consumer):
//   - len(Dims) == Values.Rank()
//   - every name in Dims has a Coords entry of the matching axis length
type DataArray struct {
	Name   string         // variable name, used for auto dimension naming
	Values *ndarray.Dense // sample data, rank >= 2 after normalization
	Dims   []string       // axis names, [chain, draw, ...free dims]
	Coords Coords         // one entry per name in Dims
}

// Variable is one named raw array headed into Assemble. Datasets preserve
// the caller's ordering, so input arrives as a slice rather than a Go map
// (map iteration order is not deterministic).
type Variable struct {
	Name   string
	Values *ndarray.Dense
}

// Dataset is an insertion-ordered mapping from variable name to DataArray
// plus an attribute record. Two variables may reuse a dimension name; the
// per-variable coordinate maps are kept independent and no cross-variable
// consistency check is performed (last write wins in merged views).
type Dataset struct {
	order []string
	vars  map[string]*DataArray
	attrs Attrs
}

// Names returns the variable names in insertion order.
// Complexity: O(n) copy.
func (ds *Dataset) Names() []string {
	out := make([]string, len(ds.order))
	copy(out, ds.order)

	return out
}

// Var returns the labeled array for name, or (nil, false) when absent.
// Complexity: O(1).
func (ds *Dataset) Var(name string) (*DataArray, bool) {
	da, ok := ds.vars[name]

	return da, ok
}

// Len returns the number of variables.
// Complexity: O(1).
func (ds *Dataset) Len() int { return len(ds.order) }

// Attrs returns the attribute record. The map is shared with the Dataset;
// treat it as read-only.
// Complexity: O(1).
func (ds *Dataset) Attrs() Attrs { return ds.attrs }

// DimLen reports the axis length of the named dimension, scanning
// variables in insertion order and returning the first match.
// Complexity: O(n·rank).
func (ds *Dataset) DimLen(name string) (int, bool) {
	for _, varName := range ds.order {
		da := ds.vars[varName]
		for k, dim := range da.Dims {
			if dim == name {
				return da.Values.Shape()[k], true
			}
		}
	}

	return 0, false
}

// MergedCoords flattens every variable's coordinate map into one view,
// in insertion order. On a dimension-name collision the later variable
// wins, unchecked — this mirrors the reference merge behavior.
// Complexity: O(total labels).
func (ds *Dataset) MergedCoords() Coords {
	out := make(Coords)
	for _, varName := range ds.order {
		for dim, labels := range ds.vars[varName].Coords {
			cp := make([]any, len(labels))
			copy(cp, labels)
			out[dim] = cp
		}
	}

	return out
}
