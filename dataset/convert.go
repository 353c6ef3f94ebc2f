package dataset

import (
	"fmt"

	"github.com/katalvlaran/izar/ndarray"
)

// DefaultVarName is used by NewDataArray when no variable name is given.
const DefaultVarName = "data"

// ArrayOptions configures NewDataArray.
//
// Fields:
//   - VarName — variable name, used for auto dimension naming ("data" if empty).
//   - Dims    — optional ordered dimension names for the free shape;
//     "" marks a gap to be auto-named.
//   - Coords  — optional partial coordinate map; missing entries default
//     to 0..n-1.
//   - Warn    — destination for non-fatal shape diagnostics; nil drops.
type ArrayOptions struct {
	VarName string
	Dims    []string
	Coords  Coords
	Warn    WarnSink
}

// DefaultArrayOptions returns the zero policy: auto-name everything,
// default coordinates, drop warnings.
func DefaultArrayOptions() ArrayOptions {
	return ArrayOptions{VarName: DefaultVarName}
}

// NewDataArray labels a raw sample array under the (chain, draw, …)
// convention.
//
// Description:
//
//	Rank-1 input is treated as a single chain and normalized to 1×n.
//	For rank >= 2, axis 0 is the chain, axis 1 the draw, and any remaining
//	axes are free shape delegated to InferDimsCoords. Reserved dims are
//	inserted at the front when missing and given default 0..n-1
//	coordinates. The final coordinate map is restricted to exactly the
//	names in the final dims list.
//
// Warnings:
//   - WarnChainsExceedDraws when n_chains > n_draws (axes likely swapped).
//   - WarnDimsMismatch propagated from InferDimsCoords.
//
// Errors:
//   - ErrNilValues     — values is nil.
//   - ErrDimCount      — final dims list length != array rank.
//   - ErrMissingCoord  — a final dim has no coordinate entry.
//   - ErrCoordLength   — a coordinate sequence's length != its axis length.
//
// Complexity: O(rank + total labels); the sample buffer is shared, never copied.
func NewDataArray(values *ndarray.Dense, opts *ArrayOptions) (*DataArray, error) {
	if values == nil {
		return nil, ErrNilValues
	}
	var o ArrayOptions
	if opts != nil {
		o = *opts
	}
	if o.VarName == "" {
		o.VarName = DefaultVarName
	}

	// Normalize rank: a bare draw vector is one chain.
	ary, err := ndarray.AtLeast2D(values)
	if err != nil {
		return nil, err
	}
	shape := ary.Shape()
	nChains, nDraws := shape[0], shape[1]
	if nChains > nDraws {
		o.Warn.emit(Warning{
			Kind: WarnChainsExceedDraws,
			Var:  o.VarName,
			Msg: fmt.Sprintf(
				"more chains (%d) than draws (%d); passed array should have shape (chains, draws, *shape)",
				nChains, nDraws),
		})
	}

	// Infer the free shape beyond (chain, draw).
	dims, coords := InferDimsCoords(shape[2:], o.VarName, o.Dims, o.Coords,
		[]string{DimChain, DimDraw}, o.Warn)

	// Reserved dims go up front, reversed insertion so chain lands first.
	if !contains(dims, DimDraw) {
		dims = append([]string{DimDraw}, dims...)
	}
	if !contains(dims, DimChain) {
		dims = append([]string{DimChain}, dims...)
	}
	// The free-shape filter above drops reserved names, so caller-supplied
	// chain/draw coordinates are recovered from the original map before
	// falling back to integer defaults.
	if _, ok := coords[DimChain]; !ok {
		coords[DimChain] = reservedCoord(o.Coords, DimChain, nChains)
	}
	if _, ok := coords[DimDraw]; !ok {
		coords[DimDraw] = reservedCoord(o.Coords, DimDraw, nDraws)
	}

	// Final construction: dims must cover every axis, coords must cover
	// every dim at the exact axis length. Hard errors from here on.
	if len(dims) != ary.Rank() {
		return nil, fmt.Errorf("variable %s: %d dims for rank %d: %w",
			o.VarName, len(dims), ary.Rank(), ErrDimCount)
	}
	final := make(Coords, len(dims))
	for k, dim := range dims {
		labels, ok := coords[dim]
		if !ok {
			return nil, fmt.Errorf("variable %s, dim %s: %w", o.VarName, dim, ErrMissingCoord)
		}
		if len(labels) != shape[k] {
			return nil, fmt.Errorf("variable %s, dim %s: %d labels for axis length %d: %w",
				o.VarName, dim, len(labels), shape[k], ErrCoordLength)
		}
		final[dim] = labels
	}

	return &DataArray{Name: o.VarName, Values: ary, Dims: dims, Coords: final}, nil
}

// reservedCoord returns a copy of the caller's labels for a reserved dim,
// or the default 0..n-1 range when none were supplied.
func reservedCoord(supplied Coords, dim string, n int) []any {
	if labels, ok := supplied[dim]; ok {
		cp := make([]any, len(labels))
		copy(cp, labels)

		return cp
	}

	return arange(n)
}

// DatasetOptions configures Assemble.
//
// Fields:
//   - Attrs  — caller attributes merged over the MakeAttrs defaults
//     (caller wins on key collision).
//   - Engine — optional inference engine recorded in the attributes.
//   - Coords — shared coordinate map, passed identically to every variable.
//   - Dims   — per-variable dimension overrides; absent entries mean full
//     auto-inference.
//   - Warn   — destination for non-fatal shape diagnostics; nil drops.
type DatasetOptions struct {
	Attrs  Attrs
	Engine Engine
	Coords Coords
	Dims   map[string][]string
	Warn   WarnSink
}

// DefaultDatasetOptions returns the zero policy: no attributes beyond the
// defaults, shared coords empty, full auto-inference, drop warnings.
func DefaultDatasetOptions() DatasetOptions {
	return DatasetOptions{}
}

// Assemble converts an ordered list of named raw arrays into one labeled,
// attribute-tagged Dataset.
//
// Each variable goes through NewDataArray with the shared coords and its
// own dims override. Variable order in the Dataset is the order of vars.
// Assembly fails fast on the first broken variable and does not roll back
// previously converted ones — no partial Dataset is ever returned.
//
// Errors: those of NewDataArray, wrapped with the failing variable's name.
// Complexity: O(Σ per-variable labeling).
func Assemble(vars []Variable, opts *DatasetOptions) (*Dataset, error) {
	var o DatasetOptions
	if opts != nil {
		o = *opts
	}

	ds := &Dataset{
		order: make([]string, 0, len(vars)),
		vars:  make(map[string]*DataArray, len(vars)),
		attrs: MakeAttrs(o.Attrs, o.Engine),
	}
	for _, v := range vars {
		aOpts := ArrayOptions{
			VarName: v.Name,
			Dims:    o.Dims[v.Name],
			Coords:  o.Coords,
			Warn:    o.Warn,
		}
		da, err := NewDataArray(v.Values, &aOpts)
		if err != nil {
			return nil, fmt.Errorf("assemble %q: %w", v.Name, err)
		}
		if _, seen := ds.vars[v.Name]; !seen {
			ds.order = append(ds.order, v.Name)
		}
		ds.vars[v.Name] = da
	}

	return ds, nil
}
