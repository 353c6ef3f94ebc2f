package dataset

import (
	"fmt"
	"strings"
)

// arange returns the default coordinate labels 0..n-1.
// Complexity: O(n).
func arange(n int) []any {
	labels := make([]any, n)
	for i := range labels {
		labels[i] = i
	}

	return labels
}

// contains reports whether name appears in names.
func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}

	return false
}

// InferDimsCoords — dimension/coordinate inference for one variable.
//
// Description:
//
//	Given the trailing shape of a variable (the axes beyond any reserved
//	leading dims), complete the dimension-name list and coordinate map:
//	missing names are synthesized as "<varName>_dim_<idx>", missing
//	coordinates default to 0..n-1, and leftover coordinate entries that
//	index no final dimension are dropped. The policy is reproduced exactly
//	for interoperability with the wider diagnostics ecosystem.
//
// Algorithm Outline:
//  1. Count entries of dims outside defaultDims; if the count exceeds
//     len(shape), emit WarnDimsMismatch through sink. Proceed regardless.
//  2. Deep-copy dims and coords; the caller's inputs are never mutated.
//  3. For each axis idx in shape: when dims has no entry at idx (too
//     short, or the "" null placeholder), insert "<varName>_dim_<idx>".
//  4. For each axis's final name with no coords entry, generate 0..n-1.
//  5. Filter coords down to the names that appear in the final dims list.
//
// Inputs:
//   - shape: trailing shape, excluding reserved leading dims. May be empty.
//   - varName: non-empty variable name used for auto-naming.
//   - dims: optional ordered names; "" marks a gap; may be shorter or
//     longer than shape. Entries beyond len(shape) are kept as-is (they are
//     legitimate when they name reserved dims, and already warned about
//     otherwise).
//   - coords: optional partial coordinate map.
//   - defaultDims: reserved names not counted against shape, e.g.
//     [DimChain, DimDraw].
//   - sink: warning destination; nil drops.
//
// Returns:
//   - the completed dims list and a coords map holding exactly the names
//     used by it. Coordinate LENGTH is intentionally not validated here;
//     mismatches surface as ErrCoordLength at array construction.
//
// Complexity: O(len(shape) + len(dims) + total labels).
func InferDimsCoords(shape []int, varName string, dims []string, coords Coords, defaultDims []string, sink WarnSink) ([]string, Coords) {
	// Stage 1: shape/dims arity heuristic.
	nonDefault := 0
	for _, dim := range dims {
		if !contains(defaultDims, dim) {
			nonDefault++
		}
	}
	if nonDefault > len(shape) {
		sink.emit(Warning{
			Kind: WarnDimsMismatch,
			Var:  varName,
			Msg: fmt.Sprintf(
				"in variable %s, there are more dims (%d) given than exist (%d); passed array should have shape (%s*shape)",
				varName, len(dims), len(shape), strings.Join(defaultDims, ",")+", "),
		})
	}

	// Stage 2: defensive copies.
	outDims := make([]string, len(dims))
	copy(outDims, dims)
	outCoords := coords.Clone()

	// Stage 3 + 4: fill gaps positionally, then default the coordinates.
	for idx, dimLen := range shape {
		if len(outDims) < idx+1 {
			outDims = append(outDims, fmt.Sprintf("%s_dim_%d", varName, idx))
		} else if outDims[idx] == "" {
			outDims[idx] = fmt.Sprintf("%s_dim_%d", varName, idx)
		}
		if _, ok := outCoords[outDims[idx]]; !ok {
			outCoords[outDims[idx]] = arange(dimLen)
		}
	}

	// Stage 5: drop coordinate entries that index no final dimension.
	for name := range outCoords {
		if !contains(outDims, name) {
			delete(outCoords, name)
		}
	}

	return outDims, outCoords
}
