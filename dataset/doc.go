// Package dataset converts heterogeneous numeric sample data into labeled,
// self-describing datasets under the (chain, draw, …) convention.
//
// What:
//
//   - InferDimsCoords fills in missing dimension names and coordinates for
//     a trailing shape, exactly reproducing the ecosystem's inference policy
//     (auto names "<var>_dim_<i>", default 0..n-1 coordinates, filtering of
//     unused coordinate entries).
//   - NewDataArray labels a raw array: axis 0 is "chain", axis 1 is "draw",
//     remaining axes are free shape. Rank-1 input is treated as one chain.
//   - Assemble applies NewDataArray to an ordered list of named variables
//     and merges the results into one attribute-tagged Dataset.
//   - MakeAttrs builds the standard attribute record (creation timestamp,
//     optional inference-engine name and version).
//   - InferenceData groups related datasets (posterior, prior, sample
//     stats, …) behind explicit optional fields.
//
// Why:
//
//   - Inference engines emit bare numeric arrays; downstream diagnostics
//     need named dimensions and indexable coordinates to stay comparable
//     across engines.
//   - The shape-to-semantics policy has sharp edge cases (partial dims,
//     partial coords, more chains than draws) that must behave identically
//     everywhere; centralizing it here keeps every converter honest.
//
// Warnings vs errors:
//
//   - Suspicious shapes warn through a caller-supplied WarnSink and
//     computation proceeds best-effort (dims count above rank, more chains
//     than draws).
//   - Broken coordinates are fatal: a coordinate sequence whose length does
//     not match its axis fails array construction with ErrCoordLength.
//
// Determinism:
//
//   - Inputs (dims, coords) are deep-copied before any mutation.
//   - Dataset preserves the caller's variable order; no map iteration
//     reaches the public surface.
//
// Errors:
//
//   - ErrNilValues: nil array passed where sample data is required.
//   - ErrCoordLength: coordinate length != axis length.
//   - ErrMissingCoord: a named dimension ended up with no coordinate entry.
//   - ErrDimCount: final dims list length != array rank.
//
// See the examples in this package for usage patterns.
package dataset
