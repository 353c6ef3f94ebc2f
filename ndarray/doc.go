// Package ndarray provides the dense n-dimensional array primitive used by
// the dataset and compare packages.
//
// What:
//
//   - Dense: row-major float64 storage of arbitrary rank with safe At/Set.
//   - Shape: ordered extents with Rank/Size helpers and defensive cloning.
//   - AtLeast2D: rank normalization that prepends a size-1 leading axis to
//     rank-1 data (the "single chain" convention).
//
// Why:
//
//   - Sample arrays from inference engines arrive as flat numeric buffers;
//     Dense gives them a shape without committing to any labeling policy.
//   - Labeling (dimension names, coordinates) lives one level up, in dataset.
//
// Complexity:
//
//   - New/FromSlice: O(size) allocation or O(1) adoption; At/Set: O(rank).
//   - Clone: O(size). AtLeast2D/Reshape: O(1), data is shared, not copied.
//
// Errors:
//
//   - ErrBadShape: a requested extent is <= 0, or rank is 0 where data is required.
//   - ErrOutOfRange: an index is outside its axis, or has the wrong arity.
//   - ErrSizeMismatch: len(data) does not equal the shape's element count.
//
// See the examples in this package for usage patterns.
package ndarray
