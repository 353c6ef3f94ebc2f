package ndarray

import (
	"fmt"
	"strings"
)

// Shape is an ordered sequence of axis extents. All extents are positive;
// rank 0 (empty Shape) denotes a scalar and is rejected by constructors
// that require data axes.
type Shape []int

// Rank returns the number of axes.
// Complexity: O(1).
func (s Shape) Rank() int { return len(s) }

// Size returns the total element count (product of extents).
// An empty shape has size 1 (scalar convention).
// Complexity: O(rank).
func (s Shape) Size() int {
	size := 1
	for _, n := range s {
		size *= n
	}

	return size
}

// Clone returns an independent copy of the shape.
// Complexity: O(rank).
func (s Shape) Clone() Shape {
	if s == nil {
		return nil
	}
	out := make(Shape, len(s))
	copy(out, s)

	return out
}

// validate checks every extent is positive; rank 0 is rejected.
func (s Shape) validate() error {
	if len(s) == 0 {
		return ErrBadShape
	}
	for _, n := range s {
		if n <= 0 {
			return ErrBadShape
		}
	}

	return nil
}

// Dense is a row-major n-dimensional array of float64 values.
// shape holds the extents, strides the row-major step per axis, and data
// the flat backing storage of length shape.Size().
type Dense struct {
	shape   Shape
	strides []int
	data    []float64 // contiguous row-major storage (offset = Σ idx[k]*strides[k])
}

var _ fmt.Stringer = (*Dense)(nil)

// rowMajorStrides computes strides for a row-major layout.
// Complexity: O(rank).
func rowMajorStrides(shape Shape) []int {
	strides := make([]int, len(shape))
	step := 1
	for k := len(shape) - 1; k >= 0; k-- {
		strides[k] = step
		step *= shape[k]
	}

	return strides
}

// New creates a zero-filled Dense with the given shape.
// Stage 1 (Validate): every extent must be > 0, rank must be >= 1.
// Stage 2 (Prepare): allocate the flat backing slice.
// Stage 3 (Finalize): return the new Dense or ErrBadShape.
// Complexity: O(size) time and memory.
func New(shape ...int) (*Dense, error) {
	s := Shape(shape).Clone()
	if err := s.validate(); err != nil {
		return nil, err
	}

	return &Dense{
		shape:   s,
		strides: rowMajorStrides(s),
		data:    make([]float64, s.Size()),
	}, nil
}

// FromSlice adopts data as the row-major backing storage of a Dense with
// the given shape. The slice is NOT copied; callers that need an
// independent lifetime should Clone the result.
// Returns ErrBadShape on an invalid shape and ErrSizeMismatch when
// len(data) != shape size.
// Complexity: O(rank) time, O(1) extra memory.
func FromSlice(data []float64, shape ...int) (*Dense, error) {
	s := Shape(shape).Clone()
	if err := s.validate(); err != nil {
		return nil, err
	}
	if len(data) != s.Size() {
		return nil, fmt.Errorf("FromSlice(len=%d, shape=%v): %w", len(data), shape, ErrSizeMismatch)
	}

	return &Dense{shape: s, strides: rowMajorStrides(s), data: data}, nil
}

// Shape returns a copy of the array's shape.
// Complexity: O(rank).
func (d *Dense) Shape() Shape { return d.shape.Clone() }

// Rank returns the number of axes.
// Complexity: O(1).
func (d *Dense) Rank() int { return len(d.shape) }

// Len returns the total element count.
// Complexity: O(1).
func (d *Dense) Len() int { return len(d.data) }

// Data returns the flat row-major backing slice. Mutations are visible to
// every view sharing this storage; use Clone for an independent copy.
// Complexity: O(1).
func (d *Dense) Data() []float64 { return d.data }

// offset computes the flat index for idx or returns ErrOutOfRange.
func (d *Dense) offset(idx []int) (int, error) {
	if len(idx) != len(d.shape) {
		return 0, fmt.Errorf("index arity %d for rank %d: %w", len(idx), len(d.shape), ErrOutOfRange)
	}
	flat := 0
	for k, i := range idx {
		if i < 0 || i >= d.shape[k] {
			return 0, fmt.Errorf("axis %d index %d (extent %d): %w", k, i, d.shape[k], ErrOutOfRange)
		}
		flat += i * d.strides[k]
	}

	return flat, nil
}

// At retrieves the element at the given multi-index.
// Complexity: O(rank).
func (d *Dense) At(idx ...int) (float64, error) {
	flat, err := d.offset(idx)
	if err != nil {
		return 0, err
	}

	return d.data[flat], nil
}

// Set assigns v at the given multi-index.
// Complexity: O(rank).
func (d *Dense) Set(v float64, idx ...int) error {
	flat, err := d.offset(idx)
	if err != nil {
		return err
	}
	d.data[flat] = v

	return nil
}

// Clone returns a deep copy with independent backing storage.
// Complexity: O(size).
func (d *Dense) Clone() *Dense {
	data := make([]float64, len(d.data))
	copy(data, d.data)

	return &Dense{shape: d.shape.Clone(), strides: rowMajorStrides(d.shape), data: data}
}

// Reshape returns a view of the same data under a new shape of equal size.
// The backing storage is shared. Returns ErrBadShape on an invalid shape
// and ErrSizeMismatch when the element counts differ.
// Complexity: O(rank), no data copy.
func (d *Dense) Reshape(shape ...int) (*Dense, error) {
	s := Shape(shape).Clone()
	if err := s.validate(); err != nil {
		return nil, err
	}
	if s.Size() != len(d.data) {
		return nil, fmt.Errorf("Reshape(%v) over %d elements: %w", shape, len(d.data), ErrSizeMismatch)
	}

	return &Dense{shape: s, strides: rowMajorStrides(s), data: d.data}, nil
}

// AtLeast2D normalizes d to rank >= 2 by prepending a size-1 leading axis
// to rank-1 input (a single chain of draws). Higher-rank input is returned
// as-is. The backing storage is always shared.
// Complexity: O(rank), no data copy.
func AtLeast2D(d *Dense) (*Dense, error) {
	if d == nil {
		return nil, ErrNilDense
	}
	if d.Rank() >= 2 {
		return d, nil
	}

	return d.Reshape(1, d.shape[0])
}

// String renders a compact, deterministic description, e.g.
// "Dense(4×100×8)". Element dumps are intentionally omitted: sample
// arrays are large and the labeling layer owns presentation.
func (d *Dense) String() string {
	parts := make([]string, len(d.shape))
	for k, n := range d.shape {
		parts[k] = fmt.Sprintf("%d", n)
	}

	return "Dense(" + strings.Join(parts, "×") + ")"
}
