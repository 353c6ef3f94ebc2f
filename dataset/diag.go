package dataset

import "fmt"

// WarnKind classifies a non-fatal shape diagnostic.
//
//   - WarnDimsMismatch   — more dimension names given than the shape has axes.
//   - WarnChainsExceedDraws — chain count above draw count; chains rarely
//     outnumber draws, so the axes were likely passed in the wrong order.
type WarnKind int

const (
	// WarnDimsMismatch: dims count exceeds the trailing shape rank.
	WarnDimsMismatch WarnKind = iota

	// WarnChainsExceedDraws: n_chains > n_draws heuristic tripped.
	WarnChainsExceedDraws
)

// String returns a stable identifier for the kind.
func (k WarnKind) String() string {
	switch k {
	case WarnDimsMismatch:
		return "dims_mismatch"
	case WarnChainsExceedDraws:
		return "chains_exceed_draws"
	default:
		return fmt.Sprintf("WarnKind(%d)", int(k))
	}
}

// Warning is one structured diagnostic record. There is no process-wide
// warning stream: converters append records to a caller-supplied sink and
// computation proceeds best-effort.
type Warning struct {
	Kind WarnKind // classification, stable across releases
	Var  string   // variable name the diagnostic concerns
	Msg  string   // human-readable detail
}

// WarnSink receives diagnostic records during conversion. A nil sink
// silently drops them. Sinks are invoked synchronously on the calling
// goroutine; keep them cheap.
type WarnSink func(Warning)

// CollectWarnings returns a sink that appends every record to *dst.
//
// Example:
//
//	var warns []dataset.Warning
//	opts := dataset.DefaultArrayOptions()
//	opts.Warn = dataset.CollectWarnings(&warns)
func CollectWarnings(dst *[]Warning) WarnSink {
	return func(w Warning) { *dst = append(*dst, w) }
}

// emit forwards w to sink when one is set.
func (s WarnSink) emit(w Warning) {
	if s != nil {
		s(w)
	}
}
