// Package compare: sentinel error set.
package compare

import "errors"

var (
	// ErrEmptyTable indicates a comparison table with no rows.
	ErrEmptyTable = errors.New("compare: comparison table has no rows")

	// ErrMissingCriterion indicates that the table carries no recognized
	// information criterion. Fatal: no partial layout is produced.
	ErrMissingCriterion = errors.New("compare: table must carry one of the information criteria: waic, loo")
)
