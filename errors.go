package cubesql

import "github.com/pkg/errors"

// Configuration errors mean the caller wired the browser together incorrectly.
// Model errors mean the cube model itself is invalid and should be surfaced to
// whoever maintains the model. Match them with errors.Is or errors.Cause.
var (
	// ErrNoContext is returned when an aggregate function that needs to
	// resolve a measure column is applied without a query context.
	ErrNoContext = errors.New("no context provided")

	// ErrNoMeasure is returned when an aggregate doesn't reference a measure
	// but its aggregate function requires one.
	ErrNoMeasure = errors.New("measure required")

	// ErrMeasureNotFound is returned when an aggregate references a measure
	// the cube doesn't declare.
	ErrMeasureNotFound = errors.New("measure not found")

	// ErrAggregateNotFound is returned when a cube doesn't declare the
	// requested aggregate.
	ErrAggregateNotFound = errors.New("aggregate not found")

	// ErrFunctionNotFound is returned for aggregate function names that
	// aren't registered. There is no fallback and no case folding.
	ErrFunctionNotFound = errors.New("aggregate function not found")
)
