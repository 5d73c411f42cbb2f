package aggregates

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"

	"github.com/cubesql/cubesql"
	"github.com/cubesql/cubesql/sqlexpr"
)

// CoalescePolicy says at which point of the aggregation pipeline NULLs are
// substituted when the caller asks for coalescing.
type CoalescePolicy int

const (
	// CoalesceNone never substitutes, whatever the caller asked for.
	CoalesceNone CoalescePolicy = iota
	// CoalesceValues substitutes into the measure column before aggregating.
	CoalesceValues
	// CoalesceSummary substitutes into the aggregated result.
	CoalesceSummary
)

func (p CoalescePolicy) String() string {
	switch p {
	case CoalesceValues:
		return "values"
	case CoalesceSummary:
		return "summary"
	default:
		return "none"
	}
}

// Context is the active query building state. It resolves logical measures of
// a cube to concrete SQL columns.
type Context interface {
	Cube() *cubesql.Cube
	Column(measure *cubesql.Measure) sq.Sqlizer
}

// AggregateFunction applies one named SQL aggregate to a measure column.
// Instances are immutable and shared read-only between all callers.
type AggregateFunction struct {
	name            string
	fn              func(sq.Sqlizer) sq.Sqlizer
	requiresMeasure bool
	coalesce        CoalescePolicy
	missing         interface{}
}

// NewAggregateFunction creates a measure-based aggregate function with the
// given coalescing policy. The default missing value substitute is 0.
func NewAggregateFunction(name string, fn func(sq.Sqlizer) sq.Sqlizer, coalesce CoalescePolicy) *AggregateFunction {
	return &AggregateFunction{
		name:            name,
		fn:              fn,
		requiresMeasure: true,
		coalesce:        coalesce,
		missing:         0,
	}
}

// NewGenerativeFunction creates a function that generates a value without
// using any of the measures, like count over a fixed literal operand.
func NewGenerativeFunction(name string, operand sq.Sqlizer, fn func(sq.Sqlizer) sq.Sqlizer) *AggregateFunction {
	return &AggregateFunction{
		name: name,
		fn:   func(sq.Sqlizer) sq.Sqlizer { return fn(operand) },
	}
}

// WithMissingValue returns a copy of the function that coalesces to the given
// substitute instead of 0. A measure's configured missing value still takes
// precedence.
func (f *AggregateFunction) WithMissingValue(missing interface{}) *AggregateFunction {
	out := *f
	out.missing = missing
	return &out
}

func (f *AggregateFunction) Name() string {
	return f.name
}

// RequiresMeasure reports whether the function needs an aggregate with a
// measure reference and a context to resolve it.
func (f *AggregateFunction) RequiresMeasure() bool {
	return f.requiresMeasure
}

// Coalesce returns the function's coalescing policy.
func (f *AggregateFunction) Coalesce() CoalescePolicy {
	return f.coalesce
}

func (f *AggregateFunction) String() string {
	return f.name
}

// Call applies the function on the aggregate and labels the resulting
// expression with the aggregate's name. This is the entry point the query
// building subsystem uses.
func (f *AggregateFunction) Call(aggregate *cubesql.Aggregate, ctx Context, coalesce bool) (sq.Sqlizer, error) {
	expression, err := f.Apply(aggregate, ctx, coalesce)
	if err != nil {
		return nil, err
	}
	return sqlexpr.Label(expression, aggregate.Name), nil
}

// Apply builds the unlabeled aggregate expression. Generative functions
// ignore the aggregate and the context entirely, both may be nil. All other
// functions need the aggregate to reference a measure and the context to
// resolve it. With coalesce set, NULLs are substituted according to the
// function's policy: either in the column before aggregating or in the
// aggregated result.
func (f *AggregateFunction) Apply(aggregate *cubesql.Aggregate, ctx Context, coalesce bool) (sq.Sqlizer, error) {
	if !f.requiresMeasure {
		return f.fn(nil), nil
	}

	if ctx == nil {
		return nil, errors.Wrapf(cubesql.ErrNoContext, "aggregate function %s", f.name)
	}
	if aggregate == nil {
		return nil, errors.Wrapf(cubesql.ErrNoMeasure, "no aggregate specified for aggregate function %s", f.name)
	}
	if aggregate.Measure == "" {
		return nil, errors.Wrapf(cubesql.ErrNoMeasure,
			"no measure specified for aggregate %s, required for aggregate function %s",
			aggregate.Name, f.name)
	}

	measure, err := ctx.Cube().Measure(aggregate.Measure)
	if err != nil {
		return nil, errors.Wrapf(err, "couldn't resolve measure for aggregate %s", aggregate.Name)
	}
	column := ctx.Column(measure)

	if coalesce && f.coalesce == CoalesceValues {
		column = sqlexpr.Coalesce(column, f.missingValue(measure))
	}

	expression := f.fn(column)

	if coalesce && f.coalesce == CoalesceSummary {
		expression = sqlexpr.Coalesce(expression, f.missingValue(measure))
	}

	return expression, nil
}

func (f *AggregateFunction) missingValue(measure *cubesql.Measure) interface{} {
	if measure.Missing != nil {
		return measure.Missing
	}
	return f.missing
}
