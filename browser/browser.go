// Package browser builds SQL aggregation statements for a cube. It is the
// consumer of the aggregate function registry: it resolves the cube's
// measures to fact table columns and composes the labeled aggregate
// expressions into a full SELECT.
package browser

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"

	"github.com/cubesql/cubesql"
	"github.com/cubesql/cubesql/aggregates"
	"github.com/cubesql/cubesql/sqlexpr"
)

// Browser browses a single cube.
type Browser struct {
	cube *cubesql.Cube
}

func NewBrowser(cube *cubesql.Cube) *Browser {
	return &Browser{cube: cube}
}

func (b *Browser) Cube() *cubesql.Cube {
	return b.cube
}

// Column resolves a measure to its fact table column.
func (b *Browser) Column(measure *cubesql.Measure) sq.Sqlizer {
	return sqlexpr.Column(measure.ColumnName())
}

// AggregationSQL renders the aggregation statement for the named aggregates,
// grouped by the drilldown dimensions. With no names given, all aggregates
// declared by the cube are selected. With coalesce set, NULLs are substituted
// according to each aggregate function's policy.
func (b *Browser) AggregationSQL(aggregateNames []string, drilldown []string, coalesce bool) (string, []interface{}, error) {
	selected, err := b.selectAggregates(aggregateNames)
	if err != nil {
		return "", nil, err
	}

	builder := sq.StatementBuilder.Select().From(b.cube.FactTable)

	for _, name := range drilldown {
		dimension, err := b.cube.Dimension(name)
		if err != nil {
			return "", nil, errors.Wrap(err, "couldn't resolve drilldown dimension")
		}
		builder = builder.
			Column(sqlexpr.Column(dimension.ColumnName())).
			GroupBy(dimension.ColumnName())
	}

	for _, aggregate := range selected {
		function, err := aggregates.GetAggregateFunction(aggregate.Function)
		if err != nil {
			return "", nil, errors.Wrapf(err, "couldn't get function for aggregate %s", aggregate.Name)
		}
		expression, err := function.Call(aggregate, b, coalesce)
		if err != nil {
			return "", nil, errors.Wrapf(err, "couldn't apply aggregate %s", aggregate.Name)
		}
		builder = builder.Column(expression)
	}

	return builder.ToSql()
}

func (b *Browser) selectAggregates(names []string) ([]*cubesql.Aggregate, error) {
	if len(names) == 0 {
		out := make([]*cubesql.Aggregate, len(b.cube.Aggregates))
		for i := range b.cube.Aggregates {
			out[i] = &b.cube.Aggregates[i]
		}
		if len(out) == 0 {
			return nil, errors.Errorf("cube %s declares no aggregates", b.cube.Name)
		}
		return out, nil
	}

	out := make([]*cubesql.Aggregate, 0, len(names))
	for _, name := range names {
		aggregate, err := b.cube.Aggregate(name)
		if err != nil {
			return nil, err
		}
		out = append(out, aggregate)
	}
	return out, nil
}
