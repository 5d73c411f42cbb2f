package aggregates

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/cubesql/cubesql"
	"github.com/cubesql/cubesql/sqlexpr"
)

// The registry is built eagerly and never mutated afterwards, so concurrent
// lookups need no locking.
var aggregateFunctionTable = map[string]*AggregateFunction{
	"sum":            NewAggregateFunction("sum", sqlexpr.Sum, CoalesceSummary),
	"count_nonempty": NewAggregateFunction("count_nonempty", sqlexpr.Count, CoalesceSummary),
	"min":            NewAggregateFunction("min", sqlexpr.Min, CoalesceValues),
	"max":            NewAggregateFunction("max", sqlexpr.Max, CoalesceValues),
	"avg":            NewAggregateFunction("avg", sqlexpr.Func("AVG"), CoalesceValues),
	// STDDEV and VARIANCE as understood by PostgreSQL.
	"stddev":   NewAggregateFunction("stddev", sqlexpr.Func("STDDEV"), CoalesceValues),
	"variance": NewAggregateFunction("variance", sqlexpr.Func("VARIANCE"), CoalesceValues),
	"identity": NewAggregateFunction("identity", sqlexpr.Identity, CoalesceNone),

	// Row count, doesn't depend on any measure.
	"count": NewGenerativeFunction("count", sqlexpr.Raw("1"), sqlexpr.Count),
}

// GetAggregateFunction returns the aggregate function registered under name.
func GetAggregateFunction(name string) (*AggregateFunction, error) {
	function, ok := aggregateFunctionTable[name]
	if !ok {
		return nil, errors.Wrapf(cubesql.ErrFunctionNotFound, "%s", name)
	}
	return function, nil
}

// AvailableAggregateFunctions returns the names of all registered aggregate
// functions, sorted.
func AvailableAggregateFunctions() []string {
	names := make([]string, 0, len(aggregateFunctionTable))
	for name := range aggregateFunctionTable {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
