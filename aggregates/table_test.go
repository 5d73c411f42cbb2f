package aggregates

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/cubesql/cubesql"
)

func TestAggregateFunctionTable(t *testing.T) {
	names := []string{
		"avg",
		"count",
		"count_nonempty",
		"identity",
		"max",
		"min",
		"stddev",
		"sum",
		"variance",
	}

	assert.Equal(t, names, AvailableAggregateFunctions())

	for _, name := range names {
		function, err := GetAggregateFunction(name)
		assert.Nil(t, err)
		assert.NotNil(t, function)
		assert.Equal(t, name, function.Name())
		assert.Equal(t, name, function.String())
	}
}

func TestGetAggregateFunctionUnknown(t *testing.T) {
	function, err := GetAggregateFunction("nonexistent")
	assert.Nil(t, function)
	assert.Equal(t, cubesql.ErrFunctionNotFound, errors.Cause(err))
	assert.NotContains(t, AvailableAggregateFunctions(), "nonexistent")
}

func TestAvailableAggregateFunctionsStable(t *testing.T) {
	first := AvailableAggregateFunctions()

	_, err := GetAggregateFunction("sum")
	assert.Nil(t, err)

	assert.Equal(t, first, AvailableAggregateFunctions())
}

func TestRequiresMeasure(t *testing.T) {
	for _, name := range AvailableAggregateFunctions() {
		function, err := GetAggregateFunction(name)
		assert.Nil(t, err)
		assert.Equal(t, name != "count", function.RequiresMeasure(), name)
	}
}
