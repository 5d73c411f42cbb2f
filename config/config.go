package config

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"

	"github.com/cubesql/cubesql"
	"github.com/cubesql/cubesql/aggregates"
)

type CubeConfig struct {
	Name       string            `yaml:"name"`
	FactTable  string            `yaml:"fact"`
	Measures   []MeasureConfig   `yaml:"measures"`
	Dimensions []DimensionConfig `yaml:"dimensions"`
	Aggregates []AggregateConfig `yaml:"aggregates"`
}

type MeasureConfig struct {
	Name    string      `yaml:"name"`
	Column  string      `yaml:"column"`
	Missing interface{} `yaml:"missing"`
}

type DimensionConfig struct {
	Name   string `yaml:"name"`
	Column string `yaml:"column"`
}

type AggregateConfig struct {
	Name     string `yaml:"name"`
	Function string `yaml:"function"`
	Measure  string `yaml:"measure"`
}

// ReadCubeConfig reads and validates a cube model.
func ReadCubeConfig(path string) (*cubesql.Cube, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "couldn't open file")
	}
	defer f.Close()

	var config CubeConfig

	err = yaml.NewDecoder(f).Decode(&config)
	if err != nil {
		return nil, errors.Wrap(err, "couldn't decode yaml cube model")
	}

	return config.ToCube()
}

// ToCube turns the decoded model into a validated cube. The fact table
// defaults to the cube name. Every declared aggregate has to name a
// registered aggregate function and, when the function needs one, a declared
// measure.
func (config *CubeConfig) ToCube() (*cubesql.Cube, error) {
	if config.Name == "" {
		return nil, errors.Errorf("cube name is required")
	}

	factTable := config.FactTable
	if factTable == "" {
		factTable = config.Name
	}

	cube := &cubesql.Cube{
		Name:      config.Name,
		FactTable: factTable,
	}

	for _, measure := range config.Measures {
		missing := measure.Missing
		if missing != nil {
			value, err := cast.ToFloat64E(missing)
			if err != nil {
				return nil, errors.Wrapf(err, "invalid missing value for measure %s", measure.Name)
			}
			missing = value
		}
		cube.Measures = append(cube.Measures, cubesql.Measure{
			Name:    measure.Name,
			Column:  measure.Column,
			Missing: missing,
		})
	}

	for _, dimension := range config.Dimensions {
		cube.Dimensions = append(cube.Dimensions, cubesql.Dimension{
			Name:   dimension.Name,
			Column: dimension.Column,
		})
	}

	for _, aggregate := range config.Aggregates {
		function, err := aggregates.GetAggregateFunction(aggregate.Function)
		if err != nil {
			return nil, errors.Wrapf(err, "couldn't resolve function for aggregate %s", aggregate.Name)
		}
		if function.RequiresMeasure() {
			if aggregate.Measure == "" {
				return nil, errors.Wrapf(cubesql.ErrNoMeasure,
					"no measure specified for aggregate %s, required for aggregate function %s",
					aggregate.Name, aggregate.Function)
			}
			if _, err := cube.Measure(aggregate.Measure); err != nil {
				return nil, errors.Wrapf(err, "couldn't resolve measure for aggregate %s", aggregate.Name)
			}
		}
		cube.Aggregates = append(cube.Aggregates, cubesql.Aggregate{
			Name:     aggregate.Name,
			Function: aggregate.Function,
			Measure:  aggregate.Measure,
		})
	}

	return cube, nil
}
