package cubesql

import (
	"github.com/pkg/errors"
)

// Measure is a numeric fact table column eligible for aggregation.
type Measure struct {
	Name   string
	Column string

	// Missing is substituted for NULL when an aggregation is asked to
	// coalesce. When nil, the aggregate function's default (zero) is used.
	Missing interface{}
}

// ColumnName returns the physical column backing the measure. Measures whose
// logical name matches the fact table column leave Column empty.
func (m *Measure) ColumnName() string {
	if m.Column != "" {
		return m.Column
	}
	return m.Name
}

// Aggregate is a request to apply one named aggregate function to one
// measure. Name doubles as the label of the resulting expression. Measure may
// be empty for generative functions like count.
type Aggregate struct {
	Name     string
	Function string
	Measure  string
}

// Dimension is a fact table attribute used for drilldown grouping.
type Dimension struct {
	Name   string
	Column string
}

func (d *Dimension) ColumnName() string {
	if d.Column != "" {
		return d.Column
	}
	return d.Name
}

// Cube ties a fact table to its measures, dimensions and declared aggregates.
type Cube struct {
	Name       string
	FactTable  string
	Measures   []Measure
	Dimensions []Dimension
	Aggregates []Aggregate
}

// Measure returns the measure with the given logical name.
func (c *Cube) Measure(name string) (*Measure, error) {
	for i := range c.Measures {
		if c.Measures[i].Name == name {
			return &c.Measures[i], nil
		}
	}
	return nil, errors.Wrapf(ErrMeasureNotFound, "cube %s has no measure %s", c.Name, name)
}

// Aggregate returns the declared aggregate with the given name.
func (c *Cube) Aggregate(name string) (*Aggregate, error) {
	for i := range c.Aggregates {
		if c.Aggregates[i].Name == name {
			return &c.Aggregates[i], nil
		}
	}
	return nil, errors.Wrapf(ErrAggregateNotFound, "cube %s has no aggregate %s", c.Name, name)
}

// Dimension returns the dimension with the given name.
func (c *Cube) Dimension(name string) (*Dimension, error) {
	for i := range c.Dimensions {
		if c.Dimensions[i].Name == name {
			return &c.Dimensions[i], nil
		}
	}
	return nil, errors.Errorf("cube %s has no dimension %s", c.Name, name)
}
