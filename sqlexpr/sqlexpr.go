// Package sqlexpr contains the primitive SQL aggregate constructors used by
// the aggregate function registry. Everything is built out of squirrel
// expressions, so the results compose with the rest of a squirrel query and
// render through ToSql like any other Sqlizer.
package sqlexpr

import (
	sq "github.com/Masterminds/squirrel"
)

// Column returns a reference to a physical column.
func Column(name string) sq.Sqlizer {
	return sq.Expr(name)
}

// Raw returns a verbatim SQL fragment with no bound arguments.
func Raw(sql string) sq.Sqlizer {
	return sq.Expr(sql)
}

// Func returns a constructor for the named single-argument SQL function.
// Used for functions squirrel has no dedicated helper for (AVG, STDDEV,
// VARIANCE).
func Func(name string) func(sq.Sqlizer) sq.Sqlizer {
	return func(operand sq.Sqlizer) sq.Sqlizer {
		return sq.Expr(name+"(?)", operand)
	}
}

var (
	Sum   = Func("SUM")
	Min   = Func("MIN")
	Max   = Func("MAX")
	Count = Func("COUNT")
)

// Identity returns the operand unchanged.
func Identity(operand sq.Sqlizer) sq.Sqlizer {
	return operand
}

// Coalesce substitutes missing for NULL. The substitute is passed as a bound
// argument.
func Coalesce(operand sq.Sqlizer, missing interface{}) sq.Sqlizer {
	return sq.Expr("COALESCE(?, ?)", operand, missing)
}

// Label attaches a result label to the expression. Note that squirrel
// parenthesizes the aliased expression.
func Label(expr sq.Sqlizer, name string) sq.Sqlizer {
	return sq.Alias(expr, name)
}
