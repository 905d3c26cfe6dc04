package store

import (
	"fmt"
	"regexp"

	"gorm.io/gorm"
)

// Op is a comparison operator in a filter clause.
type Op string

const (
	OpEq   Op = "="
	OpNe   Op = "<>"
	OpGt   Op = ">"
	OpGe   Op = ">="
	OpLt   Op = "<"
	OpLe   Op = "<="
	OpLike Op = "LIKE"
	OpIn   Op = "IN"
)

// Filter is a single (column, operator, value) clause. Find combines filters
// with AND and translates them to SQL so predicate evaluation happens in the
// storage layer, not in the caller's memory.
type Filter struct {
	Field string
	Op    Op
	Value interface{}
}

func Eq(field string, value interface{}) Filter { return Filter{Field: field, Op: OpEq, Value: value} }
func Ne(field string, value interface{}) Filter { return Filter{Field: field, Op: OpNe, Value: value} }
func Gt(field string, value interface{}) Filter { return Filter{Field: field, Op: OpGt, Value: value} }
func Ge(field string, value interface{}) Filter { return Filter{Field: field, Op: OpGe, Value: value} }
func Lt(field string, value interface{}) Filter { return Filter{Field: field, Op: OpLt, Value: value} }
func Le(field string, value interface{}) Filter { return Filter{Field: field, Op: OpLe, Value: value} }
func Like(field string, value interface{}) Filter {
	return Filter{Field: field, Op: OpLike, Value: value}
}
func In(field string, values interface{}) Filter { return Filter{Field: field, Op: OpIn, Value: values} }

// Columns are plain snake_case identifiers; anything else is rejected before
// it reaches the SQL text.
var columnPattern = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

func applyFilters(tx *gorm.DB, filters []Filter) (*gorm.DB, error) {
	for _, f := range filters {
		if !columnPattern.MatchString(f.Field) {
			return nil, fmt.Errorf("%w: bad column %q", ErrFilter, f.Field)
		}
		switch f.Op {
		case OpEq, OpNe, OpGt, OpGe, OpLt, OpLe, OpLike:
			tx = tx.Where(fmt.Sprintf("%s %s ?", f.Field, f.Op), f.Value)
		case OpIn:
			tx = tx.Where(fmt.Sprintf("%s IN ?", f.Field), f.Value)
		default:
			return nil, fmt.Errorf("%w: unsupported operator %q", ErrFilter, f.Op)
		}
	}
	return tx, nil
}
