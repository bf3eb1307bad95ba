// Package query provides parsing and evaluation of song catalog queries.
//
// It implements a small query language made of blocks of the form
//
//	select songs where <field> <op> <value> (and <field> <op> <value>)*
//
// The package includes a tokenizer, a parser that turns each block into an
// AND-combined Query, and an evaluator that runs every Query against a
// catalog independently.
//
// Example usage:
//
//	qs := query.Parse("select songs where tempo > 120 and energy < 0.5")
//	for _, res := range query.Run(qs, cat.Records()) {
//	    fmt.Println(res.Query, len(res.Records))
//	}
package query

import (
	"strconv"
	"strings"

	"github.com/vegasq/songcat/internal/catalog"
)

// Operator represents a comparison operator
type Operator int

const (
	OpGreater      Operator = iota // >
	OpGreaterEqual                 // >=
	OpLess                         // <
	OpLessEqual                    // <=
	OpEqual                        // ==
	OpNotEqual                     // !=
)

var operatorSymbols = map[string]Operator{
	">":  OpGreater,
	">=": OpGreaterEqual,
	"<":  OpLess,
	"<=": OpLessEqual,
	"==": OpEqual,
	"!=": OpNotEqual,
}

// String returns the operator symbol
func (o Operator) String() string {
	switch o {
	case OpGreater:
		return ">"
	case OpGreaterEqual:
		return ">="
	case OpLess:
		return "<"
	case OpLessEqual:
		return "<="
	case OpEqual:
		return "=="
	case OpNotEqual:
		return "!="
	default:
		return "?"
	}
}

// ParseOperator resolves an operator symbol
func ParseOperator(symbol string) (Operator, bool) {
	op, ok := operatorSymbols[symbol]
	return op, ok
}

// Predicate is a single field/operator/value comparison
type Predicate struct {
	Field    catalog.NumericField
	Operator Operator
	Value    float64
}

// String renders the predicate with the same grammar it was parsed from
func (p Predicate) String() string {
	return p.Field.String() + " " + p.Operator.String() + " " + strconv.FormatFloat(p.Value, 'g', -1, 64)
}

// Query is a non-empty, AND-combined sequence of predicates.
//
// Queries are only produced by the parser, which never emits an empty one.
type Query struct {
	Predicates []Predicate
}

// String renders the query as a single block of query text
func (q Query) String() string {
	parts := make([]string, len(q.Predicates))
	for i, p := range q.Predicates {
		parts[i] = p.String()
	}
	return blockSeparator + " " + strings.Join(parts, " "+clauseSeparator+" ")
}

// QuerySet is the ordered list of queries parsed from one input text
type QuerySet []Query

// Result pairs a query with the catalog records it matched
type Result struct {
	Query   Query
	Records []catalog.Record
}
