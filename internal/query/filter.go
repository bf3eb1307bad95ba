package query

import "github.com/vegasq/songcat/internal/catalog"

// compareNumbers compares two numbers with plain IEEE-754 semantics.
// == and != are exact; no tolerance is applied.
func compareNumbers(left float64, operator Operator, right float64) bool {
	switch operator {
	case OpEqual:
		return left == right
	case OpNotEqual:
		return left != right
	case OpLess:
		return left < right
	case OpGreater:
		return left > right
	case OpLessEqual:
		return left <= right
	case OpGreaterEqual:
		return left >= right
	default:
		return false
	}
}

// Matches reports whether the record satisfies the predicate
func (p Predicate) Matches(r catalog.Record) bool {
	return compareNumbers(r.Value(p.Field), p.Operator, p.Value)
}

// Matches reports whether the record satisfies every predicate of the query
func (q Query) Matches(r catalog.Record) bool {
	for _, p := range q.Predicates {
		if !p.Matches(r) {
			return false
		}
	}
	return true
}

// ApplyFilter returns the records matching q, in their original order
func ApplyFilter(records []catalog.Record, q Query) []catalog.Record {
	filtered := make([]catalog.Record, 0)
	for _, r := range records {
		if q.Matches(r) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// Run evaluates every query against the full record list independently.
//
// One Result is returned per query, in query order; results are never merged.
func Run(queries QuerySet, records []catalog.Record) []Result {
	results := make([]Result, 0, len(queries))
	for _, q := range queries {
		results = append(results, Result{Query: q, Records: ApplyFilter(records, q)})
	}
	return results
}
