package query

import (
	"math"
	"testing"

	"github.com/vegasq/songcat/internal/catalog"
)

func TestCompare_Numbers(t *testing.T) {
	// computed at run time; constant arithmetic would be exact
	tenth, fifth := 0.1, 0.2
	sum := tenth + fifth

	tests := []struct {
		name     string
		left     float64
		operator Operator
		right    float64
		want     bool
	}{
		{"equal", 3.14, OpEqual, 3.14, true},
		{"not equal", 3.14, OpNotEqual, 2.71, true},
		{"less", 2.5, OpLess, 3.0, true},
		{"greater", 3.5, OpGreater, 3.0, true},
		{"less equal same", 30, OpLessEqual, 30, true},
		{"less equal less", 25, OpLessEqual, 30, true},
		{"greater equal same", 30, OpGreaterEqual, 30, true},
		{"greater equal greater", 35, OpGreaterEqual, 30, true},

		// Equality is exact
		{"sum is not exactly point three", sum, OpEqual, 0.3, false},
		{"sum differs from point three", sum, OpNotEqual, 0.3, true},

		// NaN compares false except for !=
		{"nan equal", math.NaN(), OpEqual, math.NaN(), false},
		{"nan not equal", math.NaN(), OpNotEqual, math.NaN(), true},
		{"nan greater", math.NaN(), OpGreater, 0, false},

		// Negative results
		{"not equal same", 30, OpNotEqual, 30, false},
		{"less wrong", 35, OpLess, 30, false},
		{"greater wrong", 25, OpGreater, 30, false},
		{"unknown operator", 1, Operator(99), 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := compareNumbers(tt.left, tt.operator, tt.right)
			if got != tt.want {
				t.Errorf("compareNumbers(%v, %v, %v) = %v, want %v", tt.left, tt.operator, tt.right, got, tt.want)
			}
		})
	}
}

func testRecords() []catalog.Record {
	return catalog.FromSongs([]catalog.Song{
		{Name: "fast calm", Tempo: 130, Energy: 0.3, Popularity: 60},
		{Name: "slow loud", Tempo: 100, Energy: 0.9, Popularity: 5},
		{Name: "fast calm two", Tempo: 125, Energy: 0.1, Popularity: 80},
		{Name: "middle", Tempo: 120, Energy: 0.5, Popularity: 30},
	}).Records()
}

func ids(records []catalog.Record) []int {
	out := make([]int, len(records))
	for i, r := range records {
		out[i] = r.ID()
	}
	return out
}

func equalIDs(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestQuery_Matches(t *testing.T) {
	r := catalog.Song{Tempo: 130, Energy: 0.3}.Record(1)

	tests := []struct {
		name string
		q    Query
		want bool
	}{
		{"single match", Query{Predicates: []Predicate{{catalog.Tempo, OpGreater, 120}}}, true},
		{"all match", Query{Predicates: []Predicate{{catalog.Tempo, OpGreater, 120}, {catalog.Energy, OpLess, 0.5}}}, true},
		{"one fails", Query{Predicates: []Predicate{{catalog.Tempo, OpGreater, 120}, {catalog.Energy, OpGreater, 0.5}}}, false},
		{"boundary", Query{Predicates: []Predicate{{catalog.Tempo, OpGreater, 130}}}, false},
		{"boundary inclusive", Query{Predicates: []Predicate{{catalog.Tempo, OpGreaterEqual, 130}}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.q.Matches(r); got != tt.want {
				t.Errorf("Matches() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRun_EndToEnd(t *testing.T) {
	records := catalog.FromSongs([]catalog.Song{
		{Tempo: 130, Energy: 0.3},
		{Tempo: 100, Energy: 0.9},
	}).Records()

	p, _ := newTestParser()
	results := Run(p.Parse("select songs where tempo > 120 and energy < 0.5"), records)

	if len(results) != 1 {
		t.Fatalf("Run() returned %d results, want 1", len(results))
	}
	if got := ids(results[0].Records); !equalIDs(got, []int{1}) {
		t.Errorf("Run() ids = %v, want [1]", got)
	}
}

func TestRun_IndependentQueries(t *testing.T) {
	p, _ := newTestParser()
	qs := p.Parse("select songs where popularity > 50 select songs where popularity < 10 select songs where popularity > 1000")
	results := Run(qs, testRecords())

	want := [][]int{{1, 3}, {2}, {}}
	if len(results) != len(want) {
		t.Fatalf("Run() returned %d results, want %d", len(results), len(want))
	}
	for i, res := range results {
		if got := ids(res.Records); !equalIDs(got, want[i]) {
			t.Errorf("result %d ids = %v, want %v", i, got, want[i])
		}
		if res.Query.String() != qs[i].String() {
			t.Errorf("result %d query = %v, want %v", i, res.Query, qs[i])
		}
	}
}

func TestRun_PreservesCatalogOrder(t *testing.T) {
	q := Query{Predicates: []Predicate{{catalog.Tempo, OpGreaterEqual, 120}}}
	got := ids(ApplyFilter(testRecords(), q))
	if !equalIDs(got, []int{1, 3, 4}) {
		t.Errorf("ApplyFilter() ids = %v, want [1 3 4]", got)
	}
}

func TestRun_EmptyInputs(t *testing.T) {
	if got := Run(nil, testRecords()); len(got) != 0 {
		t.Errorf("Run(nil) = %v, want empty", got)
	}

	q := Query{Predicates: []Predicate{{catalog.Tempo, OpGreater, 0}}}
	results := Run(QuerySet{q}, nil)
	if len(results) != 1 || len(results[0].Records) != 0 {
		t.Errorf("Run() over empty catalog = %v, want one empty result", results)
	}
}

func TestRun_NonFiniteLiteralMatchesNothing(t *testing.T) {
	records := catalog.FromSongs([]catalog.Song{{Name: "a", Tempo: 5}}).Records()

	for _, text := range []string{
		"select songs where tempo != nan",
		"select songs where tempo < infinity",
	} {
		queries := NewParser(nil).Parse(text)
		if len(queries) != 0 {
			t.Errorf("Parse(%q) = %v, want no queries", text, queries)
		}
		if results := Run(queries, records); len(results) != 0 {
			t.Errorf("Run(%q) = %v, want no results", text, results)
		}
	}
}
