package output

import (
	"errors"

	"github.com/vegasq/songcat/internal/catalog"
)

// NotAvailable is printed in place of a statistic over an empty collection
const NotAvailable = "n/a"

// RecordTable lays out records with one column per registered field, in
// registry order, preceded by the record identity.
func RecordTable(name string, records []catalog.Record) Table {
	columns := []string{"id"}
	for _, f := range catalog.DetailFields() {
		columns = append(columns, f.String())
	}
	for _, f := range catalog.NumericFields() {
		columns = append(columns, f.String())
	}

	rows := make([][]interface{}, 0, len(records))
	for _, r := range records {
		row := make([]interface{}, 0, len(columns))
		row = append(row, r.ID())
		for _, f := range catalog.DetailFields() {
			row = append(row, r.Detail(f))
		}
		for _, f := range catalog.NumericFields() {
			row = append(row, r.Value(f))
		}
		rows = append(rows, row)
	}

	return Table{Name: name, Columns: columns, Rows: rows}
}

// StatsTable lays out min, max and average of each field over records.
//
// An empty collection yields NotAvailable cells rather than an error; any
// other aggregation failure is returned.
func StatsTable(name string, fields []catalog.NumericField, records []catalog.Record) (Table, error) {
	t := Table{Name: name, Columns: []string{"field", "min", "max", "average"}}

	for _, f := range fields {
		stats, err := catalog.Stats(f, records)
		switch {
		case err == nil:
			t.Rows = append(t.Rows, []interface{}{f.String(), stats.Min, stats.Max, stats.Average})
		case errors.Is(err, catalog.ErrEmptyCollection):
			t.Rows = append(t.Rows, []interface{}{f.String(), NotAvailable, NotAvailable, NotAvailable})
		default:
			return Table{}, err
		}
	}

	return t, nil
}

// SummaryTable describes the whole catalog and the number of queries
// about to run. Aggregates over an empty catalog read NotAvailable.
func SummaryTable(cat *catalog.Catalog, queryCount int) Table {
	records := cat.Records()
	t := Table{
		Name:    "catalog summary",
		Columns: []string{"metric", "value"},
		Rows: [][]interface{}{
			{"songs", cat.Len()},
			{"unique songs", cat.UniqueSongs()},
			{"unique artists", cat.UniqueArtists()},
		},
	}

	aggregates := []struct {
		label string
		fn    func(catalog.NumericField, []catalog.Record) (float64, error)
		field catalog.NumericField
	}{
		{"average duration", catalog.Average, catalog.Duration},
		{"average tempo", catalog.Average, catalog.Tempo},
		{"maximum loudness", catalog.Maximum, catalog.Loudness},
		{"minimum tempo", catalog.Minimum, catalog.Tempo},
	}
	for _, a := range aggregates {
		v, err := a.fn(a.field, records)
		if err != nil {
			t.Rows = append(t.Rows, []interface{}{a.label, NotAvailable})
			continue
		}
		t.Rows = append(t.Rows, []interface{}{a.label, v})
	}

	t.Rows = append(t.Rows, []interface{}{"queries", queryCount})
	return t
}
