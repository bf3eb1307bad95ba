package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vegasq/songcat/internal/catalog"
)

func fixtureRecords() []catalog.Record {
	return catalog.FromSongs([]catalog.Song{
		{Name: "Blue", Artist: "Alpha", Album: "One", Tempo: 130, Energy: 0.3},
		{Name: "Red", Artist: "Beta", Album: "Two", Tempo: 100.555, Energy: 0.9},
	}).Records()
}

func TestRecordTable(t *testing.T) {
	table := RecordTable("results", fixtureRecords())

	assert.Equal(t, "results", table.Name)
	require.Len(t, table.Columns, 15)
	assert.Equal(t, []string{"id", "name", "artist", "album", "duration"}, table.Columns[:5])
	assert.Equal(t, "tempo", table.Columns[14])

	require.Len(t, table.Rows, 2)
	assert.Equal(t, 1, table.Rows[0][0])
	assert.Equal(t, "Blue", table.Rows[0][1])
	assert.Equal(t, 130.0, table.Rows[0][14])
	assert.Equal(t, 2, table.Rows[1][0])
}

func TestRecordTable_Empty(t *testing.T) {
	table := RecordTable("", nil)
	assert.Len(t, table.Columns, 15)
	assert.Empty(t, table.Rows)
}

func TestStatsTable(t *testing.T) {
	table, err := StatsTable("stats", []catalog.NumericField{catalog.Tempo, catalog.Energy}, fixtureRecords())
	require.NoError(t, err)

	assert.Equal(t, []string{"field", "min", "max", "average"}, table.Columns)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, []interface{}{"tempo", 100.56, 130.0, 115.28}, table.Rows[0])
	assert.Equal(t, []interface{}{"energy", 0.3, 0.9, 0.6}, table.Rows[1])
}

func TestStatsTable_EmptyCollection(t *testing.T) {
	table, err := StatsTable("stats", []catalog.NumericField{catalog.Tempo}, nil)
	require.NoError(t, err)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, []interface{}{"tempo", NotAvailable, NotAvailable, NotAvailable}, table.Rows[0])
}

func TestTableFormatter_Format(t *testing.T) {
	var buf bytes.Buffer
	formatter := NewTableFormatter(&buf)

	table, err := StatsTable("select songs where tempo > 1", []catalog.NumericField{catalog.Tempo}, fixtureRecords())
	require.NoError(t, err)
	require.NoError(t, formatter.Format(table))

	out := buf.String()
	assert.Contains(t, out, "field")
	assert.Contains(t, out, "average")
	assert.Contains(t, out, "tempo")
	assert.Contains(t, out, "115.28")
	assert.Contains(t, out, "select songs where tempo > 1")
}

func TestTableFormatter_HeadersKeepCase(t *testing.T) {
	var buf bytes.Buffer
	formatter := NewTableFormatter(&buf)
	require.NoError(t, formatter.Format(Table{Columns: []string{"instrumentalness"}, Rows: [][]interface{}{{0.5}}}))

	assert.Contains(t, buf.String(), "instrumentalness")
	assert.NotContains(t, buf.String(), "INSTRUMENTALNESS")
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer

	for _, name := range Formats {
		f, err := New(strings.ToUpper(name), &buf)
		require.NoError(t, err, name)
		assert.NotNil(t, f)
	}

	f, err := New("table", &buf)
	require.NoError(t, err)
	assert.IsType(t, &TableFormatter{}, f)

	_, err = New("xml", &buf)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestSummaryTable(t *testing.T) {
	cat := catalog.FromSongs([]catalog.Song{
		{Name: "Blue", Artist: "Alpha", Tempo: 130, Loudness: -5, Duration: 200},
		{Name: "Blue", Artist: "Alpha", Tempo: 130, Loudness: -5, Duration: 200},
		{Name: "Red", Artist: "Beta", Tempo: 100, Loudness: -3, Duration: 100},
	})

	table := SummaryTable(cat, 4)
	want := [][]interface{}{
		{"songs", 3},
		{"unique songs", 2},
		{"unique artists", 2},
		{"average duration", 166.67},
		{"average tempo", 120.0},
		{"maximum loudness", -3.0},
		{"minimum tempo", 100.0},
		{"queries", 4},
	}
	assert.Equal(t, want, table.Rows)
}

func TestSummaryTable_EmptyCatalog(t *testing.T) {
	table := SummaryTable(catalog.New(nil), 0)
	require.Len(t, table.Rows, 8)
	for _, row := range table.Rows[3:7] {
		assert.Equal(t, NotAvailable, row[1], row[0])
	}
	assert.Equal(t, []interface{}{"songs", 0}, table.Rows[0])
}
