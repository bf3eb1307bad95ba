// Package output provides formatters for printing query results and
// statistics.
//
// Currently supported formats:
//   - Table: aligned, bordered text table
//   - JSON Lines: One JSON object per line
//   - CSV: Comma-separated values with header row
//
// Example usage:
//
//	formatter, err := output.New("table", os.Stdout)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := formatter.Format(output.RecordTable("results", records)); err != nil {
//	    log.Fatal(err)
//	}
package output

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrUnsupportedFormat is returned by New for unknown format names
var ErrUnsupportedFormat = errors.New("unsupported output format")

// Formats lists the names accepted by New
var Formats = []string{"table", "jsonl", "json", "csv"}

// Table is a named, column-ordered block of rows ready for formatting
type Table struct {
	Name    string
	Columns []string
	Rows    [][]interface{}
}

// Formatter defines the interface for output formatters.
//
// Implementers must provide Format to write a table in the target format
// and SetOutput to change the output destination.
type Formatter interface {
	// Format writes one table in the formatter's specific format
	Format(t Table) error

	// SetOutput changes the output writer
	SetOutput(w io.Writer)
}

// New returns the formatter registered under name
func New(name string, w io.Writer) (Formatter, error) {
	switch strings.ToLower(name) {
	case "table":
		return NewTableFormatter(w), nil
	case "json", "jsonl":
		return NewJSONFormatter(w), nil
	case "csv":
		return NewCSVFormatter(w), nil
	default:
		return nil, fmt.Errorf("%w: %q (supported: %s)", ErrUnsupportedFormat, name, strings.Join(Formats, ", "))
	}
}

// formatValue converts a cell value to its text form
func formatValue(v interface{}) string {
	if v == nil {
		return ""
	}

	switch val := v.(type) {
	case string:
		return val
	case int, int8, int16, int32, int64:
		return fmt.Sprintf("%d", val)
	case float32, float64:
		return fmt.Sprintf("%g", val)
	case bool:
		return fmt.Sprintf("%t", val)
	default:
		return fmt.Sprintf("%v", val)
	}
}
