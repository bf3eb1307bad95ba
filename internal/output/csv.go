package output

import (
	"encoding/csv"
	"fmt"
	"io"
)

// CSVFormatter outputs tables as CSV format
type CSVFormatter struct {
	writer io.Writer
}

// NewCSVFormatter creates a new CSV formatter
func NewCSVFormatter(w io.Writer) *CSVFormatter {
	return &CSVFormatter{writer: w}
}

// SetOutput sets the output writer
func (c *CSVFormatter) SetOutput(w io.Writer) {
	c.writer = w
}

// Format writes the header row followed by every table row.
// A table with no rows produces no output.
func (c *CSVFormatter) Format(t Table) error {
	if len(t.Rows) == 0 {
		return nil
	}

	csvWriter := csv.NewWriter(c.writer)

	if err := csvWriter.Write(t.Columns); err != nil {
		return err
	}

	for _, row := range t.Rows {
		record := make([]string, len(t.Columns))
		for i := range t.Columns {
			if i < len(row) {
				record[i] = formatValue(row[i])
			}
		}
		if err := csvWriter.Write(record); err != nil {
			return err
		}
	}

	csvWriter.Flush()
	if err := csvWriter.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV writer: %w", err)
	}
	return nil
}
