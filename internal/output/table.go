package output

import (
	"io"

	"github.com/olekukonko/tablewriter"
)

// TableFormatter outputs tables as aligned text using tablewriter
type TableFormatter struct {
	writer io.Writer
}

// NewTableFormatter creates a new text table formatter
func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{writer: w}
}

// SetOutput sets the output writer
func (f *TableFormatter) SetOutput(w io.Writer) {
	f.writer = w
}

// Format renders the table with its name as caption. Headers are kept
// as written.
func (f *TableFormatter) Format(t Table) error {
	tw := tablewriter.NewWriter(f.writer)
	tw.SetHeader(t.Columns)
	tw.SetAutoFormatHeaders(false)
	tw.SetAutoWrapText(false)
	if t.Name != "" {
		tw.SetCaption(true, t.Name)
	}

	for _, row := range t.Rows {
		cells := make([]string, len(t.Columns))
		for i := range t.Columns {
			if i < len(row) {
				cells[i] = formatValue(row[i])
			}
		}
		tw.Append(cells)
	}

	tw.Render()
	return nil
}
