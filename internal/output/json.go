package output

import (
	"encoding/json"
	"io"
)

// TableKey is the JSON key tagging each row with the name of its table
const TableKey = "_table"

// JSONFormatter outputs tables as JSON Lines format
type JSONFormatter struct {
	writer io.Writer
}

// NewJSONFormatter creates a new JSON Lines formatter
func NewJSONFormatter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{writer: w}
}

// SetOutput sets the output writer
func (j *JSONFormatter) SetOutput(w io.Writer) {
	j.writer = w
}

// Format writes one JSON object per row keyed by column name. Rows of a
// named table carry the name under TableKey.
func (j *JSONFormatter) Format(t Table) error {
	encoder := json.NewEncoder(j.writer)
	for _, row := range t.Rows {
		obj := make(map[string]interface{}, len(t.Columns)+1)
		for i, col := range t.Columns {
			if i < len(row) {
				obj[col] = row[i]
			}
		}
		if t.Name != "" {
			obj[TableKey] = t.Name
		}
		if err := encoder.Encode(obj); err != nil {
			return err
		}
	}
	return nil
}
