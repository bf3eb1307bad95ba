// Package catalog holds the in-memory song catalog: the closed field registry,
// immutable records, and the aggregations computed over record collections.
//
// Example usage:
//
//	field, ok := catalog.LookupNumericField("Tempo")
//	if !ok {
//	    log.Fatal("unknown field")
//	}
//	avg, err := catalog.Average(field, cat.Records())
//	if errors.Is(err, catalog.ErrEmptyCollection) {
//	    fmt.Println("n/a")
//	}
package catalog

import (
	"fmt"
	"strings"
)

// NumericField identifies one of the numeric song properties
type NumericField int

const (
	Duration NumericField = iota
	Popularity
	Danceability
	Energy
	Loudness
	Speechiness
	Acousticness
	Instrumentalness
	Liveness
	Valence
	Tempo

	numNumericFields
)

// DetailField identifies one of the descriptive (string) song properties
type DetailField int

const (
	Name DetailField = iota
	Artist
	Album

	numDetailFields
)

var numericFieldNames = [numNumericFields]string{
	Duration:         "duration",
	Popularity:       "popularity",
	Danceability:     "danceability",
	Energy:           "energy",
	Loudness:         "loudness",
	Speechiness:      "speechiness",
	Acousticness:     "acousticness",
	Instrumentalness: "instrumentalness",
	Liveness:         "liveness",
	Valence:          "valence",
	Tempo:            "tempo",
}

var detailFieldNames = [numDetailFields]string{
	Name:   "name",
	Artist: "artist",
	Album:  "album",
}

// String returns the canonical lower-case field name
func (f NumericField) String() string {
	if !f.Valid() {
		return fmt.Sprintf("NumericField(%d)", int(f))
	}
	return numericFieldNames[f]
}

// Valid reports whether f is a member of the registry
func (f NumericField) Valid() bool {
	return f >= 0 && f < numNumericFields
}

// String returns the canonical lower-case field name
func (f DetailField) String() string {
	if !f.Valid() {
		return fmt.Sprintf("DetailField(%d)", int(f))
	}
	return detailFieldNames[f]
}

// Valid reports whether f is a member of the registry
func (f DetailField) Valid() bool {
	return f >= 0 && f < numDetailFields
}

// NumericFields returns every numeric field in registry order
func NumericFields() []NumericField {
	fields := make([]NumericField, 0, numNumericFields)
	for f := NumericField(0); f < numNumericFields; f++ {
		fields = append(fields, f)
	}
	return fields
}

// DetailFields returns every descriptive field in registry order
func DetailFields() []DetailField {
	fields := make([]DetailField, 0, numDetailFields)
	for f := DetailField(0); f < numDetailFields; f++ {
		fields = append(fields, f)
	}
	return fields
}

// LookupNumericField resolves a numeric field by name, ignoring case.
// Unknown names report false; there is no default field.
func LookupNumericField(name string) (NumericField, bool) {
	name = strings.ToLower(name)
	for f, n := range numericFieldNames {
		if n == name {
			return NumericField(f), true
		}
	}
	return 0, false
}

// LookupDetailField resolves a descriptive field by name, ignoring case.
func LookupDetailField(name string) (DetailField, bool) {
	name = strings.ToLower(name)
	for f, n := range detailFieldNames {
		if n == name {
			return DetailField(f), true
		}
	}
	return 0, false
}

// ParseNumericFields resolves a list of field names, failing on the first
// unknown name.
func ParseNumericFields(names []string) ([]NumericField, error) {
	fields := make([]NumericField, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		f, ok := LookupNumericField(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownField, name)
		}
		fields = append(fields, f)
	}
	return fields, nil
}
