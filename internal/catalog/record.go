package catalog

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyCollection is returned when an aggregation is requested over zero records
	ErrEmptyCollection = errors.New("empty collection")

	// ErrUnknownField is returned when a field name is not in the registry
	ErrUnknownField = errors.New("unknown field")
)

// Record is one immutable catalog entry.
//
// Every record carries a value for every registered field. The zero Record
// has ID 0 and is never produced by a loader.
type Record struct {
	id      int
	details [numDetailFields]string
	values  [numNumericFields]float64
}

// ID returns the 1-based identity assigned at load time
func (r Record) ID() int {
	return r.id
}

// Value returns the numeric property f
func (r Record) Value(f NumericField) float64 {
	return r.values[f]
}

// Detail returns the descriptive property f
func (r Record) Detail(f DetailField) string {
	return r.details[f]
}

// Name returns the song name
func (r Record) Name() string { return r.details[Name] }

// Artist returns the song artist
func (r Record) Artist() string { return r.details[Artist] }

// Album returns the album name
func (r Record) Album() string { return r.details[Album] }

// String renders the record in a single line
func (r Record) String() string {
	return fmt.Sprintf("#%d %q by %s (%s) popularity=%g tempo=%g energy=%g",
		r.id, r.Name(), r.Artist(), r.Album(),
		r.values[Popularity], r.values[Tempo], r.values[Energy])
}
