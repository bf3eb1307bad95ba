package catalog

import (
	"strconv"
	"strings"
)

// Catalog is an ordered, read-only collection of records.
//
// Nothing in this package mutates a Catalog after construction, so concurrent
// readers need no synchronisation.
type Catalog struct {
	records []Record
}

// New creates a catalog over records in the given order.
// The slice is copied so later changes by the caller are not observed.
func New(records []Record) *Catalog {
	owned := make([]Record, len(records))
	copy(owned, records)
	return &Catalog{records: owned}
}

// Records returns the records in load order.
//
// The returned slice is a copy; callers may reorder or truncate it freely.
func (c *Catalog) Records() []Record {
	out := make([]Record, len(c.records))
	copy(out, c.records)
	return out
}

// Len returns the number of records
func (c *Catalog) Len() int {
	return len(c.records)
}

// First returns up to n records from the start of the catalog
func (c *Catalog) First(n int) []Record {
	if n < 0 {
		n = 0
	}
	if n > len(c.records) {
		n = len(c.records)
	}
	out := make([]Record, n)
	copy(out, c.records[:n])
	return out
}

// UniqueArtists counts distinct artist strings
func (c *Catalog) UniqueArtists() int {
	seen := make(map[string]struct{})
	for _, r := range c.records {
		seen[r.Artist()] = struct{}{}
	}
	return len(seen)
}

// UniqueSongs counts distinct songs, where two records are the same song when
// every descriptive and numeric property matches.
func (c *Catalog) UniqueSongs() int {
	seen := make(map[string]struct{})
	for _, r := range c.records {
		seen[songKey(r)] = struct{}{}
	}
	return len(seen)
}

func songKey(r Record) string {
	var b strings.Builder
	for _, v := range r.details {
		b.WriteString(strconv.Quote(v))
		b.WriteByte(' ')
	}
	for _, v := range r.values {
		b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		b.WriteByte(' ')
	}
	return b.String()
}

// FilterByDetail returns the records whose descriptive field equals value,
// ignoring case. Order is preserved and records is left untouched.
func FilterByDetail(records []Record, field DetailField, value string) []Record {
	filtered := make([]Record, 0)
	for _, r := range records {
		if strings.EqualFold(r.Detail(field), value) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}
