package catalog

import (
	"fmt"
	"math"
)

// AxisStatistics summarises one numeric field over one record collection.
// All three values are rounded to two decimals.
type AxisStatistics struct {
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Average float64 `json:"average"`
}

// Minimum returns the smallest value of field across records.
//
// Returns ErrEmptyCollection if records is empty.
func Minimum(field NumericField, records []Record) (float64, error) {
	if len(records) == 0 {
		return 0, fmt.Errorf("minimum %s: %w", field, ErrEmptyCollection)
	}
	m := records[0].Value(field)
	for _, r := range records[1:] {
		m = math.Min(m, r.Value(field))
	}
	return round2(m), nil
}

// Maximum returns the largest value of field across records.
//
// Returns ErrEmptyCollection if records is empty.
func Maximum(field NumericField, records []Record) (float64, error) {
	if len(records) == 0 {
		return 0, fmt.Errorf("maximum %s: %w", field, ErrEmptyCollection)
	}
	m := records[0].Value(field)
	for _, r := range records[1:] {
		m = math.Max(m, r.Value(field))
	}
	return round2(m), nil
}

// Average returns the arithmetic mean of field across records.
//
// Values are summed in record order so results are reproducible.
// Returns ErrEmptyCollection if records is empty.
func Average(field NumericField, records []Record) (float64, error) {
	if len(records) == 0 {
		return 0, fmt.Errorf("average %s: %w", field, ErrEmptyCollection)
	}
	var sum float64
	for _, r := range records {
		sum += r.Value(field)
	}
	return round2(sum / float64(len(records))), nil
}

// Stats computes minimum, maximum and average of field in one call
func Stats(field NumericField, records []Record) (AxisStatistics, error) {
	lo, err := Minimum(field, records)
	if err != nil {
		return AxisStatistics{}, err
	}
	hi, err := Maximum(field, records)
	if err != nil {
		return AxisStatistics{}, err
	}
	avg, err := Average(field, records)
	if err != nil {
		return AxisStatistics{}, err
	}
	return AxisStatistics{Min: lo, Max: hi, Average: avg}, nil
}

// round2 rounds to two decimals, halves away from zero
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
