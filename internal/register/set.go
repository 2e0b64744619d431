package register

import (
	"context"
	"slices"
)

// Set is an immutable in-memory register.
type Set struct {
	records []Record
}

// NewSet copies recs into a Set ordered by codes.
func NewSet(recs []Record) *Set {
	s := &Set{records: slices.Clone(recs)}
	SortByCodes(s.records)
	return s
}

// Len returns the number of records.
func (s *Set) Len() int {
	return len(s.records)
}

// Records returns the records of the given categories, or all of them.
func (s *Set) Records(ctx context.Context, cats ...Category) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Filter(s.records, cats...), nil
}
