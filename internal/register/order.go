package register

import (
	"cmp"
	"slices"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortByCodes orders records by code hierarchy, then category and name.
// This is the order of the CSV artifact.
func SortByCodes(recs []Record) {
	slices.SortStableFunc(recs, compareByCodes)
}

func compareByCodes(a, b Record) int {
	if c := slices.Compare(a.Codes, b.Codes); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Category, b.Category); c != 0 {
		return c
	}
	return cmp.Compare(a.Name, b.Name)
}

// Collator orders Cyrillic names the way a Ukrainian reader expects.
// The underlying collate.Collator keeps scratch buffers, so calls are
// serialized.
type Collator struct {
	mu sync.Mutex
	c  *collate.Collator
}

// NewCollator returns a collator for Ukrainian.
func NewCollator() *Collator {
	return &Collator{c: collate.New(language.Ukrainian)}
}

// Compare returns -1, 0 or 1 comparing a and b.
func (c *Collator) Compare(a, b string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.c.CompareString(a, b)
}

// SortByName orders records by name for display. Ties keep their order.
func (c *Collator) SortByName(recs []Record) {
	c.mu.Lock()
	defer c.mu.Unlock()
	slices.SortStableFunc(recs, func(a, b Record) int {
		return c.c.CompareString(a.Name, b.Name)
	})
}

// Unique drops records whose name already appeared earlier in recs.
func Unique(recs []Record) []Record {
	seen := make(map[string]bool, len(recs))
	out := make([]Record, 0, len(recs))
	for _, r := range recs {
		if seen[r.Name] {
			continue
		}
		seen[r.Name] = true
		out = append(out, r)
	}
	return out
}

// Filter returns the records whose category is one of cats. With no
// categories every record is returned.
func Filter(recs []Record, cats ...Category) []Record {
	if len(cats) == 0 {
		return slices.Clone(recs)
	}
	var out []Record
	for _, r := range recs {
		if slices.Contains(cats, r.Category) {
			out = append(out, r)
		}
	}
	return out
}

// Index resolves level codes to the names of oblasts and raions.
type Index struct {
	oblasts map[string]string
	raions  map[string]string
}

// NewIndex builds an index from a full register.
func NewIndex(recs []Record) *Index {
	ix := &Index{
		oblasts: make(map[string]string),
		raions:  make(map[string]string),
	}
	for _, r := range recs {
		switch r.Category {
		case CategoryOblast:
			ix.oblasts[r.Level(1)] = r.Name
		case CategoryRaion:
			ix.raions[r.Level(2)] = r.Name
		}
	}
	return ix
}

// Oblast returns the name of the oblast coded at level 1 of rec.
func (ix *Index) Oblast(rec Record) string {
	return ix.oblasts[rec.Level(1)]
}

// Raion returns the name of the raion coded at level 2 of rec. Cities with
// special status sit directly under level 1 and resolve to it.
func (ix *Index) Raion(rec Record) string {
	code := rec.Level(2)
	if name, ok := ix.raions[code]; ok {
		return name
	}
	return ix.oblasts[code]
}
