package translit

import (
	"fmt"
	"strings"
	"sync"
)

// Standard selects a romanization system.
type Standard int

const (
	StandardA Standard = iota // DSTU 9112:2021 System A
	StandardB                 // DSTU 9112:2021 System B
	StandardK                 // KMU Resolution 55/2010

	numStandards = 3
)

var standardInfo = [numStandards]struct {
	letter string
	tag    string
	column string
	title  string
}{
	StandardA: {"A", "uk-Latn-A", "name-dstua", "DSTU 9112:2021 System A"},
	StandardB: {"B", "uk-Latn-B", "name-dstub", "DSTU 9112:2021 System B"},
	StandardK: {"K", "uk-Latn-K", "name-kmu", "KMU 55:2010"},
}

// Standards returns every supported standard in A, B, K order.
func Standards() []Standard {
	return []Standard{StandardA, StandardB, StandardK}
}

func (s Standard) valid() bool {
	return s >= 0 && s < numStandards
}

// String returns the single-letter name: "A", "B" or "K".
func (s Standard) String() string {
	if !s.valid() {
		return fmt.Sprintf("Standard(%d)", int(s))
	}
	return standardInfo[s].letter
}

// Tag returns the BCP 47 style tag, e.g. "uk-Latn-K".
func (s Standard) Tag() string {
	if !s.valid() {
		return ""
	}
	return standardInfo[s].tag
}

// Column returns the CSV column the standard populates, e.g. "name-kmu".
func (s Standard) Column() string {
	if !s.valid() {
		return ""
	}
	return standardInfo[s].column
}

// Title returns the human readable name of the standard.
func (s Standard) Title() string {
	if !s.valid() {
		return ""
	}
	return standardInfo[s].title
}

// ParseStandard accepts a letter ("a"), a tag ("uk-Latn-A") or a column
// name ("name-dstua"), case-insensitively.
func ParseStandard(v string) (Standard, error) {
	v = strings.TrimSpace(v)
	for _, s := range Standards() {
		info := standardInfo[s]
		if strings.EqualFold(v, info.letter) || strings.EqualFold(v, info.tag) || strings.EqualFold(v, info.column) {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown standard %q", v)
}

// Transducer maps a name to its romanized form under one standard.
type Transducer func(string) string

// Names holds one romanization per standard.
type Names struct {
	A string `json:"uk-Latn-A"`
	B string `json:"uk-Latn-B"`
	K string `json:"uk-Latn-K"`
}

// Get returns the name for s.
func (n Names) Get(s Standard) string {
	switch s {
	case StandardA:
		return n.A
	case StandardB:
		return n.B
	case StandardK:
		return n.K
	default:
		return ""
	}
}

// Registry holds one compiled matcher per standard. It is read-only after
// construction and safe for concurrent use.
type Registry struct {
	matchers [numStandards]*Matcher
}

// NewRegistry compiles the three standard tables.
func NewRegistry() (*Registry, error) {
	tables := [numStandards]Table{
		StandardA: TableA(),
		StandardB: TableB(),
		StandardK: TableK(),
	}

	r := &Registry{}
	for s, t := range tables {
		m, err := Compile(t)
		if err != nil {
			return nil, fmt.Errorf("compile %s: %w", Standard(s), err)
		}
		r.matchers[s] = m
	}
	return r, nil
}

var defaultRegistry = sync.OnceValues(NewRegistry)

// Default returns the process-wide registry, compiling it on first use.
// It panics if a built-in table fails to compile.
func Default() *Registry {
	r, err := defaultRegistry()
	if err != nil {
		panic(err)
	}
	return r
}

// Matcher returns the compiled matcher for s.
func (r *Registry) Matcher(s Standard) *Matcher {
	if !s.valid() {
		return nil
	}
	return r.matchers[s]
}

// Transducer returns the transliteration function for s.
func (r *Registry) Transducer(s Standard) Transducer {
	return func(name string) string {
		return r.Transliterate(s, name)
	}
}

// Transliterate romanizes name under s. Unknown standards return name unchanged.
func (r *Registry) Transliterate(s Standard, name string) string {
	m := r.Matcher(s)
	if m == nil {
		return name
	}
	return m.Transliterate(name)
}

// All romanizes name under every standard.
func (r *Registry) All(name string) Names {
	return Names{
		A: r.matchers[StandardA].Transliterate(name),
		B: r.matchers[StandardB].Transliterate(name),
		K: r.matchers[StandardK].Transliterate(name),
	}
}
