package translit

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"
)

// Table is the authored rule set of one romanization system.
type Table struct {
	// Name identifies the table in errors, e.g. "uk-Latn-K".
	Name string

	// Rules maps lowercase graphemes to their rule.
	Rules map[string]Rule

	// Letters is the lowercase source alphabet. Runes outside it (and
	// outside the apostrophe glyphs) mark word boundaries.
	Letters string

	// Consonants is the lowercase consonant set used for after-consonant rules.
	Consonants string

	// Aliases maps an alternative glyph to the canonical glyph it spells.
	// Every key containing the canonical glyph is registered once per alias.
	Aliases map[rune]rune
}

// Matcher is a compiled Table. It is immutable and safe for concurrent use.
type Matcher struct {
	name string

	wordStart map[rune]string
	afterCons map[rune]string
	multi     []multiEntry // longest key first
	single    map[rune]string

	consonants  map[rune]bool
	letters     map[rune]bool
	apostrophes map[rune]bool
}

type multiEntry struct {
	key []rune
	out string
}

// Name returns the name of the table the matcher was compiled from.
func (m *Matcher) Name() string {
	return m.name
}

// MustCompile is like Compile but panics on error.
// Use it only for tables that are program constants.
func MustCompile(t Table) *Matcher {
	m, err := Compile(t)
	if err != nil {
		panic(err)
	}
	return m
}

// Compile expands, validates and partitions t.
func Compile(t Table) (*Matcher, error) {
	aliases := aliasGlyphs(t.Aliases)
	for _, canonical := range sortedRunes(aliases) {
		if _, ok := t.Rules[string(canonical)]; !ok {
			return nil, &ConfigError{
				Table:  t.Name,
				Key:    string(aliases[canonical][0]),
				Detail: fmt.Sprintf("no rule for %q", string(canonical)),
				Err:    ErrUnknownAlias,
			}
		}
	}

	entries := make(map[string]Variant)
	var order []string
	register := func(v Variant) error {
		if prev, ok := entries[v.Key]; ok {
			if prev.Base == v.Base {
				return nil
			}
			return &ConfigError{
				Table:  t.Name,
				Key:    v.Key,
				Detail: fmt.Sprintf("derived from both %q and %q", prev.Base, v.Base),
				Err:    ErrKeyCollision,
			}
		}
		entries[v.Key] = v
		order = append(order, v.Key)
		return nil
	}

	keys := make([]string, 0, len(t.Rules))
	for k := range t.Rules {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	for _, key := range keys {
		rule := t.Rules[key]
		if err := validateRule(t.Name, key, rule); err != nil {
			return nil, err
		}

		if glyph, ok := canonicalIn(key, aliases); ok {
			if err := register(Variant{Base: key, Key: key, Rule: rule}); err != nil {
				return nil, err
			}
			for _, alias := range aliases[glyph] {
				v := Variant{Base: key, Key: strings.ReplaceAll(key, string(glyph), string(alias)), Rule: rule}
				if err := register(v); err != nil {
					return nil, err
				}
			}
			continue
		}

		for _, v := range Expand(key, rule) {
			if err := register(v); err != nil {
				return nil, err
			}
		}
	}

	m := &Matcher{
		name:        t.Name,
		wordStart:   make(map[rune]string),
		afterCons:   make(map[rune]string),
		single:      make(map[rune]string),
		consonants:  runeSet(t.Consonants + upperString(t.Consonants)),
		letters:     runeSet(t.Letters + upperString(t.Letters)),
		apostrophes: make(map[rune]bool),
	}
	for canonical, list := range aliases {
		m.apostrophes[canonical] = true
		for _, a := range list {
			m.apostrophes[a] = true
		}
	}

	for _, key := range order {
		v := entries[key]
		runes := []rune(key)
		if len(runes) == 1 {
			r := runes[0]
			m.single[r] = *v.Rule.Other
			if v.Rule.Start != nil {
				m.wordStart[r] = *v.Rule.Start
			}
			if v.Rule.Cons != nil {
				m.afterCons[r] = *v.Rule.Cons
			}
			continue
		}
		m.multi = append(m.multi, multiEntry{key: runes, out: *v.Rule.Other})
	}
	slices.SortStableFunc(m.multi, func(a, b multiEntry) int {
		return cmp.Compare(len(b.key), len(a.key))
	})

	// An after-consonant match emits the consonant through its own default.
	if len(m.afterCons) > 0 {
		for _, c := range sortedRunes(m.consonants) {
			if _, ok := m.single[c]; !ok {
				return nil, &ConfigError{Table: t.Name, Key: string(c), Detail: "consonant", Err: ErrMissingDefault}
			}
		}
	}

	return m, nil
}

func validateRule(table, key string, rule Rule) error {
	if key == "" {
		return &ConfigError{Table: table, Key: key, Err: ErrEmptyKey}
	}
	if rule.Other == nil {
		return &ConfigError{Table: table, Key: key, Err: ErrMissingDefault}
	}
	if (rule.Start != nil || rule.Cons != nil) && utf8.RuneCountInString(key) > 1 {
		return &ConfigError{Table: table, Key: key, Err: ErrContextKeyLength}
	}
	return nil
}

// aliasGlyphs inverts alias -> canonical into canonical -> sorted aliases.
func aliasGlyphs(aliases map[rune]rune) map[rune][]rune {
	out := make(map[rune][]rune)
	for alias, canonical := range aliases {
		out[canonical] = append(out[canonical], alias)
	}
	for _, list := range out {
		slices.Sort(list)
	}
	return out
}

func canonicalIn(key string, aliases map[rune][]rune) (rune, bool) {
	for _, r := range key {
		if _, ok := aliases[r]; ok {
			return r, true
		}
	}
	return 0, false
}

func runeSet(s string) map[rune]bool {
	set := make(map[rune]bool, len(s))
	for _, r := range s {
		set[r] = true
	}
	return set
}

func sortedRunes[V any](m map[rune]V) []rune {
	out := make([]rune, 0, len(m))
	for r := range m {
		out = append(out, r)
	}
	slices.Sort(out)
	return out
}
