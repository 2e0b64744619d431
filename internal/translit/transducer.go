package translit

import "strings"

// matchFunc tries one rule class at position i of src. It returns the
// output and the number of runes consumed, or n == 0 when it does not apply.
type matchFunc func(m *Matcher, src []rune, i int) (out string, n int)

// priority lists the rule classes in the order they are tried.
var priority = [...]matchFunc{
	matchWordStart,
	matchMulti,
	matchAfterConsonant,
	matchSingle,
}

// Transliterate rewrites s under the compiled table. Runes no rule covers
// are copied unchanged, so the result is defined for any input.
func (m *Matcher) Transliterate(s string) string {
	if s == "" {
		return ""
	}

	src := []rune(s)
	var b strings.Builder
	b.Grow(len(s) + len(s)/2)

	for i := 0; i < len(src); {
		n := 0
		for _, match := range priority {
			var out string
			if out, n = match(m, src, i); n > 0 {
				b.WriteString(out)
				break
			}
		}
		if n == 0 {
			b.WriteRune(src[i])
			n = 1
		}
		i += n
	}

	return b.String()
}

// matchWordStart fires when the rune has a word-start override and the
// previous rune is neither a letter nor an apostrophe. The previous rune is
// only inspected, never consumed.
func matchWordStart(m *Matcher, src []rune, i int) (string, int) {
	out, ok := m.wordStart[src[i]]
	if !ok {
		return "", 0
	}
	if i > 0 {
		prev := src[i-1]
		if m.letters[prev] || m.apostrophes[prev] {
			return "", 0
		}
	}
	return out, 1
}

func matchMulti(m *Matcher, src []rune, i int) (string, int) {
	rest := src[i:]
	for _, e := range m.multi {
		if hasPrefix(rest, e.key) {
			return e.out, len(e.key)
		}
	}
	return "", 0
}

// matchAfterConsonant consumes a consonant and the following rune; the
// consonant keeps its own default output.
func matchAfterConsonant(m *Matcher, src []rune, i int) (string, int) {
	if i+1 >= len(src) || !m.consonants[src[i]] {
		return "", 0
	}
	cons, ok := m.afterCons[src[i+1]]
	if !ok {
		return "", 0
	}
	return m.single[src[i]] + cons, 2
}

func matchSingle(m *Matcher, src []rune, i int) (string, int) {
	out, ok := m.single[src[i]]
	if !ok {
		return "", 0
	}
	return out, 1
}

func hasPrefix(s, prefix []rune) bool {
	if len(prefix) > len(s) {
		return false
	}
	for i, r := range prefix {
		if s[i] != r {
			return false
		}
	}
	return true
}
