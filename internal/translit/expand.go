package translit

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CaseProfile is a casing applied in lockstep to a key and its outputs.
type CaseProfile int

const (
	// Lower keeps the authored key and outputs as they are.
	Lower CaseProfile = iota
	// Upper upper-cases the key and title-cases the outputs.
	Upper
	// Capitalized title-cases both key and outputs (multi-letter keys only).
	Capitalized
	// FinalCapitalized lower-cases everything but the last rune (multi-letter keys only).
	FinalCapitalized
)

func (p CaseProfile) String() string {
	switch p {
	case Lower:
		return "lower"
	case Upper:
		return "upper"
	case Capitalized:
		return "capitalized"
	case FinalCapitalized:
		return "final-capitalized"
	default:
		return "unknown"
	}
}

// Variant is one case-sensitive entry derived from an authored rule.
type Variant struct {
	Base    string // authored key the variant was derived from
	Key     string
	Rule    Rule
	Profile CaseProfile
}

// Expand derives the case variants of an authored entry. The lower profile
// comes first and is the entry itself. Single-letter keys yield lower and
// upper; longer keys also yield capitalized and final-capitalized. Profiles
// that produce an already derived key (e.g. for keys without cased letters)
// are dropped.
func Expand(key string, rule Rule) []Variant {
	variants := []Variant{{Base: key, Key: key, Rule: rule, Profile: Lower}}
	add := func(p CaseProfile, k string, f func(string) string) {
		for _, v := range variants {
			if v.Key == k {
				return
			}
		}
		variants = append(variants, Variant{Base: key, Key: k, Rule: rule.mapOutputs(f), Profile: p})
	}

	add(Upper, upperString(key), titleString)
	if utf8.RuneCountInString(key) > 1 {
		add(Capitalized, titleString(key), titleString)
		add(FinalCapitalized, finalCapitalized(key), finalCapitalized)
	}
	return variants
}

func upperString(s string) string {
	return cases.Upper(language.Ukrainian).String(s)
}

func lowerString(s string) string {
	return cases.Lower(language.Ukrainian).String(s)
}

// titleString upper-cases every letter that follows a non-letter and
// lower-cases the rest: "shch" -> "Shch", "j'a" -> "J'A".
func titleString(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				r = unicode.ToLower(r)
			} else {
				r = unicode.ToTitle(r)
			}
			prevLetter = true
		} else {
			prevLetter = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// finalCapitalized lower-cases s and upper-cases its last rune: "зг" -> "зГ".
func finalCapitalized(s string) string {
	s = lowerString(s)
	r, size := utf8.DecodeLastRuneInString(s)
	if size == 0 {
		return s
	}
	return s[:len(s)-size] + string(unicode.ToUpper(r))
}
