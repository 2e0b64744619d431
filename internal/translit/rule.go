package translit

// RuleKind distinguishes direct rules from contextual ones.
type RuleKind int

const (
	KindDirect RuleKind = iota
	KindContextual
)

// Rule is the output registered for one grapheme key.
//
// Other is the default output and must be set. Start and Cons are optional
// overrides used at the start of a word and after a consonant; they are only
// meaningful on contextual rules with a single-letter key.
type Rule struct {
	Kind  RuleKind
	Start *string
	Cons  *string
	Other *string
}

// Direct returns a rule that emits out in every position.
func Direct(out string) Rule {
	return Rule{Kind: KindDirect, Other: &out}
}

// Contextual returns a rule with the default output other and no overrides.
func Contextual(other string) Rule {
	return Rule{Kind: KindContextual, Other: &other}
}

// AtStart returns a copy of r that emits out at the start of a word.
func (r Rule) AtStart(out string) Rule {
	r.Kind = KindContextual
	r.Start = &out
	return r
}

// AfterConsonant returns a copy of r that emits out after a consonant.
func (r Rule) AfterConsonant(out string) Rule {
	r.Kind = KindContextual
	r.Cons = &out
	return r
}

// Default returns the default output and whether one is defined.
func (r Rule) Default() (string, bool) {
	if r.Other == nil {
		return "", false
	}
	return *r.Other, true
}

// mapOutputs applies f to every output defined on r.
func (r Rule) mapOutputs(f func(string) string) Rule {
	out := Rule{Kind: r.Kind}
	out.Start = mapPtr(r.Start, f)
	out.Cons = mapPtr(r.Cons, f)
	out.Other = mapPtr(r.Other, f)
	return out
}

func mapPtr(s *string, f func(string) string) *string {
	if s == nil {
		return nil
	}
	v := f(*s)
	return &v
}
