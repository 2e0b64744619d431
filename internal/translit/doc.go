// Package translit romanizes Ukrainian Cyrillic place names.
//
// Three official systems are supported, each built from its own authored
// rule table:
//
//   - [StandardA]: DSTU 9112:2021 System A (diacritics, e.g. "Kyïv")
//   - [StandardB]: DSTU 9112:2021 System B (ASCII digraphs, e.g. "Kharkiv")
//   - [StandardK]: Cabinet of Ministers Resolution 55/2010 (e.g. "Yeva")
//
// # Rule Tables
//
// A [Table] maps lowercase graphemes (one or more letters, or the apostrophe)
// to a [Rule]. A rule is either direct, with one output used everywhere, or
// contextual, with optional overrides at the start of a word and after a
// consonant plus a mandatory default:
//
//	rules["є"] = translit.Contextual("ie").AtStart("ye")
//	rules["ь"] = translit.Contextual("ĵ").AfterConsonant("j")
//
// # Compilation
//
// [Compile] expands every entry into its case variants (lower and upper for
// single letters; additionally capitalized and final-capitalized for
// multi-letter graphemes), registers apostrophe aliases, validates the
// result and partitions it into four priority classes. Configuration
// mistakes are reported as a [*ConfigError] naming the offending key.
//
// # Matching
//
// [Matcher.Transliterate] scans the input once, left to right. At each
// position the first applicable class wins:
//
//  1. word-start override (position 0, or previous rune is not a letter or apostrophe)
//  2. longest multi-letter grapheme
//  3. consonant followed by a key with an after-consonant override
//  4. single-letter default
//  5. the rune is copied unchanged
//
// A compiled [Matcher] is immutable and safe for concurrent use. [Default]
// returns the process-wide [Registry] holding all three standards.
package translit
