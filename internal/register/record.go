// Package register models the administrative-code register (KATOTTG) and
// converts its records into the CSV artifact with romanized names.
//
// A record carries one to five hierarchical codes ("UA" followed by 17
// digits), a one-letter category and the official Cyrillic name. The
// conversion step fills in the three romanizations from package translit.
package register

import (
	"fmt"
	"regexp"

	"github.com/JonMunkholm/toponyms/internal/translit"
)

// MaxLevels is the depth of the code hierarchy.
const MaxLevels = 5

var codeRegex = regexp.MustCompile(`^UA\d{17}$`)

// Category is the one-letter record type used by the register.
type Category string

const (
	CategoryOblast      Category = "O" // oblast or the Autonomous Republic of Crimea
	CategorySpecialCity Category = "K" // city with special status
	CategoryRaion       Category = "P" // raion
	CategoryHromada     Category = "H" // territorial hromada
	CategoryCity        Category = "M" // city
	CategorySettlement  Category = "X" // settlement
	CategoryVillage     Category = "C" // village
	CategoryDistrict    Category = "B" // city district
)

var categoryLabels = map[Category]string{
	CategoryOblast:      "Oblast",
	CategorySpecialCity: "City with special status",
	CategoryRaion:       "Raion",
	CategoryHromada:     "Hromada",
	CategoryCity:        "City",
	CategorySettlement:  "Settlement",
	CategoryVillage:     "Village",
	CategoryDistrict:    "City district",
}

// Categories returns every known category in register order.
func Categories() []Category {
	return []Category{
		CategoryOblast, CategorySpecialCity, CategoryRaion, CategoryHromada,
		CategoryCity, CategorySettlement, CategoryVillage, CategoryDistrict,
	}
}

// Label returns the English name of the category.
func (c Category) Label() string {
	if l, ok := categoryLabels[c]; ok {
		return l
	}
	return string(c)
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	_, ok := categoryLabels[c]
	return ok
}

// ParseCategory validates a category letter. A Cyrillic "С" is accepted as
// the Latin "C" it is frequently mistyped for.
func ParseCategory(s string) (Category, error) {
	c := Category(fixCategory(s))
	if !c.Valid() {
		return "", fmt.Errorf("unknown category %q", s)
	}
	return c, nil
}

// Record is one register entry.
type Record struct {
	Codes    []string       `json:"codes"`
	Category Category       `json:"category"`
	Name     string         `json:"name"`
	Latin    translit.Names `json:"latin"`
}

// Level returns the code at the 1-based hierarchy level, or "".
func (r Record) Level(n int) string {
	if n < 1 || n > len(r.Codes) {
		return ""
	}
	return r.Codes[n-1]
}

// Code returns the record's own (deepest) code.
func (r Record) Code() string {
	if len(r.Codes) == 0 {
		return ""
	}
	return r.Codes[len(r.Codes)-1]
}

// Validate checks the code hierarchy, category and name.
func (r Record) Validate() error {
	if len(r.Codes) == 0 || len(r.Codes) > MaxLevels {
		return fmt.Errorf("record %q: %d codes, want 1-%d", r.Name, len(r.Codes), MaxLevels)
	}
	for _, code := range r.Codes {
		if !codeRegex.MatchString(code) {
			return fmt.Errorf("record %q: invalid code %q", r.Name, code)
		}
	}
	if !r.Category.Valid() {
		return fmt.Errorf("record %s: unknown category %q", r.Code(), r.Category)
	}
	if r.Name == "" {
		return fmt.Errorf("record %s: empty name", r.Code())
	}
	return nil
}
