package extract

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Category is an expense classification from a fixed closed set.
type Category string

const (
	Seeds       Category = "seeds"
	Fertilizers Category = "fertilizers"
	Pesticides  Category = "pesticides"
	Fuel        Category = "fuel"
	Labor       Category = "labor"
	Equipment   Category = "equipment"
	Water       Category = "water"
	Other       Category = "other"
)

// declared is the category order. Name matching walks it front to back.
var declared = []Category{Seeds, Fertilizers, Pesticides, Fuel, Labor, Equipment, Water, Other}

// keywordRow associates a category with lowercase substrings hinting at it.
type keywordRow struct {
	category Category
	keywords []string
}

// keywordTable is the keyword fallback, in declared order.
var keywordTable = []keywordRow{
	{Seeds, []string{"seed"}},
	{Fertilizers, []string{"fertilizer", "fertiliser", "manure", "compost"}},
	{Pesticides, []string{"pesticide", "herbicide", "insecticide", "fungicide", "spray"}},
	{Fuel, []string{"fuel", "diesel", "petrol", "gasoline"}},
	{Labor, []string{"labor", "labour", "wage", "worker", "staff"}},
	{Equipment, []string{"equipment", "tractor", "machinery", "implement", "tool", "repair"}},
	{Water, []string{"water", "irrigation", "pump", "sprinkler"}},
	{Other, nil},
}

// labels is filled once; a cases.Caser keeps state and cannot be shared.
var labels = func() map[Category]string {
	caser := cases.Title(language.English)
	m := make(map[Category]string, len(declared))
	for _, c := range declared {
		m[c] = caser.String(string(c))
	}
	return m
}()

// Categories returns the declared category order.
func Categories() []Category {
	return append([]Category(nil), declared...)
}

// Label returns the display label, e.g. "Fertilizers".
func (c Category) Label() string {
	if l, ok := labels[c]; ok {
		return l
	}
	return cases.Title(language.English).String(string(c))
}

// ParseCategory resolves a case-insensitive category name.
func ParseCategory(s string) (Category, bool) {
	norm := strings.ToLower(strings.TrimSpace(s))
	for _, c := range declared {
		if string(c) == norm {
			return c, true
		}
	}
	return "", false
}

// Keywords returns a copy of the keyword list for c (nil when it has none).
func Keywords(c Category) []string {
	for _, row := range keywordTable {
		if row.category == c && len(row.keywords) > 0 {
			return append([]string(nil), row.keywords...)
		}
	}
	return nil
}

// detectCategory checks literal category names first, then the keyword table.
// lower must already be lowercased.
func detectCategory(lower string) (Category, bool) {
	for _, c := range declared {
		if strings.Contains(lower, string(c)) {
			return c, true
		}
	}
	for _, row := range keywordTable {
		for _, kw := range row.keywords {
			if strings.Contains(lower, kw) {
				return row.category, true
			}
		}
	}
	return "", false
}
