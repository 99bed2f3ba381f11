// Package extract turns noisy bill/receipt OCR text into best-effort expense
// fields: amount, date, category, description and a short preview.
//
// Every field is optional. Nothing here returns an error; an undetected field
// is simply left nil or empty for a human to fill in.
package extract

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	maxDescriptionLen = 120
	previewLineCount  = 6
)

var descriptionSkipRE = regexp.MustCompile(`(?i)(invoice|receipt|total|amount|grand|balance|tax|date|time|bill)`)

// Result is the outcome of one extraction. Nil pointers mean "not detected".
type Result struct {
	Amount        *float64   `json:"amount"`
	AmountSource  string     `json:"amount_source,omitempty"`
	Date          *time.Time `json:"date"`
	DateAmbiguous bool       `json:"date_ambiguous"`
	Category      *Category  `json:"category"`
	Description   string     `json:"description"`
	Preview       string     `json:"preview"`
}

// Extract runs every sub-extractor over text. It is pure and safe for concurrent use.
func Extract(text string) Result {
	var res Result
	if text == "" {
		return res
	}

	if v, src, ok := extractAmount(text); ok {
		res.Amount = &v
		res.AmountSource = src
	}
	if t, ambiguous, ok := extractDate(text); ok {
		res.Date = &t
		res.DateAmbiguous = ambiguous
	}
	if c, ok := detectCategory(strings.ToLower(text)); ok {
		res.Category = &c
	}

	lines := nonEmptyLines(text)
	res.Description = truncateRunes(pickDescription(lines), maxDescriptionLen)
	if len(lines) > previewLineCount {
		lines = lines[:previewLineCount]
	}
	res.Preview = strings.Join(lines, "\n")
	return res
}

// Fields lists the detected field names in form order.
func (r Result) Fields() []string {
	var out []string
	if r.Description != "" {
		out = append(out, "description")
	}
	if r.Amount != nil {
		out = append(out, "amount")
	}
	if r.Date != nil {
		out = append(out, "date")
	}
	if r.Category != nil {
		out = append(out, "category")
	}
	return out
}

// Empty reports whether nothing usable was extracted.
func (r Result) Empty() bool {
	return len(r.Fields()) == 0
}

// pickDescription prefers the first line that is not a header/total label.
func pickDescription(lines []string) string {
	for _, line := range lines {
		if utf8.RuneCountInString(line) > 3 && !descriptionSkipRE.MatchString(line) {
			return line
		}
	}
	if len(lines) > 0 {
		return lines[0]
	}
	return ""
}

func nonEmptyLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
