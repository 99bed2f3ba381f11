package extract

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	ymdRE     = regexp.MustCompile(`^\d{4}[/-]\d{1,2}[/-]\d{1,2}$`)
	mdyRE     = regexp.MustCompile(`^\d{1,2}[/-]\d{1,2}[/-]\d{2,4}$`)
	dateSepRE = regexp.MustCompile(`[/-]`)
	monthRE   = regexp.MustCompile(`(?i)\b(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\b`)
)

// dateRules are tried in order; the first match that parses wins.
var dateRules = []*regexp.Regexp{
	regexp.MustCompile(`\b\d{4}[/-]\d{1,2}[/-]\d{1,2}\b`),
	regexp.MustCompile(`\b\d{1,2}[/-]\d{1,2}[/-]\d{2,4}\b`),
	regexp.MustCompile(`(?i)\b\d{1,2}\s+(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Sept|Oct|Nov|Dec)[a-z]*\s+\d{2,4}\b`),
}

// genericLayouts back the free-form fallback, e.g. "15 March 2024". Month
// words are reduced to three letters before these are tried.
var genericLayouts = []string{
	"2 Jan 2006",
	"2 Jan 06",
	"Jan 2 2006",
	"Jan 2, 2006",
	"2 Jan, 2006",
	time.RFC3339,
}

// ParseDateString reads a date-like substring. Dots are treated as slashes.
// Y-M-D input is taken as is; M/D/Y input is month-first unless the first
// component cannot be a month. Impossible calendar dates are rejected, never
// clamped. Results are midnight UTC.
func ParseDateString(value string) (time.Time, bool) {
	t, _, ok := parseDate(value)
	return t, ok
}

// parseDate is ParseDateString that also reports whether day and month could
// have been read either way round.
func parseDate(value string) (t time.Time, ambiguous bool, ok bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false, false
	}
	cleaned := strings.ReplaceAll(value, ".", "/")

	if ymdRE.MatchString(cleaned) {
		p := dateSepRE.Split(cleaned, -1)
		y, _ := strconv.Atoi(p[0])
		m, _ := strconv.Atoi(p[1])
		d, _ := strconv.Atoi(p[2])
		t, ok = calendarDate(y, m, d)
		return t, false, ok
	}

	if mdyRE.MatchString(cleaned) {
		p := dateSepRE.Split(cleaned, -1)
		yearStr := p[2]
		switch len(yearStr) {
		case 2:
			yearStr = "20" + yearStr
		case 3:
			return time.Time{}, false, false
		}
		y, _ := strconv.Atoi(yearStr)
		first, _ := strconv.Atoi(p[0])
		second, _ := strconv.Atoi(p[1])

		month, day := first, second
		if first > 12 && second <= 12 {
			month, day = second, first
		} else if first <= 12 && second <= 12 && first != second {
			ambiguous = true
		}
		t, ok = calendarDate(y, month, day)
		return t, ok && ambiguous, ok
	}

	t, ok = parseGenericDate(value)
	return t, false, ok
}

func parseGenericDate(value string) (time.Time, bool) {
	s := strings.Join(strings.Fields(strings.ReplaceAll(value, ".", "")), " ")
	s = monthRE.ReplaceAllStringFunc(s, canonicalMonth)
	for _, layout := range genericLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
		}
	}
	return time.Time{}, false
}

// canonicalMonth shortens any word starting with a month prefix ("Sept",
// "Marc", "DECEMBER") to the form time.Parse expects ("Sep", "Mar", "Dec").
func canonicalMonth(word string) string {
	return strings.ToUpper(word[:1]) + strings.ToLower(word[1:3])
}

// calendarDate builds a UTC date, rejecting values time.Date would normalize.
func calendarDate(y, m, d int) (time.Time, bool) {
	if m < 1 || m > 12 || d < 1 || d > 31 {
		return time.Time{}, false
	}
	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	if t.Year() != y || int(t.Month()) != m || t.Day() != d {
		return time.Time{}, false
	}
	return t, true
}

func extractDate(text string) (t time.Time, ambiguous bool, ok bool) {
	for _, re := range dateRules {
		m := re.FindString(text)
		if m == "" {
			continue
		}
		if t, ambiguous, ok = parseDate(m); ok {
			return t, ambiguous, true
		}
	}
	return time.Time{}, false, false
}
