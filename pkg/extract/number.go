package extract

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// leadingNumberRE accepts the longest numeric prefix, so "1.2.3" reads as 1.2.
var leadingNumberRE = regexp.MustCompile(`^-?(?:\d+(?:\.\d*)?|\.\d+)`)

// NormalizeNumber parses a numeric run whose comma/dot roles are unknown.
// When both separators appear, the later one is the decimal point. With commas
// only, a final two-character group marks a decimal comma; otherwise commas
// group thousands. It reports false when no number can be read.
func NormalizeNumber(input string) (float64, bool) {
	numeric := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == ',' || r == '.' || r == '-' {
			return r
		}
		return -1
	}, input)
	if numeric == "" {
		return 0, false
	}

	lastComma := strings.LastIndex(numeric, ",")
	lastDot := strings.LastIndex(numeric, ".")
	normalized := numeric
	switch {
	case lastComma > -1 && lastDot > -1:
		if lastComma > lastDot {
			intPart := strings.NewReplacer(".", "", ",", "").Replace(numeric[:lastComma])
			normalized = intPart + "." + numeric[lastComma+1:]
		} else {
			normalized = strings.ReplaceAll(numeric, ",", "")
		}
	case lastComma > -1:
		parts := strings.Split(numeric, ",")
		last := parts[len(parts)-1]
		if len(last) == 2 {
			normalized = strings.Join(parts[:len(parts)-1], "") + "." + last
		} else {
			normalized = strings.ReplaceAll(numeric, ",", "")
		}
	}

	lead := leadingNumberRE.FindString(normalized)
	if lead == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(lead, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
