package extract

import "regexp"

// amountRule captures a numeric run in group of re.
type amountRule struct {
	name  string
	re    *regexp.Regexp
	group int
}

// amountRules run in precedence order: labeled totals, then currency markers.
// The \b before "rs" is intentional: without it words ending in "rs"
// ("fertilizers 450", "workers 200") read as rupee amounts.
var amountRules = []amountRule{
	{"labeled-total", regexp.MustCompile(`(?i)(grand\s*total|total\s*amount|amount\s*due|balance\s*due|total)\s*[:\-]?\s*([\d.,]+)`), 2},
	{"rs", regexp.MustCompile(`(?i)\brs\.?\s*([\d.,]+)`), 1},
	{"rupee-sign", regexp.MustCompile(`₹\s?([\d.,]+)`), 1},
	{"dollar-sign", regexp.MustCompile(`\$\s?([\d.,]+)`), 1},
}

var bareNumberRE = regexp.MustCompile(`\d+[\d,]*(?:\.\d{2})?`)

// maxNumberSource names the bare-number fallback.
const maxNumberSource = "max-number"

// extractAmount returns the first labeled amount, else the largest bare number,
// along with the name of the rule that produced it.
func extractAmount(text string) (float64, string, bool) {
	for _, rule := range amountRules {
		m := rule.re.FindStringSubmatch(text)
		if len(m) <= rule.group || m[rule.group] == "" {
			continue
		}
		if v, ok := NormalizeNumber(m[rule.group]); ok && v > 0 {
			return v, rule.name, true
		}
	}

	best, found := 0.0, false
	for _, cand := range bareNumberRE.FindAllString(text, -1) {
		v, ok := NormalizeNumber(cand)
		if !ok || v <= 0 {
			continue
		}
		if !found || v > best {
			best, found = v, true
		}
	}
	if !found {
		return 0, "", false
	}
	return best, maxNumberSource, true
}
