package ocr

import (
	"strings"
	"unicode/utf8"
)

// snippet shortens s to at most max runes for log lines.
func snippet(s string, max int) string {
	s = strings.ReplaceAll(s, "\n", " | ")
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max]) + "…"
}

// cleanText collapses runs of blanks inside each line and drops empty lines.
// Line breaks are kept: the extractor reads descriptions line by line.
func cleanText(t string) string {
	t = strings.ReplaceAll(t, "\r\n", "\n")
	var lines []string
	for _, line := range strings.Split(t, "\n") {
		line = strings.Join(strings.Fields(line), " ")
		if line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}
