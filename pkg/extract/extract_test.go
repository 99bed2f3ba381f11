package extract

import (
	"reflect"
	"strings"
	"testing"
)

const agroBill = `GREEN FIELDS AGRO STORE
Invoice No: 4411
Date: 15/03/2024
Urea Fertilizer 50kg   1,100.00
Neem spray 1L            150.00
Total: Rs. 1,250.00`

func TestExtractBill(t *testing.T) {
	res := Extract(agroBill)

	if res.Amount == nil || *res.Amount != 1250 {
		t.Fatalf("amount: got %v want 1250", res.Amount)
	}
	if res.Date == nil || res.Date.Format(isoDate) != "2024-03-15" {
		t.Fatalf("date: got %v want 2024-03-15", res.Date)
	}
	if res.DateAmbiguous {
		t.Fatalf("15/03 cannot be read month-first, must not be ambiguous")
	}
	if res.Category == nil || *res.Category != Fertilizers {
		t.Fatalf("category: got %v want fertilizers", res.Category)
	}
	if res.Description != "GREEN FIELDS AGRO STORE" {
		t.Fatalf("description: got %q", res.Description)
	}
	if got := strings.Count(res.Preview, "\n"); got != 5 {
		t.Fatalf("preview should hold 6 lines, got %d newlines: %q", got, res.Preview)
	}
	if !strings.HasSuffix(res.Preview, "Total: Rs. 1,250.00") {
		t.Fatalf("preview lines must be trimmed: %q", res.Preview)
	}
}

func TestExtractEmpty(t *testing.T) {
	for _, text := range []string{"", "   \n\t\n"} {
		res := Extract(text)
		if res.Amount != nil || res.Date != nil || res.Category != nil {
			t.Fatalf("Extract(%q) expected no fields, got %+v", text, res)
		}
		if res.Description != "" || res.Preview != "" {
			t.Fatalf("Extract(%q) expected empty description/preview, got %+v", text, res)
		}
		if !res.Empty() {
			t.Fatalf("Extract(%q) should be empty", text)
		}
	}
}

func TestExtractDescriptionFallbacks(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"skips header words", "TAX INVOICE\nBill No 12\nKrishna Seeds Depot\nTotal 400", "Krishna Seeds Depot"},
		{"all lines excluded uses first", "TOTAL 500\nTax 20", "TOTAL 500"},
		{"short lines skipped", "abc\nReceipt", "abc"},
		{"case insensitive skip", "grand TOTAL 90\nsprayer hire", "sprayer hire"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Extract(tc.text).Description; got != tc.want {
				t.Fatalf("description = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestExtractTruncatesDescription(t *testing.T) {
	long := strings.Repeat("é", 200)
	res := Extract(long)
	if n := len([]rune(res.Description)); n != 120 {
		t.Fatalf("description runes = %d, want 120", n)
	}
}

func TestExtractPreviewLimit(t *testing.T) {
	text := "l1\n\nl2\nl3\r\nl4\nl5\nl6\nl7\nl8"
	res := Extract(text)
	if res.Preview != "l1\nl2\nl3\nl4\nl5\nl6" {
		t.Fatalf("preview = %q", res.Preview)
	}
}

func TestExtractAmbiguousDate(t *testing.T) {
	res := Extract("Paddy seed\n03/04/2024\n600")
	if res.Date == nil || res.Date.Format(isoDate) != "2024-03-04" {
		t.Fatalf("date = %v, want month-first 2024-03-04", res.Date)
	}
	if !res.DateAmbiguous {
		t.Fatalf("03/04 must be flagged ambiguous")
	}
}

func TestExtractIsDeterministic(t *testing.T) {
	a := Extract(agroBill)
	b := Extract(agroBill)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("repeated extraction differs:\n%+v\n%+v", a, b)
	}
}

func TestExtractNeverPanics(t *testing.T) {
	inputs := []string{
		"\xff\xfe\xfd 12,34",
		"Total:::---...,,,",
		"₹₹₹$$$ Rs Rs.",
		"99/99/9999 0000-00-00 00 Xyz 00",
		strings.Repeat("1,", 500),
		"\x00\x01 total 5",
	}
	for _, in := range inputs {
		_ = Extract(in)
	}
}

func TestResultFields(t *testing.T) {
	res := Extract("Diesel 40 litres\nTotal 3,200.00\n2024-06-01")
	want := []string{"description", "amount", "date", "category"}
	if !reflect.DeepEqual(res.Fields(), want) {
		t.Fatalf("fields = %v, want %v", res.Fields(), want)
	}
	if *res.Category != Fuel || *res.Amount != 3200 {
		t.Fatalf("unexpected result %+v", res)
	}
}
