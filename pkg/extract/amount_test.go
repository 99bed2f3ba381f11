package extract

import "testing"

func TestExtractAmount(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		want   float64
		source string
	}{
		{"rupee label beats line items", "Seeds 300.00\nTotal: Rs. 1,250.00", 1250, "rs"},
		{"grand total european", "Grand Total: 1.234,50\nItem 99,00", 1234.5, "labeled-total"},
		{"amount due with dash", "Amount due - 99.99\nDeposit 150.00", 99.99, "labeled-total"},
		{"balance due", "Balance Due 420\nPaid 1000", 420, "labeled-total"},
		{"rupee sign", "Paid ₹ 560\nRef 9999", 560, "rupee-sign"},
		{"dollar sign", "Card $12.50\nStore 77", 12.5, "dollar-sign"},
		{"max number fallback", "Seeds 300\nFertilizer 450\nLabor 120", 450, maxNumberSource},
		{"unparsable label falls back", "Total: N/A\nItems 20 and 35", 35, maxNumberSource},
		{"zero total skipped", "Total 0.00\nSeeds 40", 40, maxNumberSource},
		{"rs inside a word is ignored", "Fertilizers 450\nSeeds 900", 900, maxNumberSource},
		{"workers is not a rupee label", "Workers 200\nSeeds 900", 900, maxNumberSource},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, src, ok := extractAmount(tc.text)
			if !ok {
				t.Fatalf("no amount found in %q", tc.text)
			}
			if got != tc.want || src != tc.source {
				t.Fatalf("extractAmount = %v (%s), want %v (%s)", got, src, tc.want, tc.source)
			}
		})
	}
}

func TestExtractAmountNone(t *testing.T) {
	for _, text := range []string{"", "no numbers here", "Total: -", "0.00"} {
		if v, src, ok := extractAmount(text); ok {
			t.Fatalf("extractAmount(%q) = %v (%s), want none", text, v, src)
		}
	}
}
