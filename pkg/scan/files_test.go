package scan

import "testing"

func TestIsImage(t *testing.T) {
	cases := map[string]bool{
		"bill.jpg":             true,
		"BILL.JPEG":            true,
		"scans/receipt.tiff":   true,
		"photo.webp":           true,
		"notes.txt":            false,
		"bill.ocr.png":         false,
		"archive.jpg.zip":      false,
		"noextension":          false,
		"/tmp/uploads/x-y.gif": true,
	}
	for name, want := range cases {
		if got := IsImage(name); got != want {
			t.Fatalf("IsImage(%q) = %v, want %v", name, got, want)
		}
	}
}
