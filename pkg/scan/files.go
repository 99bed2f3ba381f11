package scan

import (
	"path/filepath"
	"strings"
)

// ImageExtensions are the bill photo formats accepted for scanning.
var ImageExtensions = []string{".png", ".jpg", ".jpeg", ".gif", ".webp", ".tif", ".tiff"}

// IsImage reports whether name has a supported image extension. Files with
// ".ocr." in the name are intermediate artifacts and never scanned.
func IsImage(name string) bool {
	lower := strings.ToLower(filepath.Base(name))
	if strings.Contains(lower, ".ocr.") {
		return false
	}
	ext := filepath.Ext(lower)
	for _, e := range ImageExtensions {
		if ext == e {
			return true
		}
	}
	return false
}
