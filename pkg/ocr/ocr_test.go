package ocr

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
)

// Tesseract must be installed locally; run with OCR_TEST=1.
func requireTesseract(t *testing.T) {
	t.Helper()
	if os.Getenv("OCR_TEST") != "1" {
		t.Skip("set OCR_TEST=1 to run tesseract tests")
	}
}

func TestRecognizeBlankImage(t *testing.T) {
	requireTesseract(t)
	path := filepath.Join(t.TempDir(), "blank.png")
	if err := imaging.Save(imaging.New(400, 200, color.NRGBA{255, 255, 255, 255}), path); err != nil {
		t.Fatalf("save: %v", err)
	}
	_, err := New(DefaultConfig()).RecognizeFile(path)
	if !errors.Is(err, ErrNoText) {
		t.Fatalf("expected ErrNoText got %v", err)
	}
}

func TestRecognizeMissingFile(t *testing.T) {
	_, err := New(DefaultConfig()).RecognizeFile(filepath.Join(t.TempDir(), "nope.png"))
	if err == nil || errors.Is(err, ErrNoText) {
		t.Fatalf("expected open error got %v", err)
	}
}
