// Package ocr turns bill photos into raw text with Tesseract (via gosseract)
// after light image cleanup. It knows nothing about amounts or dates; see
// package extract for that.
package ocr

import (
	"bytes"
	"fmt"
	"log"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/otiai10/gosseract/v2"
)

// TextRecognizer reads the text printed on an image file.
type TextRecognizer interface {
	RecognizeFile(path string) (string, error)
}

// Config tunes the engine and the preprocessing applied before it.
type Config struct {
	Languages      []string // tesseract language codes, e.g. "eng", "hin"
	TessdataPrefix string   // directory holding *.traineddata; empty uses the system default
	Threshold      uint8    // global binarization level; 0 disables it
	Adaptive       bool     // mean adaptive threshold instead of the global one
	MinHeight      int      // shorter images are upscaled first; 0 disables it
	Verbose        bool
}

func DefaultConfig() Config {
	return Config{
		Languages: []string{"eng"},
		Threshold: 210,
		MinHeight: 900,
	}
}

// Recognizer is safe for concurrent use; each call gets its own Tesseract client.
type Recognizer struct {
	cfg Config
}

func New(cfg Config) *Recognizer {
	if len(cfg.Languages) == 0 {
		cfg.Languages = []string{"eng"}
	}
	return &Recognizer{cfg: cfg}
}

// RecognizeFile runs the cleaned-up image through Tesseract, then falls back to
// the untouched original with sparse-text segmentation. It returns ErrNoText
// when neither pass reads anything.
func (r *Recognizer) RecognizeFile(path string) (string, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return "", fmt.Errorf("open image: %w", err)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, prepare(img, r.cfg), imaging.PNG); err != nil {
		return "", fmt.Errorf("encode prepared image: %w", err)
	}

	text, err := r.recognize(func(c *gosseract.Client) error {
		return c.SetImageFromBytes(buf.Bytes())
	}, gosseract.PSM_AUTO)
	if err != nil {
		return "", err
	}
	if text != "" {
		r.logV("OCR prepared pass %s: %q", path, snippet(text, 140))
		return text, nil
	}

	text, err = r.recognize(func(c *gosseract.Client) error {
		return c.SetImage(path)
	}, gosseract.PSM_SPARSE_TEXT)
	if err != nil {
		return "", err
	}
	if text == "" {
		r.logV("OCR no text in %s", path)
		return "", ErrNoText
	}
	r.logV("OCR original pass %s: %q", path, snippet(text, 140))
	return text, nil
}

func (r *Recognizer) recognize(load func(*gosseract.Client) error, mode gosseract.PageSegMode) (string, error) {
	client := gosseract.NewClient()
	defer client.Close()

	if r.cfg.TessdataPrefix != "" {
		if err := client.SetTessdataPrefix(r.cfg.TessdataPrefix); err != nil {
			return "", fmt.Errorf("tessdata prefix: %w", err)
		}
	}
	if err := client.SetLanguage(r.cfg.Languages...); err != nil {
		return "", fmt.Errorf("set language %s: %w", strings.Join(r.cfg.Languages, "+"), err)
	}
	if err := client.SetPageSegMode(mode); err != nil {
		return "", fmt.Errorf("set page seg mode: %w", err)
	}
	if err := load(client); err != nil {
		return "", fmt.Errorf("load image: %w", err)
	}
	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("tesseract: %w", err)
	}
	return cleanText(text), nil
}

func (r *Recognizer) logV(format string, args ...any) {
	if r.cfg.Verbose {
		log.Printf(format, args...)
	}
}
