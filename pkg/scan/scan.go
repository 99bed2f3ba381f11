// Package scan runs a bill image through OCR and field extraction and reports
// a reviewable outcome. Every call yields an Outcome; failures are statuses.
package scan

import (
	"errors"
	"log"
	"path/filepath"
	"strings"

	"farmbook/pkg/extract"
	"farmbook/pkg/ocr"
)

type Status string

const (
	StatusOK       Status = "ok"
	StatusNoText   Status = "no_text"
	StatusNoFields Status = "no_fields"
	StatusFailed   Status = "failed"
)

const (
	msgNoText   = "We couldn't detect any readable text in this image."
	msgNoFields = "We couldn't extract key values automatically. Please fill the form manually."
	msgFailed   = "Something went wrong while reading the bill. Try a clearer image or re-upload."
)

// Outcome is what a person reviews before anything is recorded.
type Outcome struct {
	FileName   string             `json:"file_name"`
	Text       string             `json:"text,omitempty"`
	Result     extract.Result     `json:"result"`
	Suggestion extract.Suggestion `json:"suggestion"`
	Status     Status             `json:"status"`
	Message    string             `json:"message,omitempty"`
}

type Scanner struct {
	rec ocr.TextRecognizer
}

func New(rec ocr.TextRecognizer) *Scanner {
	return &Scanner{rec: rec}
}

// ScanFile recognizes path and extracts fields from the text. displayName is
// what the person uploaded; when empty the base name of path is used.
func (s *Scanner) ScanFile(path, displayName string) Outcome {
	if displayName == "" {
		displayName = filepath.Base(path)
	}
	text, err := s.rec.RecognizeFile(path)
	switch {
	case errors.Is(err, ocr.ErrNoText):
		return outcomeFor(displayName, "", StatusNoText, msgNoText)
	case err != nil:
		log.Printf("SCAN failed file=%s err=%v", displayName, err)
		return outcomeFor(displayName, "", StatusFailed, msgFailed)
	}
	return s.ScanText(text, displayName)
}

// ScanText extracts fields from already-recognized text.
func (s *Scanner) ScanText(text, displayName string) Outcome {
	if strings.TrimSpace(text) == "" {
		return outcomeFor(displayName, text, StatusNoText, msgNoText)
	}
	res := extract.Extract(text)
	out := Outcome{
		FileName:   displayName,
		Text:       text,
		Result:     res,
		Suggestion: extract.Suggest(res),
		Status:     StatusOK,
	}
	if res.Empty() {
		out.Status, out.Message = StatusNoFields, msgNoFields
	}
	return out
}

func outcomeFor(name, text string, st Status, msg string) Outcome {
	return Outcome{
		FileName:   name,
		Text:       text,
		Suggestion: extract.Suggest(extract.Result{}),
		Status:     st,
		Message:    msg,
	}
}
