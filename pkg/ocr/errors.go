package ocr

import "errors"

// ErrNoText is returned when no pass produced any readable text.
var ErrNoText = errors.New("no readable text detected")
