package main

import (
	"encoding/json"
	"flag"
	"io"
	"log"
	"os"

	"farmbook/pkg/extract"
)

// Reads OCR text from -file (or stdin) and prints the extraction and form suggestion.
func main() {
	file := flag.String("file", "", "text file to read (default stdin)")
	flag.Parse()

	var r io.Reader = os.Stdin
	if *file != "" {
		f, err := os.Open(*file)
		if err != nil {
			log.Fatalf("open %s: %v", *file, err)
		}
		defer f.Close()
		r = f
	}
	data, err := io.ReadAll(r)
	if err != nil {
		log.Fatalf("read: %v", err)
	}

	res := extract.Extract(string(data))
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(map[string]any{
		"result":     res,
		"suggestion": extract.Suggest(res),
	}); err != nil {
		log.Fatalf("encode: %v", err)
	}
}
