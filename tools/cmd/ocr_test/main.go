package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"farmbook/pkg/ocr"
	"farmbook/pkg/scan"
)

func main() {
	adaptive := flag.Bool("adaptive", false, "adaptive threshold instead of global binarization")
	langs := flag.String("lang", "eng", "tesseract languages joined by +")
	flag.Parse()
	p := "bills/sample.jpg"
	if flag.NArg() > 0 {
		p = flag.Arg(0)
	}

	cfg := ocr.DefaultConfig()
	cfg.Adaptive = *adaptive
	cfg.Languages = strings.Split(*langs, "+")
	cfg.TessdataPrefix = os.Getenv("TESSDATA_PREFIX")
	cfg.Verbose = true
	rec := ocr.New(cfg)

	text, err := rec.RecognizeFile(p)
	fmt.Printf("RecognizeFile err=%v\n", err)
	fmt.Printf("--- text ---\n%s\n------------\n", text)

	out := scan.New(rec).ScanText(text, p)
	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		log.Fatalf("marshal: %v", err)
	}
	fmt.Println(string(b))
}
