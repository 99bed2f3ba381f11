// Command bill_import scans a folder of bill photos, extracts suggested
// expense fields and writes them for review as JSON lines and an XLSX
// workbook. Nothing is recorded as an expense; a person confirms each row.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"

	"farmbook/pkg/ocr"
	"farmbook/pkg/review"
	"farmbook/pkg/scan"
)

const debounce = 300 * time.Millisecond

var verbose bool

type importer struct {
	dir     string
	scanner *scan.Scanner
	results review.Collector
	move    bool

	mu   sync.Mutex
	out  io.Writer // JSON lines, may be nil
	seen map[string]bool
}

func main() {
	dirFlag := flag.String("dir", "bills", "directory to scan for bill images")
	outFlag := flag.String("out", "", "append one JSON outcome per line to this file")
	xlsxFlag := flag.String("xlsx", "bill_review.xlsx", "review workbook to write after the run (empty disables)")
	workers := flag.Int("workers", 0, "Worker pool size (default NumCPU)")
	watch := flag.Bool("watch", false, "Watch directory for new files")
	move := flag.Bool("move", false, "Move scanned bills into <dir>/processed")
	dryRun := flag.Bool("dry-run", false, "List candidate files only")
	adaptive := flag.Bool("adaptive", false, "Use adaptive thresholding for uneven lighting")
	flag.BoolVar(&verbose, "verbose", false, "Verbose per-file logging")
	flag.Parse()

	files := listImageFiles(*dirFlag)
	if *dryRun {
		log.Printf("Dry-run: %d candidate files in %s", len(files), *dirFlag)
		for _, f := range files {
			fmt.Println(f)
		}
		return
	}

	ocrCfg := ocr.DefaultConfig()
	ocrCfg.Adaptive = *adaptive
	ocrCfg.Verbose = verbose
	if langs := os.Getenv("OCR_LANGS"); langs != "" {
		ocrCfg.Languages = strings.Split(langs, "+")
	}
	ocrCfg.TessdataPrefix = os.Getenv("TESSDATA_PREFIX")
	im := newImporter(*dirFlag, scan.New(ocr.New(ocrCfg)), *move)

	if *outFlag != "" {
		f, err := os.OpenFile(*outFlag, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			log.Fatalf("open %s: %v", *outFlag, err)
		}
		defer f.Close()
		im.out = f
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	n := effectiveWorkers(*workers)
	log.Printf("Scanning %d files (workers=%d)", len(files), n)
	im.run(feed(ctx, files), n)

	if *watch && ctx.Err() == nil {
		ch, err := watchDirectory(ctx, *dirFlag)
		if err != nil {
			log.Fatalf("watch failed: %v", err)
		}
		im.run(ch, n)
	}

	summarize(im.results.Snapshot())
	if *xlsxFlag != "" {
		if err := review.SaveWorkbook(*xlsxFlag, im.results.Snapshot()); err != nil {
			log.Fatalf("save workbook: %v", err)
		}
		log.Printf("Review workbook written to %s", *xlsxFlag)
	}
}

func newImporter(dir string, sc *scan.Scanner, move bool) *importer {
	return &importer{dir: dir, scanner: sc, move: move, seen: map[string]bool{}}
}

func effectiveWorkers(w int) int {
	if w <= 0 {
		return runtime.NumCPU()
	}
	return w
}

func logV(format string, args ...any) {
	if verbose {
		log.Printf(format, args...)
	}
}

func listImageFiles(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		log.Printf("read dir %s: %v", dir, err)
		return nil
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() || !scan.IsImage(e.Name()) {
			continue
		}
		out = append(out, e.Name())
	}
	sort.Strings(out)
	return out
}

// feed sends names until done or ctx is cancelled, then closes the channel.
func feed(ctx context.Context, names []string) <-chan string {
	ch := make(chan string)
	go func() {
		defer close(ch)
		for _, n := range names {
			select {
			case ch <- n:
			case <-ctx.Done():
				return
			}
		}
	}()
	return ch
}

// run drains names with a pool of workers and returns when the channel closes.
func (im *importer) run(names <-chan string, workers int) {
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for name := range names {
				im.processFile(name)
			}
		}()
	}
	wg.Wait()
}

// watchDirectory emits newly created images once they have been quiet for the
// debounce window. The channel closes when ctx is cancelled.
func watchDirectory(ctx context.Context, dir string) (<-chan string, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(dir); err != nil {
		w.Close()
		return nil, err
	}
	log.Printf("Watching %s (debounced, Ctrl+C to stop) ...", dir)

	ch := make(chan string, 256)
	go func() {
		defer close(ch)
		defer w.Close()
		pending := map[string]time.Time{}
		ticker := time.NewTicker(debounce / 2)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if ev.Has(fsnotify.Create) || ev.Has(fsnotify.Write) {
					name := filepath.Base(ev.Name)
					if scan.IsImage(name) {
						pending[name] = time.Now()
					}
				}
			case now := <-ticker.C:
				for name, t := range pending {
					if now.Sub(t) >= debounce {
						delete(pending, name)
						select {
						case ch <- name:
						case <-ctx.Done():
							return
						}
					}
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				log.Printf("watch error: %v", err)
			}
		}
	}()
	return ch, nil
}

// processFile scans one bill once per run and records its outcome.
func (im *importer) processFile(name string) {
	im.mu.Lock()
	if im.seen[name] {
		im.mu.Unlock()
		logV("SKIP already scanned %s", name)
		return
	}
	im.seen[name] = true
	im.mu.Unlock()

	path := filepath.Join(im.dir, name)
	if _, err := os.Stat(path); err != nil {
		logV("SKIP %s: %v", name, err)
		return
	}

	out := im.scanner.ScanFile(path, name)
	im.results.Add(out)
	logV("SCAN %s status=%s fields=%v", name, out.Status, out.Suggestion.Applied)

	if err := im.writeLine(out); err != nil {
		log.Printf("WARN write outcome %s: %v", name, err)
	}

	if im.move && out.Status == scan.StatusOK {
		if err := moveToProcessed(im.dir, name); err != nil {
			log.Printf("WARN failed to move processed file %s: %v", name, err)
		} else {
			logV("moved %s to processed/", name)
		}
	}
}

func (im *importer) writeLine(out scan.Outcome) error {
	if im.out == nil {
		return nil
	}
	b, err := json.Marshal(out)
	if err != nil {
		return err
	}
	im.mu.Lock()
	defer im.mu.Unlock()
	_, err = im.out.Write(append(b, '\n'))
	return err
}

func summarize(outcomes []scan.Outcome) {
	counts := map[scan.Status]int{}
	for _, o := range outcomes {
		counts[o.Status]++
	}
	log.Printf("Done: scanned=%d ok=%d no_text=%d no_fields=%d failed=%d",
		len(outcomes), counts[scan.StatusOK], counts[scan.StatusNoText], counts[scan.StatusNoFields], counts[scan.StatusFailed])
}
