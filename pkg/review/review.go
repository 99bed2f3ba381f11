// Package review collects scan outcomes and writes them to an XLSX workbook
// that a person works through before recording any expense.
package review

import (
	"fmt"
	"io"
	"os"
	"sort"
	"sync"

	"github.com/xuri/excelize/v2"

	"farmbook/pkg/scan"
)

const sheet = "Bill Scans"

var headers = []string{
	"File",
	"Status",
	"Amount",
	"Date",
	"Date Ambiguous",
	"Category",
	"Description",
	"Message",
}

// Collector accumulates outcomes from concurrent workers.
type Collector struct {
	mu       sync.Mutex
	outcomes []scan.Outcome
}

func (c *Collector) Add(o scan.Outcome) {
	c.mu.Lock()
	c.outcomes = append(c.outcomes, o)
	c.mu.Unlock()
}

func (c *Collector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.outcomes)
}

// Snapshot returns a copy of the collected outcomes.
func (c *Collector) Snapshot() []scan.Outcome {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]scan.Outcome, len(c.outcomes))
	copy(out, c.outcomes)
	return out
}

// WriteWorkbook writes one row per outcome, ordered by file name.
func WriteWorkbook(w io.Writer, outcomes []scan.Outcome) error {
	rows := make([]scan.Outcome, len(outcomes))
	copy(rows, outcomes)
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].FileName < rows[j].FileName })

	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return fmt.Errorf("header %s: %w", h, err)
		}
	}

	for i, o := range rows {
		row := i + 2
		s := o.Suggestion
		values := []any{o.FileName, string(o.Status), "", s.Date, "", string(s.Category), s.Description, o.Message}
		if o.Result.Amount != nil {
			values[2] = *o.Result.Amount
		}
		if s.DateAmbiguous {
			values[4] = "yes"
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("row %d: %w", row, err)
			}
		}
	}

	_ = f.SetColWidth(sheet, "A", "A", 32)
	_ = f.SetColWidth(sheet, "B", "B", 12)
	_ = f.SetColWidth(sheet, "C", "E", 14)
	_ = f.SetColWidth(sheet, "F", "F", 16)
	_ = f.SetColWidth(sheet, "G", "G", 48)
	_ = f.SetColWidth(sheet, "H", "H", 60)

	if err := f.Write(w); err != nil {
		return fmt.Errorf("xlsx write: %w", err)
	}
	return nil
}

// SaveWorkbook writes the workbook to path, replacing any previous file.
func SaveWorkbook(path string, outcomes []scan.Outcome) error {
	tmp := path + ".tmp"
	fh, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("create %s: %w", tmp, err)
	}
	if err := WriteWorkbook(fh, outcomes); err != nil {
		fh.Close()
		os.Remove(tmp)
		return err
	}
	if err := fh.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("close %s: %w", tmp, err)
	}
	return os.Rename(tmp, path)
}
