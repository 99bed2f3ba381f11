package review

import (
	"bytes"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"farmbook/pkg/scan"
)

type staticText string

func (s staticText) RecognizeFile(string) (string, error) { return string(s), nil }

func sampleOutcomes() []scan.Outcome {
	sc := scan.New(staticText(""))
	return []scan.Outcome{
		sc.ScanText("Paddy seed 10kg\n03/04/2024\nTotal Rs 600", "z-seed.jpg"),
		sc.ScanText("", "b-blank.jpg"),
		sc.ScanText("Diesel 20L\nTotal 2,000.00\n2024-05-01", "a-diesel.png"),
	}
}

func readRows(t *testing.T, data []byte) [][]string {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(sheet)
	require.NoError(t, err)
	return rows
}

func TestWriteWorkbook(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteWorkbook(&buf, sampleOutcomes()))

	rows := readRows(t, buf.Bytes())
	require.Len(t, rows, 4)
	assert.Equal(t, headers, rows[0])

	assert.Equal(t, "a-diesel.png", rows[1][0])
	assert.Equal(t, "ok", rows[1][1])
	assert.Equal(t, "2000", rows[1][2])
	assert.Equal(t, "2024-05-01", rows[1][3])
	assert.Equal(t, "fuel", rows[1][5])

	assert.Equal(t, "b-blank.jpg", rows[2][0])
	assert.Equal(t, "no_text", rows[2][1])
	assert.Equal(t, "We couldn't detect any readable text in this image.", rows[2][len(rows[2])-1])

	assert.Equal(t, "z-seed.jpg", rows[3][0])
	assert.Equal(t, "2024-03-04", rows[3][3])
	assert.Equal(t, "yes", rows[3][4])
	assert.Equal(t, "seeds", rows[3][5])
}

func TestSaveWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "review.xlsx")
	require.NoError(t, SaveWorkbook(path, sampleOutcomes()))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{sheet}, f.GetSheetList())
}

func TestCollectorConcurrentAdd(t *testing.T) {
	var c Collector
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Add(scan.Outcome{FileName: "x.jpg", Status: scan.StatusOK})
		}()
	}
	wg.Wait()
	assert.Equal(t, 50, c.Len())

	snap := c.Snapshot()
	snap[0].FileName = "changed"
	assert.Equal(t, "x.jpg", c.Snapshot()[0].FileName)
}
