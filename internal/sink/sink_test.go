package sink

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Geun-Oh/dstat/internal/entry"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport() *entry.Report {
	return &entry.Report{
		Lines: []string{
			"Descriptive Statistics:",
			"Invalid data at line 2: 'abc'",
			"Mean: 4",
			"Median: 4",
			"Mode: No mode",
			"Variance: 1",
			"Standard Deviation: 1",
			"Total time elapsed: 0.0001 seconds",
		},
		Result: entry.Result{
			Count:    2,
			Mean:     4,
			Median:   4,
			Mode:     entry.Mode{Kind: entry.NoMode},
			Variance: 1,
			StdDev:   1,
		},
		Errors:  []entry.ValidationError{{Line: 2, Text: "abc"}},
		Elapsed: 100 * time.Microsecond,
	}
}

const sampleText = "Descriptive Statistics:\n" +
	"Invalid data at line 2: 'abc'\n" +
	"Mean: 4\n" +
	"Median: 4\n" +
	"Mode: No mode\n" +
	"Variance: 1\n" +
	"Standard Deviation: 1\n" +
	"Total time elapsed: 0.0001 seconds\n"

func TestTerminalSinkPlain(t *testing.T) {
	var buf bytes.Buffer
	s := NewTerminalSink(&buf, false)

	require.NoError(t, s.Write(sampleReport()))
	assert.Equal(t, sampleText, buf.String())
	assert.Equal(t, "terminal", s.Name())
	assert.NoError(t, s.Flush())
	assert.NoError(t, s.Close())
}

func TestTerminalSinkColorKeepsText(t *testing.T) {
	var buf bytes.Buffer
	s := NewTerminalSink(&buf, true)

	require.NoError(t, s.Write(sampleReport()))
	out := buf.String()
	assert.Contains(t, out, "Descriptive Statistics:")
	assert.Contains(t, out, "Invalid data at line 2: 'abc'")
	assert.Contains(t, out, "Mean: 4\n")
}

func TestJSONSink(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONSink(&buf).Write(sampleReport()))

	var got jsonReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, 2, got.Count)
	assert.Equal(t, jsonNumber(4), got.Mean)
	assert.Equal(t, "none", got.Mode.Kind)
	assert.Equal(t, jsonNumber(1), got.StandardDeviation)
	assert.Equal(t, []jsonValidation{{Line: 2, Text: "abc"}}, got.Errors)
	assert.Len(t, got.Lines, 8)
}

func TestFileSinkText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultResultsFile)
	require.NoError(t, os.WriteFile(path, []byte("stale content that is longer than the report\n"+sampleText), 0o644))

	s, err := NewFileSink(path, "")
	require.NoError(t, err)
	require.NoError(t, s.Write(sampleReport()))
	require.NoError(t, s.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, sampleText, string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file left behind")
}

func TestFileSinkJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")

	s, err := NewFileSink(path, FormatJSON)
	require.NoError(t, err)
	require.NoError(t, s.Write(sampleReport()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var got jsonReport
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, sampleReport().Lines, got.Lines)
}

func TestFileSinkUnknownFormat(t *testing.T) {
	_, err := NewFileSink("out.txt", "xml")
	assert.True(t, errors.Is(err, ErrUnknownFormat))
}

func TestFileSinkFailureLeavesNoFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", DefaultResultsFile)

	s, err := NewFileSink(path, FormatText)
	require.NoError(t, err)
	assert.Error(t, s.Write(sampleReport()))

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestJSONSinkNonFinite(t *testing.T) {
	rep := sampleReport()
	rep.Result.Mean = math.Inf(1)
	rep.Result.Variance = math.Inf(1)
	rep.Result.StdDev = math.NaN()
	rep.Result.Median = 5.0000000500000005e307
	rep.Result.Mode = entry.Mode{Kind: entry.TiedValues, Values: []float64{1e300, -math.MaxFloat64}}

	var buf bytes.Buffer
	require.NoError(t, NewJSONSink(&buf).Write(rep))
	assert.Contains(t, buf.String(), `"mean": "inf"`)
	assert.Contains(t, buf.String(), `"standard_deviation": "nan"`)

	var got jsonReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.True(t, math.IsInf(float64(got.Mean), 1))
	assert.True(t, math.IsInf(float64(got.Variance), 1))
	assert.True(t, math.IsNaN(float64(got.StandardDeviation)))
	assert.Equal(t, 5.0000000500000005e307, float64(got.Median))
	assert.Equal(t, []jsonNumber{1e300, -math.MaxFloat64}, got.Mode.Values)
}

func TestFileSinkJSONOverflow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	rep := sampleReport()
	rep.Result.Mean = math.Inf(-1)

	s, err := NewFileSink(path, FormatJSON)
	require.NoError(t, err)
	require.NoError(t, s.Write(rep))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"mean": "-inf"`)
}
