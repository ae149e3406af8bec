package sink

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/Geun-Oh/dstat/internal/entry"
	"github.com/goccy/go-json"
)

// jsonNumber encodes finite values as JSON numbers and overflowed values
// as the strings "inf", "-inf" or "nan".
type jsonNumber float64

// MarshalJSON implements json.Marshaler.
func (n jsonNumber) MarshalJSON() ([]byte, error) {
	v := float64(n)
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return []byte(strconv.Quote(entry.FormatValue(v))), nil
	}
	return strconv.AppendFloat(nil, v, 'g', -1, 64), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (n *jsonNumber) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		s, err := strconv.Unquote(string(b))
		if err != nil {
			return err
		}
		switch s {
		case "inf":
			*n = jsonNumber(math.Inf(1))
		case "-inf":
			*n = jsonNumber(math.Inf(-1))
		case "nan":
			*n = jsonNumber(math.NaN())
		default:
			return fmt.Errorf("invalid number %q", s)
		}
		return nil
	}
	v, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return err
	}
	*n = jsonNumber(v)
	return nil
}

func jsonNumbers(vs []float64) []jsonNumber {
	if len(vs) == 0 {
		return nil
	}
	out := make([]jsonNumber, len(vs))
	for i, v := range vs {
		out[i] = jsonNumber(v)
	}
	return out
}

// jsonReport is the serialization format for JSON output.
type jsonReport struct {
	Count             int              `json:"count"`
	Mean              jsonNumber       `json:"mean"`
	Median            jsonNumber       `json:"median"`
	Mode              jsonMode         `json:"mode"`
	Variance          jsonNumber       `json:"variance"`
	StandardDeviation jsonNumber       `json:"standard_deviation"`
	Errors            []jsonValidation `json:"errors,omitempty"`
	ElapsedSeconds    float64          `json:"elapsed_seconds"`
	Lines             []string         `json:"lines"`
}

type jsonMode struct {
	Kind   string       `json:"kind"`
	Values []jsonNumber `json:"values,omitempty"`
}

type jsonValidation struct {
	Line int    `json:"line"`
	Text string `json:"text"`
}

// JSONSink writes a report as a single indented JSON document.
type JSONSink struct {
	w   io.Writer
	enc *json.Encoder
}

// NewJSONSink creates a JSON sink writing to the given writer.
func NewJSONSink(w io.Writer) *JSONSink {
	if w == nil {
		w = os.Stdout
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return &JSONSink{
		w:   w,
		enc: enc,
	}
}

// Write serializes the report.
func (s *JSONSink) Write(r *entry.Report) error {
	jr := jsonReport{
		Count:             r.Result.Count,
		Mean:              jsonNumber(r.Result.Mean),
		Median:            jsonNumber(r.Result.Median),
		Mode:              jsonMode{Kind: r.Result.Mode.Kind.String(), Values: jsonNumbers(r.Result.Mode.Values)},
		Variance:          jsonNumber(r.Result.Variance),
		StandardDeviation: jsonNumber(r.Result.StdDev),
		ElapsedSeconds:    r.Elapsed.Seconds(),
		Lines:             r.Lines,
	}
	for _, e := range r.Errors {
		jr.Errors = append(jr.Errors, jsonValidation{Line: e.Line, Text: e.Text})
	}
	return s.enc.Encode(jr)
}

// Flush is a no-op for JSON sink.
func (s *JSONSink) Flush() error { return nil }

// Close is a no-op for JSON sink.
func (s *JSONSink) Close() error { return nil }

// Name returns the sink identifier.
func (s *JSONSink) Name() string { return "json" }
