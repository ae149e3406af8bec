// Package report renders statistics and validation errors into report lines.
package report

import (
	"fmt"
	"time"

	"github.com/Geun-Oh/dstat/internal/entry"
)

// Header is the first line of every report.
const Header = "Descriptive Statistics:"

// Build renders a report in fixed order: header, validation errors,
// the five statistics, then the elapsed time.
func Build(r entry.Result, invalid []entry.ValidationError, elapsed time.Duration) *entry.Report {
	lines := make([]string, 0, len(invalid)+7)
	lines = append(lines, Header)
	for _, e := range invalid {
		lines = append(lines, e.String())
	}
	lines = append(lines,
		"Mean: "+entry.FormatValue(r.Mean),
		"Median: "+entry.FormatValue(r.Median),
		"Mode: "+r.Mode.Format(),
		"Variance: "+entry.FormatValue(r.Variance),
		"Standard Deviation: "+entry.FormatValue(r.StdDev),
		ElapsedLine(elapsed),
	)

	return &entry.Report{
		Lines:   lines,
		Result:  r,
		Errors:  invalid,
		Elapsed: elapsed,
	}
}

// ElapsedLine formats d in seconds with four decimal places.
func ElapsedLine(d time.Duration) string {
	return fmt.Sprintf("Total time elapsed: %.4f seconds", d.Seconds())
}
