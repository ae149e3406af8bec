// Package pipeline orchestrates Source → Parser → Stats → Report → Sink processing.
package pipeline

import (
	"context"
	"fmt"

	"github.com/Geun-Oh/dstat/internal/entry"
	"github.com/Geun-Oh/dstat/internal/logging"
	"github.com/Geun-Oh/dstat/internal/monitor"
	"github.com/Geun-Oh/dstat/internal/parser"
	"github.com/Geun-Oh/dstat/internal/report"
	"github.com/Geun-Oh/dstat/internal/sink"
	"github.com/Geun-Oh/dstat/internal/source"
	"github.com/Geun-Oh/dstat/internal/stats"
	"github.com/hyp3rd/ewrap"
	"go.uber.org/zap"
)

var (
	// ErrNoSource is returned when Config.Source is nil.
	ErrNoSource = ewrap.New("pipeline: source is required")

	// ErrNoSink is returned when Config.Sinks is empty.
	ErrNoSink = ewrap.New("pipeline: at least one sink is required")
)

// Config holds pipeline configuration.
type Config struct {
	Source source.Source
	Parser *parser.Parser // optional; defaults to the numeric rules
	Sinks  []sink.Sink    // written in order
	Stats  *monitor.Stats // optional
	Logger *logging.Logger
}

// Run executes one batch: read every line, classify it, compute statistics,
// build the report and write it to each sink in order.
//
// The elapsed time covers computation and formatting only; reading the
// input is not timed. Any read error aborts before a sink is touched.
func Run(ctx context.Context, cfg *Config) (*entry.Report, error) {
	if cfg.Source == nil {
		return nil, ErrNoSource
	}
	if len(cfg.Sinks) == 0 {
		return nil, ErrNoSink
	}
	log := cfg.Logger
	if log == nil {
		log = logging.NewNop()
	}
	p := cfg.Parser
	if p == nil {
		p = parser.New(nil)
	}
	st := cfg.Stats
	if st == nil {
		st = monitor.NewStats()
	}

	lines, err := cfg.Source.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("pipeline: read %s: %w", cfg.Source.Name(), err)
	}
	log.Debug("input read", zap.String("source", cfg.Source.Name()), zap.Int("lines", len(lines)))

	samples, invalid := p.Parse(lines)
	st.Record(len(samples), len(invalid))
	if len(invalid) > 0 {
		for i := range lines {
			if rule, ok := p.Rules().Reject(&lines[i]); !ok {
				log.Debug("invalid line", zap.Int("line", lines[i].Number), zap.String("rule", rule))
			}
		}
	}
	log.Debug("input classified",
		zap.String("rules", p.Rules().Name()),
		zap.Int("lines", st.Total()),
		zap.Int("samples", st.Valid()),
		zap.Int("invalid", st.Invalid()),
	)

	st.Start()
	result := stats.Compute(samples)
	rep := report.Build(result, invalid, st.Elapsed())
	log.Debug("statistics computed", zap.String("summary", st.Summary()))

	for _, s := range cfg.Sinks {
		if err := s.Write(rep); err != nil {
			return nil, fmt.Errorf("pipeline: write to %s: %w", s.Name(), err)
		}
	}

	for _, s := range cfg.Sinks {
		if err := s.Flush(); err != nil {
			return nil, fmt.Errorf("pipeline: flush %s: %w", s.Name(), err)
		}
		if err := s.Close(); err != nil {
			return nil, fmt.Errorf("pipeline: close %s: %w", s.Name(), err)
		}
	}

	return rep, nil
}
