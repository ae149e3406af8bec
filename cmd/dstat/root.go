package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Geun-Oh/dstat/internal/config"
	"github.com/Geun-Oh/dstat/internal/logging"
	"github.com/Geun-Oh/dstat/internal/monitor"
	"github.com/Geun-Oh/dstat/internal/pipeline"
	"github.com/Geun-Oh/dstat/internal/sink"
	"github.com/Geun-Oh/dstat/internal/source"
	"github.com/hyp3rd/ewrap"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// ErrUsage is returned when the command is not given exactly one input file.
var ErrUsage = ewrap.New("wrong number of arguments")

const usageLine = "Usage: dstat file_with_data.txt"

// NewRootCommand builds the dstat command. Settings come from the environment
// first and are overridden by flags. A malformed environment fails the run
// before any input is read.
func NewRootCommand(stdout, stderr io.Writer) *cobra.Command {
	cfg, loadErr := config.Load()
	if loadErr != nil {
		cfg = config.Default()
	}

	cmd := &cobra.Command{
		Use:   "dstat file_with_data.txt",
		Short: "dstat computes descriptive statistics for a file of numbers",
		Long: `dstat reads one number per line and reports the mean, median, mode,
population variance and standard deviation. Lines that are not numbers are
listed in the report and left out of the computation. The report is printed
and written to a results file (StatisticsResults.txt by default).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return ErrUsage
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if loadErr != nil {
				return loadErr
			}
			return run(cmd.Context(), cfg, args[0], stdout, stderr)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&cfg.Output.Path, "output", "o", cfg.Output.Path, "results file to overwrite")
	flags.StringVarP(&cfg.Output.Format, "format", "f", cfg.Output.Format, "results file format: text or json")
	flags.BoolVar(&cfg.Output.Color, "color", cfg.Output.Color, "style the console report")
	flags.StringVar(&cfg.Logging.Level, "log-level", cfg.Logging.Level, "diagnostic log level (debug, info, warn, error)")
	flags.BoolVar(&cfg.Logging.Development, "log-dev", cfg.Logging.Development, "human-readable diagnostic logs")

	return cmd
}

func run(ctx context.Context, cfg *config.Config, path string, stdout, stderr io.Writer) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.New(logging.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Logging.Development,
		Output:      stderr,
	})
	if err != nil {
		return ewrap.Wrap(err, "init logger")
	}
	defer func() { _ = logger.Sync() }()

	fileSink, err := sink.NewFileSink(cfg.Output.Path, cfg.Output.Format)
	if err != nil {
		return err
	}

	st := monitor.NewStats()
	_, err = pipeline.Run(ctx, &pipeline.Config{
		Source: source.New(path),
		Sinks:  []sink.Sink{sink.NewTerminalSink(stdout, cfg.Output.Color), fileSink},
		Stats:  st,
		Logger: logger,
	})
	if err != nil {
		return err
	}

	logger.Info("results written",
		zap.String("path", fileSink.Path()),
		zap.Int("samples", st.Valid()),
		zap.Int("invalid", st.Invalid()),
	)
	return nil
}

// Main runs dstat with args and returns the process exit code.
func Main(args []string, stdout, stderr io.Writer) int {
	if args == nil {
		// cobra falls back to os.Args when args is nil.
		args = []string{}
	}

	cmd := NewRootCommand(stdout, stderr)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		if errors.Is(err, ErrUsage) {
			fmt.Fprintln(stdout, usageLine)
			return 1
		}
		fmt.Fprintln(stderr, "dstat:", err)
		return 1
	}
	return 0
}

// Execute runs the command line and exits.
func Execute() {
	os.Exit(Main(os.Args[1:], os.Stdout, os.Stderr))
}
