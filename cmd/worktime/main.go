// worktime is a small always-on clock for two fixed time zones. It shows the
// current time in both zones and converts a typed time from the first zone to
// the second.
//
// Three modes:
//
// Interactive (default on a terminal): a bubbletea widget with both clocks,
// an input field and the converted result.
//
// One-shot (--convert): converts a single time, prints it and exits. Exit
// status 2 means the input matched no accepted format.
//
// Watch (--watch, or stdout is not a terminal): prints both clock lines every
// refresh interval until interrupted.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/zgpcy/worktime/internal/clock"
	"github.com/zgpcy/worktime/internal/config"
	"github.com/zgpcy/worktime/internal/convert"
	"github.com/zgpcy/worktime/internal/installer"
	"github.com/zgpcy/worktime/internal/logger"
	"github.com/zgpcy/worktime/internal/metrics"
	"github.com/zgpcy/worktime/internal/refresher"
	"github.com/zgpcy/worktime/internal/version"
	"github.com/zgpcy/worktime/internal/widget"
	"github.com/zgpcy/worktime/internal/zone"
)

// exitError carries a specific process exit status
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }
func (e *exitError) ExitCode() int { return e.code }

// options holds parsed command-line flags
type options struct {
	configPath  string
	convert     string
	reverse     bool
	watch       bool
	noShortcut  bool
	logOutput   string
	metricsFile string
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			if err.Error() != "" {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
			}
			os.Exit(coder.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	var opts options

	flagSet := pflag.NewFlagSet("worktime", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVar(&opts.configPath, "config", os.Getenv("WORKTIME_CONFIG"), "path to YAML configuration file")
	flagSet.StringVar(&opts.convert, "convert", "", "convert a single time (e.g. \"5:30 PM\") and exit")
	flagSet.BoolVar(&opts.reverse, "reverse", false, "convert from the target zone to the source zone")
	flagSet.BoolVar(&opts.watch, "watch", false, "print both clocks every refresh interval instead of the interactive widget")
	flagSet.BoolVar(&opts.noShortcut, "no-shortcut", false, "do not install the desktop launcher")
	flagSet.StringVar(&opts.logOutput, "log-output", "", "write JSON log records to this file")
	flagSet.StringVar(&opts.metricsFile, "metrics-file", "", "write Prometheus metrics to this textfile on exit")
	showVersion := flagSet.Bool("version", false, "print version and exit")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printHelp(flagSet, stderr)
			return nil
		}
		return &exitError{code: 2, err: err}
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet, stderr)
		return nil
	}
	if *showVersion {
		version.Print(stdout, "worktime")
		return nil
	}
	if rest := flagSet.Args(); len(rest) > 0 {
		return &exitError{code: 2, err: fmt.Errorf("unexpected argument: %s", rest[0])}
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	applyFlagOverrides(cfg, &opts)

	interactive := opts.convert == "" && !opts.watch && isTerminal(stdout)

	logDest, closeLog, err := openLogDestination(cfg.LogFile, interactive, stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	log := logger.New(cfg.LogLevel, logDest)
	log.Info("worktime starting",
		"version", version.Version,
		"config_path", opts.configPath,
		"source", cfg.Zones.Source.Label+"="+cfg.Zones.Source.ID,
		"target", cfg.Zones.Target.Label+"="+cfg.Zones.Target.ID,
		"refresh_interval_seconds", cfg.RefreshInterval,
		"reset_delay_seconds", cfg.ResetDelay,
		"reset_mode", cfg.ResetMode)

	table, err := zone.New(
		zone.Spec{Label: cfg.Zones.Source.Label, ID: cfg.Zones.Source.ID},
		zone.Spec{Label: cfg.Zones.Target.Label, ID: cfg.Zones.Target.ID},
	)
	if err != nil {
		log.Error("Failed to build zone table", "error", err)
		return err
	}

	m := metrics.New()
	defer writeMetrics(m, cfg.MetricsFile, log)

	conv := convert.New(table, clock.RealClock{})
	if opts.reverse {
		conv = conv.Reverse()
	}

	if opts.convert != "" {
		return runConvert(conv, opts.convert, m, stdout, log)
	}

	if cfg.ShortcutEnabled() {
		installShortcut(cfg, opts.configPath, log)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if !interactive {
		return runWatch(ctx, conv.Table(), cfg, m, stdout, log)
	}
	return runWidget(ctx, conv, cfg, m, log)
}

func applyFlagOverrides(cfg *config.Config, opts *options) {
	if opts.logOutput != "" {
		cfg.LogFile = opts.logOutput
	}
	if opts.metricsFile != "" {
		cfg.MetricsFile = opts.metricsFile
	}
	if opts.noShortcut {
		disabled := false
		cfg.Shortcut.Enabled = &disabled
	}
}

// openLogDestination picks where log records go. The interactive widget owns
// the terminal, so without a log file its records are dropped.
func openLogDestination(path string, interactive bool, stderr io.Writer) (io.Writer, func(), error) {
	if path == "" {
		if interactive {
			return io.Discard, func() {}, nil
		}
		return stderr, func() {}, nil
	}

	// #nosec G304 -- log path is provided by the user via flag or config
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func runConvert(conv *convert.Converter, input string, m *metrics.Metrics, stdout io.Writer, log *logger.Logger) error {
	res, err := conv.ConvertErr(input)
	m.ObserveConversion(res.Outcome)

	if convert.IsParseFailure(err) {
		log.Debug("Rejected input", "input", strings.TrimSpace(input))
		fmt.Fprintln(stdout, res.Text)
		return &exitError{code: 2, err: err}
	}
	if err != nil {
		return err
	}
	if res.Outcome == convert.OutcomeNone {
		return nil
	}

	log.Debug("Converted input",
		"input", strings.TrimSpace(input),
		"instant", res.Instant.Format(time.RFC3339))
	fmt.Fprintf(stdout, "%s %s\n", res.Text, conv.Table().Target().Label)
	return nil
}

func runWatch(ctx context.Context, table *zone.Table, cfg *config.Config, m *metrics.Metrics, stdout io.Writer, log *logger.Logger) error {
	r := refresher.New(table, clock.RealClock{}, cfg.RefreshEvery(), func(s refresher.Snapshot) {
		m.ObserveRefresh(s.Source)
		fmt.Fprintln(stdout, strings.Join(s.Lines(), " • "))
	}, log)
	r.Start(ctx)

	<-ctx.Done()
	r.Wait()
	log.Info("Received shutdown signal, stopped", "refreshes", r.Runs())
	return nil
}

func runWidget(ctx context.Context, conv *convert.Converter, cfg *config.Config, m *metrics.Metrics, log *logger.Logger) error {
	model := widget.New(widget.Options{
		Converter:       conv,
		Clock:           clock.RealClock{},
		RefreshInterval: cfg.RefreshEvery(),
		ResetDelay:      cfg.ResetAfter(),
		ResetMode:       cfg.ResetMode,
		Observer:        m,
		Logger:          log,
	})

	program := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		log.Info("Received shutdown signal, stopping")
		return nil
	}
	return err
}

func installShortcut(cfg *config.Config, configPath string, log *logger.Logger) {
	exe, err := os.Executable()
	if err != nil {
		log.Warn("Cannot locate executable for desktop launcher", "error", err)
		return
	}

	dir := cfg.Shortcut.Dir
	if dir == "" {
		if dir, err = installer.DesktopDir(); err != nil {
			log.Warn("Cannot locate desktop directory", "error", err)
			return
		}
	}

	var args []string
	if configPath != "" {
		if abs, err := filepath.Abs(configPath); err == nil {
			args = []string{"--config", abs}
		}
	}

	shortcut := &installer.DesktopShortcut{
		Dir:      dir,
		FileName: cfg.Shortcut.Name,
		Title:    cfg.Zones.Source.Label + "/" + cfg.Zones.Target.Label + " WorkTime",
		Comment:  "Current time in " + cfg.Zones.Source.Label + " and " + cfg.Zones.Target.Label,
		Exec:     exe,
		Args:     args,
		Icon:     cfg.Shortcut.Icon,
	}
	installer.RunBestEffort(shortcut, log.WithFields("launcher", shortcut.Path()))
}

func writeMetrics(m *metrics.Metrics, path string, log *logger.Logger) {
	if path == "" {
		return
	}
	if err := m.WriteTextfile(path); err != nil {
		log.Warn("Failed to write metrics textfile", "path", path, "error", err)
		return
	}
	log.Debug("Metrics written", "path", path)
}

func printHelp(flagSet *pflag.FlagSet, w io.Writer) {
	fmt.Fprintf(w, `worktime: current time in two zones, with a quick converter.

Type a time in the first zone ("5 PM", "5:30 PM", "15", "15:30") to see it
in the second. Ctrl+R swaps the direction; Esc closes the widget.

Usage:
  worktime [flags]

Examples:
  # Open the widget with the default EST/PST pair
  worktime

  # Convert one time and exit
  worktime --convert "12 PM"

  # Print both clocks every few seconds
  worktime --watch --config ~/.config/worktime.yaml

Flags:
`)
	flagSet.SetOutput(w)
	flagSet.PrintDefaults()
}
