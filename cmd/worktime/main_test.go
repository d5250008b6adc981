package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zgpcy/worktime/internal/config"
	"github.com/zgpcy/worktime/internal/logger"
	"github.com/zgpcy/worktime/internal/metrics"
	"github.com/zgpcy/worktime/internal/zone"
)

var clockLine = regexp.MustCompile(`^(0[1-9]|1[0-2]):[0-5][0-9] (AM|PM) PST\n$`)

func runCapture(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("WORKTIME_CONFIG", "")
	var stdout, stderr bytes.Buffer
	err := run(args, &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func TestRun_Version(t *testing.T) {
	stdout, _, err := runCapture(t, "--version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "worktime dev"), stdout)
}

func TestRun_Help(t *testing.T) {
	_, stderr, err := runCapture(t, "--help")
	require.NoError(t, err)
	assert.Contains(t, stderr, "--convert")
	assert.Contains(t, stderr, "--watch")
}

func TestRun_ConvertSuccess(t *testing.T) {
	stdout, _, err := runCapture(t, "--convert", "12 PM")
	require.NoError(t, err)
	assert.Regexp(t, clockLine, stdout)
}

func TestRun_ConvertInvalid(t *testing.T) {
	stdout, _, err := runCapture(t, "--convert", "99:99")
	require.Error(t, err)

	var coder interface{ ExitCode() int }
	require.True(t, errors.As(err, &coder))
	assert.Equal(t, 2, coder.ExitCode())
	assert.Equal(t, "Invalid format\n", stdout)
}

func TestRun_ConvertPlaceholderPrintsNothing(t *testing.T) {
	stdout, _, err := runCapture(t, "--convert", "EST to PST")
	require.NoError(t, err)
	assert.Empty(t, stdout)
}

func TestRun_ConvertReverse(t *testing.T) {
	stdout, _, err := runCapture(t, "--reverse", "--convert", "9 AM")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(stdout, " EST\n"), stdout)
}

func TestRun_UnknownZoneIsFatal(t *testing.T) {
	t.Setenv("WORKTIME_TARGET_ZONE", "Mars/Olympus_Mons")

	_, _, err := runCapture(t, "--convert", "12 PM")
	require.Error(t, err)

	var unknown *zone.UnknownZoneError
	assert.True(t, errors.As(err, &unknown), "want *zone.UnknownZoneError, got %v", err)
}

func TestRun_BadFlag(t *testing.T) {
	_, _, err := runCapture(t, "--no-such-flag")
	require.Error(t, err)

	var coder interface{ ExitCode() int }
	require.True(t, errors.As(err, &coder))
	assert.Equal(t, 2, coder.ExitCode())
}

func TestRun_UnexpectedArgument(t *testing.T) {
	_, _, err := runCapture(t, "extra")
	assert.Error(t, err)
}

func TestRun_MissingConfigFile(t *testing.T) {
	_, _, err := runCapture(t, "--config", filepath.Join(t.TempDir(), "absent.yaml"), "--convert", "5 PM")
	assert.Error(t, err)
}

func TestRun_WritesMetricsAndLogs(t *testing.T) {
	dir := t.TempDir()
	metricsPath := filepath.Join(dir, "worktime.prom")
	logPath := filepath.Join(dir, "worktime.log")

	_, _, err := runCapture(t, "--convert", "5 PM", "--metrics-file", metricsPath, "--log-output", logPath)
	require.NoError(t, err)

	prom, err := os.ReadFile(metricsPath)
	require.NoError(t, err)
	assert.Contains(t, string(prom), `worktime_conversions_total{outcome="converted"} 1`)

	logs, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(logs), "worktime starting")
}

func TestRun_ConvertBlankIsInvalid(t *testing.T) {
	stdout, _, err := runCapture(t, "--convert", "   ")
	require.Error(t, err)

	var coder interface{ ExitCode() int }
	require.True(t, errors.As(err, &coder))
	assert.Equal(t, 2, coder.ExitCode())
	assert.Equal(t, "Invalid format\n", stdout)
}

func TestRunWatch_PrintsClockLinesAndStops(t *testing.T) {
	table, err := zone.New(zone.Spec{Label: "EST", ID: "US/Eastern"}, zone.Spec{Label: "PST", ID: "US/Pacific"})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	var stdout bytes.Buffer
	require.NoError(t, runWatch(ctx, table, config.Default(), metrics.New(), &stdout, logger.Discard()))

	// runWatch has joined the refresh goroutine, so the buffer is stable here
	out := stdout.String()
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.NotEmpty(t, lines)
	assert.Regexp(t, `^\d{2}:\d{2} (AM|PM) EST • \d{2}:\d{2} (AM|PM) PST$`, lines[0])

	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, out, stdout.String())
}
