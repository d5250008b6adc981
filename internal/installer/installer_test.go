package installer

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zgpcy/worktime/internal/logger"
)

func testShortcut(dir string) *DesktopShortcut {
	return &DesktopShortcut{
		Dir:      dir,
		FileName: "worktime.desktop",
		Title:    "EST/PST WorkTime",
		Comment:  "Two-zone clock",
		Exec:     "/opt/work time/worktime",
		Args:     []string{"--config", "/home/u/worktime.yaml"},
		Icon:     "/opt/worktime/worktime.png",
		GOOS:     "linux",
	}
}

func TestInstall_CreatesLauncher(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "Desktop")
	s := testShortcut(dir)

	created, err := s.Install()
	require.NoError(t, err)
	assert.True(t, created)

	data, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	content := string(data)

	assert.True(t, strings.HasPrefix(content, "[Desktop Entry]\n"))
	assert.Contains(t, content, "Name=EST/PST WorkTime\n")
	assert.Contains(t, content, `Exec="/opt/work time/worktime" --config /home/u/worktime.yaml`)
	assert.Contains(t, content, "Path=/opt/work time\n")
	assert.Contains(t, content, "Icon=/opt/worktime/worktime.png\n")

	info, err := os.Stat(s.Path())
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&0o100, "launcher must be executable")
}

func TestInstall_Idempotent(t *testing.T) {
	dir := t.TempDir()
	s := testShortcut(dir)
	require.NoError(t, os.WriteFile(s.Path(), []byte("keep me"), 0o644))

	created, err := s.Install()
	require.NoError(t, err)
	assert.False(t, created)

	data, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.Equal(t, "keep me", string(data))
}

func TestInstall_NoIconOmitsKey(t *testing.T) {
	s := testShortcut(t.TempDir())
	s.Icon = ""

	_, err := s.Install()
	require.NoError(t, err)

	data, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.NotContains(t, string(data), "Icon=")
}

func TestInstall_UnsupportedPlatform(t *testing.T) {
	s := testShortcut(t.TempDir())
	s.GOOS = "windows"

	created, err := s.Install()
	assert.False(t, created)
	assert.True(t, errors.Is(err, ErrUnsupportedPlatform))
}

func TestInstall_MissingExec_Error(t *testing.T) {
	s := testShortcut(t.TempDir())
	s.Exec = ""

	_, err := s.Install()
	assert.Error(t, err)
}

func TestDesktopDir_XDGOverride(t *testing.T) {
	t.Setenv("XDG_DESKTOP_DIR", "/srv/desk")

	dir, err := DesktopDir()
	require.NoError(t, err)
	assert.Equal(t, "/srv/desk", dir)
}

func TestDesktopDir_HomeFallback(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_DESKTOP_DIR", "")
	t.Setenv("HOME", home)

	dir, err := DesktopDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "Desktop"), dir)
}

type failingInstaller struct{ err error }

func (f failingInstaller) Install() (bool, error) { return false, f.err }

func TestRunBestEffort_LogsFailure(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New("debug", &buf)

	RunBestEffort(failingInstaller{err: errors.New("disk full")}, log)

	assert.Contains(t, buf.String(), "Failed to install desktop launcher")
	assert.Contains(t, buf.String(), "disk full")
}

func TestRunBestEffort_UnsupportedIsInfo(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New("debug", &buf)

	RunBestEffort(failingInstaller{err: ErrUnsupportedPlatform}, log)

	assert.Contains(t, buf.String(), `"level":"INFO"`)
	assert.Contains(t, buf.String(), "Skipping desktop launcher")
}

func TestQuoteExecArg(t *testing.T) {
	tests := map[string]string{
		"/usr/bin/worktime": "/usr/bin/worktime",
		"a b":               `"a b"`,
		`say "hi"`:          `"say \"hi\""`,
		"$HOME":             `"\$HOME"`,
		"":                  `""`,
	}
	for in, want := range tests {
		assert.Equal(t, want, quoteExecArg(in), in)
	}
}
