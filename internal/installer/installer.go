package installer

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"text/template"

	"github.com/zgpcy/worktime/internal/logger"
)

//go:embed templates/launcher.desktop.tmpl
var launcherTemplate string

var launcherTmpl = template.Must(template.New("launcher").Parse(launcherTemplate))

// ErrUnsupportedPlatform is returned on systems without freedesktop launchers
var ErrUnsupportedPlatform = errors.New("desktop launcher not supported on this platform")

// Installer puts a launcher for the program somewhere the user can click it
type Installer interface {
	// Install reports whether a new launcher was created
	Install() (created bool, err error)
}

// launcherData holds template data for the .desktop entry
type launcherData struct {
	Name    string
	Comment string
	Exec    string
	WorkDir string
	Icon    string
}

// DesktopShortcut writes a .desktop launcher file
type DesktopShortcut struct {
	Dir      string // Directory the launcher is written to
	FileName string // e.g. worktime.desktop
	Title    string // Name shown under the icon
	Comment  string
	Exec     string // Absolute path of the executable
	Args     []string
	WorkDir  string
	Icon     string
	GOOS     string // Defaults to runtime.GOOS
}

// Path returns the full launcher path
func (s *DesktopShortcut) Path() string {
	return filepath.Join(s.Dir, s.FileName)
}

// Install writes the launcher unless it already exists
func (s *DesktopShortcut) Install() (bool, error) {
	goos := s.GOOS
	if goos == "" {
		goos = runtime.GOOS
	}
	switch goos {
	case "linux", "freebsd", "openbsd", "netbsd":
	default:
		return false, fmt.Errorf("%w: %s", ErrUnsupportedPlatform, goos)
	}

	if s.Dir == "" || s.FileName == "" {
		return false, errors.New("launcher directory and file name are required")
	}
	if s.Exec == "" {
		return false, errors.New("launcher executable path is required")
	}

	path := s.Path()
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("failed to check launcher %s: %w", path, err)
	}

	content, err := s.render()
	if err != nil {
		return false, err
	}

	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return false, fmt.Errorf("failed to create launcher directory: %w", err)
	}

	// Desktop environments only trust executable launchers
	// #nosec G306 -- launcher must be executable and readable by the session
	if err := os.WriteFile(path, content, 0o755); err != nil {
		return false, fmt.Errorf("failed to write launcher: %w", err)
	}
	return true, nil
}

func (s *DesktopShortcut) render() ([]byte, error) {
	title := s.Title
	if title == "" {
		title = strings.TrimSuffix(s.FileName, filepath.Ext(s.FileName))
	}

	data := launcherData{
		Name:    title,
		Comment: s.Comment,
		Exec:    execLine(s.Exec, s.Args),
		WorkDir: s.WorkDir,
		Icon:    s.Icon,
	}
	if data.WorkDir == "" {
		data.WorkDir = filepath.Dir(s.Exec)
	}

	var buf bytes.Buffer
	if err := launcherTmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render launcher: %w", err)
	}
	return buf.Bytes(), nil
}

// execLine quotes arguments per the desktop entry Exec key rules
func execLine(exe string, args []string) string {
	parts := make([]string, 0, len(args)+1)
	for _, a := range append([]string{exe}, args...) {
		parts = append(parts, quoteExecArg(a))
	}
	return strings.Join(parts, " ")
}

func quoteExecArg(arg string) string {
	if arg != "" && !strings.ContainsAny(arg, " \t\n\"'\\><~|&;$*?#()`") {
		return arg
	}
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`, "`", "\\`", `$`, `\$`)
	return `"` + r.Replace(arg) + `"`
}

// DesktopDir returns the user's desktop directory
func DesktopDir() (string, error) {
	if dir := os.Getenv("XDG_DESKTOP_DIR"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate home directory: %w", err)
	}
	return filepath.Join(home, "Desktop"), nil
}

// RunBestEffort runs inst once and logs the outcome. Failures never propagate.
func RunBestEffort(inst Installer, log *logger.Logger) {
	created, err := inst.Install()
	switch {
	case errors.Is(err, ErrUnsupportedPlatform):
		log.Info("Skipping desktop launcher", "reason", err.Error())
	case err != nil:
		log.Warn("Failed to install desktop launcher", "error", err)
	case created:
		log.Info("Desktop launcher created")
	default:
		log.Debug("Desktop launcher already present")
	}
}
