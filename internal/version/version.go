package version

import (
	"fmt"
	"io"
	"runtime"
)

// Build information. Populated at build-time via ldflags.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Info returns version information
func Info() map[string]string {
	return map[string]string{
		"version":    Version,
		"git_commit": GitCommit,
		"build_date": BuildDate,
		"go_version": runtime.Version(),
	}
}

// Print writes a one-line version banner for the named binary
func Print(w io.Writer, name string) {
	fmt.Fprintf(w, "%s %s (commit %s, built %s, %s)\n",
		name, Version, GitCommit, BuildDate, runtime.Version())
}
