// Package installer creates a desktop launcher for worktime on first run.
//
// The launcher is a freedesktop.org .desktop entry written into the user's
// desktop directory ($XDG_DESKTOP_DIR, falling back to $HOME/Desktop). It is
// idempotent: an existing file with the same name is left untouched.
//
// Installation is best effort. RunBestEffort logs any failure and returns;
// nothing in the conversion path depends on the launcher existing.
package installer
