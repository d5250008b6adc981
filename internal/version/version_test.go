package version

import (
	"bytes"
	"runtime"
	"strings"
	"testing"
)

func TestInfo_ContainsGoVersion(t *testing.T) {
	info := Info()
	if info["go_version"] != runtime.Version() {
		t.Errorf("go_version = %v, want %v", info["go_version"], runtime.Version())
	}
	if info["version"] != Version {
		t.Errorf("version = %v, want %v", info["version"], Version)
	}
}

func TestPrint_Banner(t *testing.T) {
	var buf bytes.Buffer
	Print(&buf, "worktime")

	if !strings.HasPrefix(buf.String(), "worktime "+Version+" ") {
		t.Errorf("Print() = %q, want prefix %q", buf.String(), "worktime "+Version)
	}
}
