package version

import (
	"bytes"
	"strings"
	"testing"
)

func TestGetVersion_PrefersBuildFlag(t *testing.T) {
	orig := Version
	t.Cleanup(func() { Version = orig })

	Version = "v1.2.3"
	if got := GetVersion(); got != "v1.2.3" {
		t.Errorf("GetVersion() = %q, want v1.2.3", got)
	}
}

func TestGetFullVersion_ShortCommit(t *testing.T) {
	origV, origC, origD := Version, Commit, Date
	t.Cleanup(func() { Version, Commit, Date = origV, origC, origD })

	Version, Commit, Date = "v0.1.0", "0123456789abcdef", "2026-01-02"
	if got := GetFullVersion(); got != "v0.1.0 (0123456, built 2026-01-02)" {
		t.Errorf("GetFullVersion() = %q", got)
	}

	Date = "unknown"
	if got := GetFullVersion(); got != "v0.1.0 (0123456)" {
		t.Errorf("GetFullVersion() = %q", got)
	}
}

func TestPrintVersion(t *testing.T) {
	var buf bytes.Buffer
	PrintVersion(&buf, "sorts")
	out := buf.String()
	for _, want := range []string{"sorts version ", "Package: sorts", "Commit: ", "Build Date: "} {
		if !strings.Contains(out, want) {
			t.Errorf("PrintVersion output missing %q:\n%s", want, out)
		}
	}
}
