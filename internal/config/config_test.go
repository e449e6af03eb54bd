// ABOUTME: Tests for configuration defaults, clamping and path expansion.
// ABOUTME: Covers cutoff-hour bounds, XDG paths and the backend factory.
package config

import (
	"os"
	"path/filepath"
	"testing"
)

func intPtr(v int) *int    { return &v }
func boolPtr(v bool) *bool { return &v }

func TestDefaults(t *testing.T) {
	cfg := &Config{}

	if got := cfg.GetBackend(); got != "kv" {
		t.Errorf("GetBackend = %q, want kv", got)
	}
	if got := cfg.GetCutoffHour(); got != 6 {
		t.Errorf("GetCutoffHour = %d, want 6", got)
	}
	if !cfg.GetAutoSwitchBreak() {
		t.Error("GetAutoSwitchBreak = false, want true")
	}
	if got := cfg.GetDataDir(); got != DataDir() {
		t.Errorf("GetDataDir = %q, want %q", got, DataDir())
	}
}

func TestCutoffHourClamping(t *testing.T) {
	tests := []struct {
		in   *int
		want int
	}{
		{nil, 6},
		{intPtr(0), 0},
		{intPtr(4), 4},
		{intPtr(23), 23},
		{intPtr(-1), 6},
		{intPtr(24), 6},
	}
	for _, tt := range tests {
		cfg := &Config{CutoffHour: tt.in}
		if got := cfg.GetCutoffHour(); got != tt.want {
			t.Errorf("GetCutoffHour(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestAutoSwitchBreakExplicit(t *testing.T) {
	cfg := &Config{AutoSwitchBreak: boolPtr(false)}
	if cfg.GetAutoSwitchBreak() {
		t.Error("explicit false ignored")
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home dir: %v", err)
	}

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"~", home},
		{"~/data", filepath.Join(home, "data")},
		{"/absolute/path", "/absolute/path"},
		{"relative/path", "relative/path"},
	}
	for _, tt := range tests {
		if got := ExpandPath(tt.in); got != tt.want {
			t.Errorf("ExpandPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGetDataDirExpandsTilde(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home dir: %v", err)
	}
	cfg := &Config{DataDir: "~/stacks"}
	if got := cfg.GetDataDir(); got != filepath.Join(home, "stacks") {
		t.Errorf("GetDataDir = %q", got)
	}
}

func TestDataDirHonorsXDG(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg-data")
	if got := DataDir(); got != filepath.Join("/tmp/xdg-data", "tsumiage") {
		t.Errorf("DataDir = %q", got)
	}
}

func TestOpenStorageUnknownBackend(t *testing.T) {
	cfg := &Config{Backend: "postgres"}
	if _, err := cfg.OpenStorage(); err == nil {
		t.Error("unknown backend accepted")
	}
}
