package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

// initFile installs a file-only logger for the test and returns the path.
func initFile(t *testing.T, level string, maxSizeMB int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "studio.log")
	cfg := FileConfig{Path: path, MaxSizeMB: maxSizeMB, MaxBackups: 2, MaxAgeDays: 1}
	if err := InitWithFileConfig(level, cfg, false); err != nil {
		t.Fatalf("InitWithFileConfig(%q): %v", level, err)
	}
	t.Cleanup(func() { Set(zap.NewNop()) })
	return path
}

func TestLogRotation(t *testing.T) {
	// lumberjack's smallest size is 1MB; roughly 3MB are written below.
	path := initFile(t, "debug", 1)

	payload := strings.Repeat("v", 200)
	for i := 0; i < 15000; i++ {
		Info("frame", zap.Int("frame", i), zap.String("payload", payload))
	}
	Sync()

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	var current, rotated int
	for _, e := range entries {
		switch {
		case e.Name() == "studio.log":
			current++
		case strings.HasPrefix(e.Name(), "studio-20") && strings.HasSuffix(e.Name(), ".log"):
			rotated++
		}
	}
	if current != 1 {
		t.Errorf("current log file missing")
	}
	if rotated == 0 {
		t.Errorf("no rotated log files in %v", entries)
	}
}

func TestLogLevels(t *testing.T) {
	all := []string{"DEBUG", "INFO", "WARN", "ERROR"}
	tests := []struct {
		level string
		// first is the index in all of the lowest level written.
		first int
	}{
		{"debug", 0},
		{"info", 1},
		{"warn", 2},
		{"error", 3},
		{"bogus", 1},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			path := initFile(t, tt.level, 10)

			Debug("mesh uploaded", zap.Int("vertices", 24))
			Info("model loaded", zap.String("path", "cube.obj"))
			Warn("texture load failed", zap.String("path", "missing.png"))
			Error("view skipped", zap.Int("view", 1))
			Sync()

			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("ReadFile: %v", err)
			}
			out := string(data)
			for i, lvl := range all {
				if got, want := strings.Contains(out, lvl), i >= tt.first; got != want {
					t.Errorf("level %s: output contains %s = %v, want %v", tt.level, lvl, got, want)
				}
			}
		})
	}
}

func TestDefaultFileConfig(t *testing.T) {
	cfg := DefaultFileConfig("/tmp/test.log")

	if cfg.Path != "/tmp/test.log" {
		t.Errorf("expected path /tmp/test.log, got %s", cfg.Path)
	}
	if cfg.MaxSizeMB != 50 {
		t.Errorf("expected MaxSizeMB 50, got %d", cfg.MaxSizeMB)
	}
	if cfg.MaxBackups != 3 {
		t.Errorf("expected MaxBackups 3, got %d", cfg.MaxBackups)
	}
	if cfg.MaxAgeDays != 7 {
		t.Errorf("expected MaxAgeDays 7, got %d", cfg.MaxAgeDays)
	}
	if !cfg.Compress {
		t.Error("expected Compress to be true")
	}
}

func TestNoOutputsIsNop(t *testing.T) {
	Set(mustNew(t, Options{}))
	Info("dropped")
	Warn("dropped")
	Sync()
}

func TestConsoleWriter(t *testing.T) {
	var buf bytes.Buffer
	Set(mustNew(t, Options{Level: "warn", Console: &buf}))

	Info("light added")
	Warn("texture load failed")
	Sync()

	out := buf.String()
	if strings.Contains(out, "light added") {
		t.Errorf("info message logged at warn level: %q", out)
	}
	if !strings.Contains(out, "texture load failed") {
		t.Errorf("warn message missing: %q", out)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"debug", "debug"},
		{"WARN", "warn"},
		{"error", "error"},
		{"", "info"},
		{"verbose", "info"},
	}
	for _, tt := range tests {
		if got := parseLevel(tt.in).String(); got != tt.want {
			t.Errorf("parseLevel(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func mustNew(t *testing.T, opts Options) *zap.Logger {
	t.Helper()
	l, err := New(opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return l
}
