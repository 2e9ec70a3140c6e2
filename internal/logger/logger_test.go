package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

// initFile routes logging to a fresh file only and returns its path.
func initFile(t *testing.T, level string, cfg FileConfig) string {
	t.Helper()
	if cfg.Path == "" {
		cfg.Path = filepath.Join(t.TempDir(), "heliscene.log")
	}
	if err := InitWithFileConfig(level, cfg, false); err != nil {
		t.Fatalf("InitWithFileConfig: %v", err)
	}
	return cfg.Path
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	Sync()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return strings.Split(strings.TrimSpace(string(content)), "\n")
}

// lineFor returns the first line mentioning msg.
func lineFor(lines []string, msg string) (string, bool) {
	for _, l := range lines {
		if strings.Contains(l, msg) {
			return l, true
		}
	}
	return "", false
}

func TestTaskLoggersRespectLevel(t *testing.T) {
	// What each task typically emits: fps summaries, resizes, dropped
	// events, render task death.
	emit := func() {
		Named("render").Debug("fps")
		Named("input").Info("window resized")
		Named("input").Warn("dropping input event")
		Named("watchdog").Error("render task terminated abnormally")
	}

	tests := []struct {
		level string
		shown []string
		quiet []string
	}{
		{"debug", []string{"fps", "window resized", "dropping input event", "render task terminated"}, nil},
		{"info", []string{"window resized", "dropping input event", "render task terminated"}, []string{"fps"}},
		{"warn", []string{"dropping input event", "render task terminated"}, []string{"fps", "window resized"}},
		{"error", []string{"render task terminated"}, []string{"fps", "window resized", "dropping input event"}},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			path := initFile(t, tt.level, FileConfig{MaxSizeMB: 1, MaxBackups: 1})
			emit()
			lines := readLines(t, path)

			for _, msg := range tt.shown {
				if _, ok := lineFor(lines, msg); !ok {
					t.Errorf("%q missing at level %s", msg, tt.level)
				}
			}
			for _, msg := range tt.quiet {
				if l, ok := lineFor(lines, msg); ok {
					t.Errorf("%q logged at level %s: %q", msg, tt.level, l)
				}
			}
		})
	}
}

func TestNamedLoggerCarriesTask(t *testing.T) {
	path := initFile(t, "info", FileConfig{MaxSizeMB: 1})

	Named("watchdog").Warn("render task died")
	Named("render").Named("gl").Info("context current")
	Info("no task")

	lines := readLines(t, path)

	tests := []struct {
		msg, task string
	}{
		{"render task died", " watchdog "},
		{"context current", " render.gl "},
	}
	for _, tt := range tests {
		l, ok := lineFor(lines, tt.msg)
		if !ok {
			t.Fatalf("%q not logged", tt.msg)
		}
		if !strings.Contains(l, tt.task) {
			t.Errorf("line %q does not carry task %q", l, strings.TrimSpace(tt.task))
		}
	}

	l, ok := lineFor(lines, "no task")
	if !ok {
		t.Fatal("package-level Info not logged")
	}
	for _, task := range []string{"watchdog", "render", "input"} {
		if strings.Contains(l, " "+task+" ") {
			t.Errorf("package-level line %q carries task %q", l, task)
		}
	}
}

func TestInitWritesLogFileWithDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "viewer.log")

	want := FileConfig{Path: path, MaxSizeMB: 20, MaxBackups: 3, MaxAgeDays: 7, Compress: true}
	if got := DefaultFileConfig(path); got != want {
		t.Errorf("DefaultFileConfig = %+v, want %+v", got, want)
	}

	if err := Init("warn", path); err != nil {
		t.Fatalf("Init: %v", err)
	}
	Named("input").Warn("shared cell unavailable")
	Named("input").Info("quit requested")

	lines := readLines(t, path)
	if _, ok := lineFor(lines, "shared cell unavailable"); !ok {
		t.Error("warning not written to the log file")
	}
	if _, ok := lineFor(lines, "quit requested"); ok {
		t.Error("info written below the configured level")
	}

	// Leave the package logger quiet for later tests.
	if err := InitWithFileConfig("info", FileConfig{}, false); err != nil {
		t.Fatal(err)
	}
}

func TestRenderLogRotates(t *testing.T) {
	dir := t.TempDir()
	path := initFile(t, "debug", FileConfig{
		Path:       filepath.Join(dir, "render.log"),
		MaxSizeMB:  1,
		MaxBackups: 2,
	})

	// Each entry is under the 1 MB cap; six of them force rotation.
	payload := strings.Repeat("f", 400*1024)
	render := Named("render")
	for range 6 {
		render.Debug("frame dump", zap.String("payload", payload))
	}
	Sync()

	backups, err := filepath.Glob(filepath.Join(dir, "render-*.log"))
	if err != nil {
		t.Fatal(err)
	}
	if len(backups) == 0 {
		t.Error("no rotated backups written")
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("current log file missing: %v", err)
	}
}

func TestParseLevelDefaultsToInfo(t *testing.T) {
	for _, in := range []string{"", "verbose", "INFO", "trace"} {
		if got := ParseLevel(in); got.String() != "info" {
			t.Errorf("ParseLevel(%q) = %v, want info", in, got)
		}
	}
}
