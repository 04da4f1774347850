package logger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestNew_WritesJSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hosts.log")

	log := New(Options{Level: "debug", File: path})
	log.Named("source").Warn("download failed", zap.String("url", "http://a"))
	_ = log.Sync()

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}

	line := strings.TrimSpace(string(b))
	var rec map[string]any
	if err := json.Unmarshal([]byte(line), &rec); err != nil {
		t.Fatalf("log line %q is not JSON: %v", line, err)
	}
	if rec["message"] != "download failed" || rec["url"] != "http://a" || rec["logger"] != "source" {
		t.Fatalf("record = %v", rec)
	}
	if rec["level"] != "WARN" {
		t.Fatalf("level = %v, want WARN", rec["level"])
	}
}

func TestNew_LevelFilter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hosts.log")

	log := New(Options{Level: "warn", File: path})
	log.Info("hidden")
	_ = log.Sync()

	b, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		t.Fatalf("read log file: %v", err)
	}
	if strings.Contains(string(b), "hidden") {
		t.Fatalf("info record written at warn level: %q", b)
	}
}

func TestNew_InvalidLevelFallsBackToInfo(t *testing.T) {
	log := New(Options{Level: "loud"})
	if !log.Core().Enabled(zap.InfoLevel) || log.Core().Enabled(zap.DebugLevel) {
		t.Fatal("expected info level")
	}
}
