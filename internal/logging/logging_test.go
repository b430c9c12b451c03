package logging

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func configureTemp(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "glossary.log")
	Configure(path)
	t.Cleanup(func() {
		Configure("")
		SetTraceEnabled(false)
	})
	return path
}

func TestConfigureCreatesDirectory(t *testing.T) {
	path := configureTemp(t)
	if Path() != path {
		t.Fatalf("expected path %s, got %s", path, Path())
	}
	if _, err := os.Stat(filepath.Dir(path)); err != nil {
		t.Fatalf("expected log directory to exist: %v", err)
	}
	Configure("  ")
	if Path() != defaultLogFile {
		t.Fatalf("expected default path, got %s", Path())
	}
}

func TestErrorAppendsLine(t *testing.T) {
	path := configureTemp(t)
	Error(nil)
	Error(errors.New("fetch catalog: boom"))
	Errorf("decode %s: %w", "data.json", errors.New("bad json"))
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	text := string(data)
	if !strings.Contains(text, "fetch catalog: boom") || !strings.Contains(text, "decode data.json: bad json") {
		t.Fatalf("unexpected log contents:\n%s", text)
	}
	if n := strings.Count(text, "\n"); n != 2 {
		t.Fatalf("expected 2 lines, got %d", n)
	}
}

func TestTraceRespectsToggle(t *testing.T) {
	path := configureTemp(t)
	Trace("ignored", nil)
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected no log file while tracing is disabled, got %v", err)
	}

	SetTraceEnabled(true)
	if !TraceEnabled() {
		t.Fatal("expected tracing enabled")
	}
	Trace("catalog.loaded", map[string]interface{}{"terms": 3})
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	var entry struct {
		Event   string                 `json:"event"`
		Payload map[string]interface{} `json:"payload"`
	}
	if err := json.Unmarshal(data, &entry); err != nil {
		t.Fatalf("decode trace entry: %v", err)
	}
	if entry.Event != "catalog.loaded" || entry.Payload["terms"] != float64(3) {
		t.Fatalf("unexpected entry %#v", entry)
	}
}
