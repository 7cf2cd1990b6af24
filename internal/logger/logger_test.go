package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestNew_JSONLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New("warn", "json", &buf)
	l.Info("dropped")
	l.Warn("catalog_empty", "city", "Ghost Town")

	out := strings.TrimSpace(buf.String())
	if strings.Contains(out, "dropped") {
		t.Fatalf("info record should be filtered at warn level: %s", out)
	}
	var rec map[string]any
	if err := json.Unmarshal([]byte(out), &rec); err != nil {
		t.Fatalf("expected one JSON record, got %q: %v", out, err)
	}
	if rec["msg"] != "catalog_empty" || rec["city"] != "Ghost Town" {
		t.Fatalf("unexpected record: %v", rec)
	}
}

func TestNew_TextDefault(t *testing.T) {
	var buf bytes.Buffer
	New("", "", &buf).Debug("hidden")
	New("", "", &buf).Info("shown")
	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "msg=shown") {
		t.Fatalf("unexpected text output: %q", out)
	}
}

func TestUse(t *testing.T) {
	prev := L()
	t.Cleanup(func() { Use(prev) })

	var buf bytes.Buffer
	Use(slog.New(slog.NewTextHandler(&buf, nil)))
	L().Info("swapped")
	if !strings.Contains(buf.String(), "swapped") {
		t.Fatalf("expected default logger to be replaced, got %q", buf.String())
	}
}
