package jsonlog

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
)

func TestNew_EmitsJSONLine(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelInfo)

	logger.Info("http_request", "rid", "abc", "status", 200)

	var m map[string]any
	if err := json.Unmarshal(buf.Bytes(), &m); err != nil {
		t.Fatalf("unmarshal: %v; line=%s", err, buf.String())
	}
	if m["msg"] != "http_request" || m["level"] != "INFO" || m["rid"] != "abc" {
		t.Fatalf("line=%v", m)
	}
	if _, ok := m["ts"]; !ok {
		t.Fatalf("expected ts key, got %v", m)
	}
	if _, ok := m["time"]; ok {
		t.Fatalf("time key should be renamed, got %v", m)
	}
}

func TestNew_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelWarn)

	logger.Info("dropped")
	if buf.Len() != 0 {
		t.Fatalf("expected nothing, got %s", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		" warn": slog.LevelWarn,
		"error": slog.LevelError,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		if err != nil {
			t.Fatalf("ParseLevel(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseLevel(%q)=%v want=%v", in, got, want)
		}
	}

	if _, err := ParseLevel("loud"); err == nil {
		t.Fatalf("expected error")
	}
}
