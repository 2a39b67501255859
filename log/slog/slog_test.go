package slog

import (
	"bytes"
	"encoding/json"
	stdslog "log/slog"
	"testing"

	"github.com/unkn0wn-root/redkv"
)

func TestSlogLoggerWritesAttrs(t *testing.T) {
	var buf bytes.Buffer
	h := stdslog.NewJSONHandler(&buf, &stdslog.HandlerOptions{Level: stdslog.LevelDebug})
	l := Logger{L: stdslog.New(h)}

	l.Info("handle created", redkv.Fields{"ns": "sessions", "owned": true})

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("decode log line %q: %v", buf.String(), err)
	}
	if line["msg"] != "handle created" || line["level"] != "INFO" {
		t.Fatalf("unexpected line: %v", line)
	}
	if line["ns"] != "sessions" || line["owned"] != true {
		t.Fatalf("attrs missing: %v", line)
	}
}

func TestSlogLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	h := stdslog.NewJSONHandler(&buf, &stdslog.HandlerOptions{Level: stdslog.LevelWarn})
	l := Logger{L: stdslog.New(h)}

	l.Debug("dropped", nil)
	if buf.Len() != 0 {
		t.Fatalf("debug should be filtered at warn level, got %q", buf.String())
	}
	l.Error("kept", nil)
	if buf.Len() == 0 {
		t.Fatalf("error line missing")
	}
}
