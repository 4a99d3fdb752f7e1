package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestLogger_JSON_WithFields(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Info, Format: FormatJSON, App: "personajes-api", Out: &buf})

	l.With(map[string]any{"request_id": "r1"}).Info("request", map[string]any{"status": 200})

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("invalid json line %q: %v", buf.String(), err)
	}
	if entry["app"] != "personajes-api" || entry["request_id"] != "r1" || entry["msg"] != "request" {
		t.Fatalf("unexpected entry %v", entry)
	}
	if entry["status"] != float64(200) || entry["level"] != "info" {
		t.Fatalf("unexpected entry %v", entry)
	}
}

func TestLogger_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Warn, Out: &buf})

	l.Debug("hidden", nil)
	l.Info("hidden", nil)
	l.Warn("shown", nil)

	out := buf.String()
	if strings.Count(out, "\n") != 1 || !strings.Contains(out, "msg=shown") {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestLogger_TextQuotesValuesWithSpaces(t *testing.T) {
	var buf bytes.Buffer
	New(Options{Out: &buf}).Info("persist failed", nil)

	if !strings.Contains(buf.String(), `msg="persist failed"`) {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestParseLevelAndFormat(t *testing.T) {
	if ParseLevel("WARNING") != Warn || ParseLevel("") != Info || ParseLevel("nope") != Info {
		t.Fatalf("unexpected level parsing")
	}
	if ParseFormat("JSON") != FormatJSON || ParseFormat("") != FormatText {
		t.Fatalf("unexpected format parsing")
	}
}
