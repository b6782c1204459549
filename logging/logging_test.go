package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNew_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "warn", "text")

	log.Debug("hidden")
	log.Info("hidden")
	log.Warn("visible")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("below-level records leaked: %q", out)
	}
	if !strings.Contains(out, "visible") {
		t.Errorf("warn record missing: %q", out)
	}
}

func TestNew_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "info", "json")

	log.Info("hello", "component", "rest")

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if record["msg"] != "hello" || record["component"] != "rest" {
		t.Errorf("unexpected record: %v", record)
	}
}

func TestWith_AddsDefaultAttrs(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "info", "text").With("component", "session")

	log.Info("ok")

	if !strings.Contains(buf.String(), "component=session") {
		t.Errorf("default attr missing: %q", buf.String())
	}
}

func TestParseLevel_UnknownDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "verbose", "text")

	log.Debug("hidden")
	log.Info("visible")

	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "visible") {
		t.Errorf("unexpected output: %q", buf.String())
	}
}
