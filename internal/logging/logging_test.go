// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Level != LevelInfo {
		t.Errorf("Expected info level, got %v", cfg.Level)
	}
	if cfg.JSON {
		t.Error("Default should be text output")
	}
	if cfg.Output == nil {
		t.Error("Default output should be set")
	}
}

func TestWithComponent_Text(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: LevelDebug, Output: &buf}).WithComponent("synth")

	logger.Info("Synthesized categories", "count", 3)

	out := buf.String()
	if !strings.Contains(out, "component=synth") {
		t.Errorf("Expected component attribute, got %q", out)
	}
	if !strings.Contains(out, "count=3") {
		t.Errorf("Expected count attribute, got %q", out)
	}
}

func TestJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: LevelInfo, Output: &buf, JSON: true})

	logger.Warn("Spec has undeclared tag", "tag", "Webhooks")

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("Expected JSON record, got %q: %v", buf.String(), err)
	}
	if rec["tag"] != "Webhooks" {
		t.Errorf("Expected tag=Webhooks, got %v", rec["tag"])
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: LevelError, Output: &buf})

	logger.Info("hidden")
	logger.Debug("hidden")
	if buf.Len() != 0 {
		t.Errorf("Expected nothing below error level, got %q", buf.String())
	}

	logger.Error("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("Expected error record, got %q", buf.String())
	}
}

func TestSetDefault(t *testing.T) {
	prev := Default()
	defer SetDefault(prev)

	var buf bytes.Buffer
	SetDefault(New(Config{Level: LevelInfo, Output: &buf}))
	WithComponent("cli").Info("hello")

	if !strings.Contains(buf.String(), "component=cli") {
		t.Errorf("Expected default logger to be replaced, got %q", buf.String())
	}

	SetDefault(nil)
	if Default() == nil {
		t.Error("SetDefault(nil) must not clear the logger")
	}
}
