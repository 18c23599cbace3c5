package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestInit_JSONOutsideDevelopment(t *testing.T) {
	var buf bytes.Buffer
	logger := Init(false, "info", &buf)

	logger.Info().Str("appointment", "abc").Msg("appointment saved")

	var line map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("Expected JSON output, got %q: %v", buf.String(), err)
	}
	for _, key := range []string{"time", "caller", "service", "message"} {
		if _, ok := line[key]; !ok {
			t.Errorf("Expected key %q in %v", key, line)
		}
	}
	if line["service"] != "hilom" {
		t.Errorf("Expected service hilom, got %v", line["service"])
	}
}

func TestInit_ConsoleInDevelopment(t *testing.T) {
	var buf bytes.Buffer
	logger := Init(true, "debug", &buf)

	logger.Debug().Msg("booking started")

	out := buf.String()
	if !strings.Contains(out, "booking started") {
		t.Errorf("Expected message in console output, got %q", out)
	}
	if strings.HasPrefix(strings.TrimSpace(out), "{") {
		t.Errorf("Expected console format, got JSON %q", out)
	}
}

func TestInit_Level(t *testing.T) {
	tests := []struct {
		level string
		want  zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"WARN", zerolog.WarnLevel},
		{"", zerolog.InfoLevel},
		{"nonsense", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		var buf bytes.Buffer
		Init(false, tt.level, &buf)
		if got := zerolog.GlobalLevel(); got != tt.want {
			t.Errorf("Level %q: expected %s, got %s", tt.level, tt.want, got)
		}
	}
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}
