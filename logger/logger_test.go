package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestNewLevelAndFormat(t *testing.T) {
	cases := []struct {
		name   string
		cfg    Config
		level  logrus.Level
		isJSON bool
	}{
		{"debug_text", Config{Level: "debug", Format: "text"}, logrus.DebugLevel, false},
		{"warn_json", Config{Level: "warn", Format: "JSON"}, logrus.WarnLevel, true},
		{"bad_level_falls_back", Config{Level: "chatty", Format: "text"}, logrus.InfoLevel, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var buf bytes.Buffer
			c.cfg.Output = &buf
			log := New(c.cfg)
			if log.GetLevel() != c.level {
				t.Fatalf("expected level %v, got %v", c.level, log.GetLevel())
			}
			log.WithField("wall", 3).Error("squish")
			out := buf.String()
			if !strings.Contains(out, "squish") {
				t.Fatalf("expected message in output, got %q", out)
			}
			var decoded map[string]any
			gotJSON := json.Unmarshal(buf.Bytes(), &decoded) == nil
			if gotJSON != c.isJSON {
				t.Fatalf("expected json=%v, got output %q", c.isJSON, out)
			}
		})
	}
}

func TestDiscard(t *testing.T) {
	log := Discard()
	log.Info("nothing")
}
