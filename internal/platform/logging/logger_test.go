package logging

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestLogger_WritesKeyValueFields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewJSONWriter(&buf, LevelInfo).Named("cache")

	logger.Warn("blob fallback used", "key", "agg:2024:3", "error", errors.New("redis down"))
	logger.Debug("suppressed")

	out := buf.String()
	for _, want := range []string{`"msg":"blob fallback used"`, `"key":"agg:2024:3"`, `"error":"redis down"`, `"component":"cache"`, `"level":"WARN"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %s in %s", want, out)
		}
	}
	if strings.Contains(out, "suppressed") {
		t.Fatalf("debug line should be filtered at info level: %s", out)
	}
}

func TestLogger_NilSafe(t *testing.T) {
	t.Parallel()

	var logger *Logger
	logger.Info("no panic", "k", 1)
	logger.With("a", "b").Warn("still no panic")
	if err := logger.Sync(); err != nil {
		t.Fatalf("sync on nil logger: %v", err)
	}
}
