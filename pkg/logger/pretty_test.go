package logger

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestPrettyHandler_WritesMessageAndAttrs(t *testing.T) {
	var buf bytes.Buffer
	h := PrettyHandlerOptions{SlogOpts: &slog.HandlerOptions{Level: slog.LevelDebug}}.NewPrettyHandler(&buf)
	log := slog.New(h).With(slog.String("component", "store"))

	log.Info("document saved", slog.Int("bytes", 42))

	out := buf.String()
	if !strings.Contains(out, "document saved") {
		t.Fatalf("message missing: %q", out)
	}
	if !strings.Contains(out, `"component": "store"`) || !strings.Contains(out, `"bytes": 42`) {
		t.Fatalf("attrs missing: %q", out)
	}
}
