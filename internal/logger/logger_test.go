package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func captureLogger(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = prev })
	return &buf
}

func TestWithRequestIDTagsEvents(t *testing.T) {
	buf := captureLogger(t)

	l := WithRequestID("req-123")
	l.Info().Msg("hello")
	if !strings.Contains(buf.String(), `"request_id":"req-123"`) {
		t.Errorf("expected a request_id field, got %s", buf.String())
	}
}

func TestWithComponentTagsEvents(t *testing.T) {
	buf := captureLogger(t)

	l := WithComponent("billing")
	l.Info().Msg("hello")
	if !strings.Contains(buf.String(), `"component":"billing"`) {
		t.Errorf("expected a component field, got %s", buf.String())
	}
}

func TestSetupRejectsUnknownLevel(t *testing.T) {
	if err := Setup(Config{Level: "chatty", Format: "console"}); err == nil {
		t.Error("expected an error for an unknown level")
	}
}
