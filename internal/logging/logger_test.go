package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"debug":    zerolog.DebugLevel,
		"WARN":     zerolog.WarnLevel,
		"warning":  zerolog.WarnLevel,
		"error":    zerolog.ErrorLevel,
		"off":      zerolog.Disabled,
		"":         zerolog.InfoLevel,
		"nonsense": zerolog.InfoLevel,
	}
	for in, want := range tests {
		gt.Value(t, ParseLevel(in)).Equal(want)
	}
}

func TestInitJSON(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: "info", Format: "json", Output: &buf})
	t.Cleanup(func() { Init(DefaultConfig()) })

	Debug().Msg("hidden")
	Info().Str("visitor", "v1").Msg("visit recorded")

	out := buf.String()
	gt.Bool(t, strings.Contains(out, "hidden")).False()
	gt.String(t, out).Contains(`"visitor":"v1"`)
	gt.String(t, out).Contains(`"message":"visit recorded"`)
}
