package app

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		name string
		want zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"INFO", zerolog.InfoLevel},
		{"Warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"nonsense", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLogLevel(tt.name), tt.name)
	}
}

func TestSetupLoggingTo(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.TraceLevel)

	var buf bytes.Buffer
	SetupLoggingTo(&buf, "warn", false)
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())

	log.Info().Msg("hidden")
	log.Warn().Str("component", "test").Msg("Shooting started!")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "Shooting started!")
	assert.Contains(t, buf.String(), "component=test")
}

// TestSetupLoggingTo_Verbose verbose 强制 debug 级别，但不会提高更详细的级别
func TestSetupLoggingTo_Verbose(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.TraceLevel)

	var buf bytes.Buffer
	SetupLoggingTo(&buf, "error", true)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())

	SetupLoggingTo(&buf, "trace", true)
	assert.Equal(t, zerolog.TraceLevel, zerolog.GlobalLevel())
}
