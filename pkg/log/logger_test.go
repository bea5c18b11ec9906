package log

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_JSON(t *testing.T) {
	var buf bytes.Buffer
	Init(Options{LogLevel: zerolog.DebugLevel, Type: JSONLogger, Out: &buf})

	CLI.Debug().Uint("width", 8).Msg("comparing")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "cli", entry["component"])
	assert.Equal(t, "comparing", entry["message"])
	assert.EqualValues(t, 8, entry["width"])
}

func TestInit_ConsoleLevel(t *testing.T) {
	var buf bytes.Buffer
	Init(Options{LogLevel: zerolog.WarnLevel, Type: ConsoleLogger, Out: &buf})

	CLI.Info().Msg("hidden")
	assert.Empty(t, buf.String())

	CLI.Warn().Msg("shown")
	assert.Contains(t, buf.String(), "| WARN  |")
	assert.Contains(t, buf.String(), "shown")
	assert.NotContains(t, buf.String(), "\x1b[", "console output must not be coloured")
}

func TestParseLogLevel(t *testing.T) {
	lvl, err := ParseLogLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, zerolog.DebugLevel, lvl)

	_, err = ParseLogLevel("loud")
	assert.Error(t, err)
}
