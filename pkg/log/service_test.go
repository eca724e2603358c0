package log

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	config "github.com/mwantia/gomemo/internal/config/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	assert.Equal(t, Debug, Parse("debug"))
	assert.Equal(t, Warn, Parse(" WARNING "))
	assert.Equal(t, Error, Parse("Error"))
	assert.Equal(t, Info, Parse("verbose"))
	assert.Equal(t, "FATAL", Fatal.String())
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriterLoggerService("gomemo", config.LogServerConfig{Level: "warn"}, &buf)

	logger.Info("hidden %d", 1)
	logger.Warn("shown %d", 2)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "WARN  [gomemo] shown 2")
}

func TestNamedJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriterLoggerService("gomemo", config.LogServerConfig{Level: "debug", JSON: true}, &buf)

	logger.Named("shortcut").Debug("fetched %d", 3)

	var entry logEntry
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(buf.String())), &entry))
	assert.Equal(t, "DEBUG", entry.Level)
	assert.Equal(t, "gomemo/shortcut", entry.Service)
	assert.Equal(t, "fetched 3", entry.Message)
}
