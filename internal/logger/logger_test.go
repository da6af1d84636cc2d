package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_TextLevels(t *testing.T) {
	t.Cleanup(Reset)

	var buf bytes.Buffer
	Setup(Config{Writer: &buf})

	L().Debug("hidden")
	L().Info("config.default", "path", "arch-config.json")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "config.default")
	assert.Contains(t, out, "path=arch-config.json")
}

func TestSetup_JSONDebug(t *testing.T) {
	t.Cleanup(Reset)

	var buf bytes.Buffer
	Setup(Config{Writer: &buf, JSON: true, Debug: true})
	L().Debug("file.walked", "candidates", 3)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "file.walked", rec["msg"])
	assert.Equal(t, float64(3), rec["candidates"])
	assert.Contains(t, rec, "source")
}

func TestReset_Discards(t *testing.T) {
	var buf bytes.Buffer
	Setup(Config{Writer: &buf})
	Reset()
	L().Info("dropped")
	assert.Empty(t, buf.String())
}
