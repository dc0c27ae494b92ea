package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew_NoFileIsNop(t *testing.T) {
	l, err := New(Options{})
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zap.ErrorLevel))
}

func TestNew_WritesJSONLines(t *testing.T) {
	p := filepath.Join(t.TempDir(), "logs", "notepad.log")

	l, err := New(Options{File: p, Debug: true})
	require.NoError(t, err)
	l.Debug("render", zap.Int("cards", 6))
	l.Info("started")
	_ = l.Sync()

	b, err := os.ReadFile(p)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(b)), "\n")
	require.Len(t, lines, 2)

	var first map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, "render", first["msg"])
	assert.Equal(t, "debug", first["level"])
	assert.EqualValues(t, 6, first["cards"])
}

func TestNew_InfoLevelByDefault(t *testing.T) {
	p := filepath.Join(t.TempDir(), "notepad.log")
	l, err := New(Options{File: p})
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zap.DebugLevel))
	assert.True(t, l.Core().Enabled(zap.InfoLevel))
}
