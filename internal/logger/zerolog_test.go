package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, raw string) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(raw), "\n") {
		if line == "" {
			continue
		}
		entry := map[string]any{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		out = append(out, entry)
	}
	return out
}

func TestZerologAdapter_EmitsComponentAndFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, zerolog.DebugLevel)

	log.Info("Store", "article inserted", map[string]interface{}{"article_id": 7})
	log.Error("Controller", errors.New("disk full"), map[string]interface{}{"action": "export"})

	lines := decodeLines(t, buf.String())
	require.Len(t, lines, 2)

	require.Equal(t, "info", lines[0]["level"])
	require.Equal(t, "Store", lines[0]["component"])
	require.Equal(t, "article inserted", lines[0]["message"])
	require.EqualValues(t, 7, lines[0]["article_id"])
	require.NotEmpty(t, lines[0]["session"])

	require.Equal(t, "error", lines[1]["level"])
	require.Equal(t, "disk full", lines[1]["error"])
	require.Equal(t, "export", lines[1]["action"])
	require.Equal(t, lines[0]["session"], lines[1]["session"])
}

func TestZerologAdapter_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, zerolog.WarnLevel)

	log.Debug("Store", "hidden", nil)
	log.Info("Store", "hidden", nil)
	log.Warning("Store", "shown", nil)

	lines := decodeLines(t, buf.String())
	require.Len(t, lines, 1)
	require.Equal(t, "shown", lines[0]["message"])
}

func TestNew_UnknownLevelFallsBackToInfo(t *testing.T) {
	log := New("chatty", false)
	require.Equal(t, zerolog.InfoLevel, log.logger.GetLevel())
}
