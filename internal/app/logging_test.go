package app

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	cases := []struct {
		name      string
		level     string
		format    string
		wantErr   string
		wantDebug bool
		wantJSON  bool
	}{
		{name: "defaults_to_json_info", wantJSON: true},
		{name: "debug_text", level: "debug", format: "text", wantDebug: true},
		{name: "bad_level", level: "loud", wantErr: "LOG_LEVEL"},
		{name: "bad_format", format: "xml", wantErr: "LOG_FORMAT"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger, err := NewLogger(&buf, tc.level, tc.format)
			if tc.wantErr != "" {
				assert.ErrorContains(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)

			logger.Debug("debug line")
			logger.Info("info line", "prompt_id", "prm_1")

			out := buf.String()
			assert.Equal(t, tc.wantDebug, bytes.Contains(buf.Bytes(), []byte("debug line")))
			assert.Contains(t, out, "info line")
			if tc.wantJSON {
				var entry map[string]any
				require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
				assert.Equal(t, "prm_1", entry["prompt_id"])
			}
		})
	}
}
