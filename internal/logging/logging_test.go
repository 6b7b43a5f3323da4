package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WritesServiceField(t *testing.T) {
	var buf bytes.Buffer
	log := New("debug", "gameyoutube", &buf)
	log.Debug().Str("channel_id", "c1").Msg("upload")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "gameyoutube", line["service"])
	assert.Equal(t, "upload", line["message"])
	assert.Equal(t, "c1", line["channel_id"])
	assert.Contains(t, line, "time")
}

func TestNew_UnknownLevelIsInfo(t *testing.T) {
	var buf bytes.Buffer
	log := New("loud", "svc", &buf)
	log.Debug().Msg("hidden")
	assert.Zero(t, buf.Len())

	log.Info().Msg("shown")
	assert.NotZero(t, buf.Len())
}
