package logging_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/costar/internal/config"
	"github.com/katalvlaran/costar/internal/logging"
)

func TestNew_Levels(t *testing.T) {
	tests := map[string]logrus.Level{
		"debug":   logrus.DebugLevel,
		"INFO":    logrus.InfoLevel,
		"warning": logrus.WarnLevel,
		"error":   logrus.ErrorLevel,
		"":        logrus.InfoLevel,
	}
	for in, want := range tests {
		log := logging.New(config.Logging{Level: in})
		assert.Equal(t, want, log.GetLevel(), "level %q", in)
	}
}

func TestNew_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	log := logging.NewWithOutput(config.Logging{Level: "info", Format: "json"}, &buf)
	log.WithField("nodes", 3).Info("index built")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "index built", entry["msg"])
	assert.EqualValues(t, 3, entry["nodes"])
}
