package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	testCases := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"TRACE", zapcore.DebugLevel},
		{" info ", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"Error", zapcore.ErrorLevel},
		{"", zapcore.WarnLevel},
		{"loud", zapcore.WarnLevel},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, ParseLevel(tc.in), "level %q", tc.in)
	}
}

func TestNewWithWriter_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, "warn", false)

	logger.Debug("hidden")
	logger.Warn("state file unusable")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "state file unusable")
}

func TestNewWithWriter_VerboseEnablesDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, "error", true)

	logger.Debug("running git")

	assert.Contains(t, buf.String(), "running git")
}
