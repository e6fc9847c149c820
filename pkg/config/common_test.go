package config

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreLogger(t *testing.T) {
	level, formatter := logrus.GetLevel(), logrus.StandardLogger().Formatter
	t.Cleanup(func() {
		logrus.SetLevel(level)
		logrus.SetFormatter(formatter)
		logrus.SetOutput(os.Stderr)
	})
}

func TestSetupLogging(t *testing.T) {
	testCases := []struct {
		name     string
		options  CommonOptions
		expected logrus.Level
	}{
		{
			name:     "default",
			options:  CommonOptions{},
			expected: logrus.InfoLevel,
		},
		{
			name:     "debug",
			options:  CommonOptions{Debug: true},
			expected: logrus.DebugLevel,
		},
		{
			name:     "trace wins over debug",
			options:  CommonOptions{Debug: true, Trace: true},
			expected: logrus.TraceLevel,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			restoreLogger(t)
			logrus.SetLevel(logrus.InfoLevel)
			require.NoError(t, tc.options.SetupLogging(&bytes.Buffer{}))
			assert.Equal(t, tc.expected, logrus.GetLevel(), "case %q", tc.name)
		})
	}
}

func TestSetupLoggingJSON(t *testing.T) {
	restoreLogger(t)
	var buf bytes.Buffer
	require.NoError(t, CommonOptions{LogFormat: LogFormatJSON}.SetupLogging(&buf))

	logrus.WithField("kind", "Job").Info("loaded")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "loaded", entry["msg"])
	assert.Equal(t, "Job", entry["kind"])
}

func TestSetupLoggingRejectsUnknownFormat(t *testing.T) {
	restoreLogger(t)
	err := CommonOptions{LogFormat: "xml"}.SetupLogging(&bytes.Buffer{})
	assert.EqualError(t, err, `unsupported log format "xml", use text or json`)
}

func TestEnvGetBool(t *testing.T) {
	t.Setenv("MEDIACONVERT_TEST_FLAG", "true")
	assert.True(t, EnvGetBool("MEDIACONVERT_TEST_FLAG", false))

	t.Setenv("MEDIACONVERT_TEST_FLAG", "maybe")
	assert.True(t, EnvGetBool("MEDIACONVERT_TEST_FLAG", true))
	assert.False(t, EnvGetBool("MEDIACONVERT_TEST_FLAG", false))
}

func TestSetupLoggingTextWithoutTerminal(t *testing.T) {
	restoreLogger(t)
	var buf bytes.Buffer
	require.NoError(t, CommonOptions{}.SetupLogging(&buf))

	logrus.Info("loaded")
	assert.Contains(t, buf.String(), `level=info msg=loaded`)
	assert.NotContains(t, buf.String(), "\x1b[")
}

func TestSetupLoggingResetsLevel(t *testing.T) {
	restoreLogger(t)
	require.NoError(t, CommonOptions{Trace: true}.SetupLogging(&bytes.Buffer{}))
	require.Equal(t, logrus.TraceLevel, logrus.GetLevel())

	require.NoError(t, CommonOptions{}.SetupLogging(&bytes.Buffer{}))
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}
