package logger

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_LevelAndFormat(t *testing.T) {
	buf := &bytes.Buffer{}
	Init(Options{Level: "debug", Format: "json", Out: buf})

	require.Equal(t, logrus.DebugLevel, Log.GetLevel())

	Component("arena").WithField("bytes", 64).Debug("allocated")
	out := buf.String()
	assert.Contains(t, out, `"component":"arena"`)
	assert.Contains(t, out, `"bytes":64`)
	assert.Contains(t, out, `"msg":"allocated"`)
}

func TestInit_BadLevelFallsBackToInfo(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	buf := &bytes.Buffer{}
	Init(Options{Level: "chatty", Out: buf})

	assert.Equal(t, logrus.InfoLevel, Log.GetLevel())

	Log.Debug("hidden")
	Log.Info("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestInit_EnvironmentOverride(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")
	buf := &bytes.Buffer{}
	Init(Options{Out: buf})

	assert.Equal(t, logrus.ErrorLevel, Log.GetLevel())
}
