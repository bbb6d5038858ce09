package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/tilesight/config"
	"github.com/lixenwraith/tilesight/logger"
)

func TestSetupLogging_NoFileDiscards(t *testing.T) {
	f, err := setupLogging(config.LogConfig{Level: "info"}, false)
	require.NoError(t, err)
	assert.Nil(t, f)
	assert.NotEqual(t, os.Stdout, logger.Log.Out)
	assert.NotEqual(t, os.Stderr, logger.Log.Out)
}

func TestSetupLogging_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "tilesight.log")
	f, err := setupLogging(config.LogConfig{Level: "info", File: path}, true)
	require.NoError(t, err)
	require.NotNil(t, f)
	defer f.Close()

	assert.Equal(t, logrus.DebugLevel, logger.Log.GetLevel(), "debug flag wins")
	logger.Log.Info("test log message")

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestSetupLogging_Rotation(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tilesight.log")
	require.NoError(t, os.WriteFile(path, make([]byte, maxLogSize+1), 0644))

	f, err := setupLogging(config.LogConfig{File: path}, false)
	require.NoError(t, err)
	defer f.Close()

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	rotated := 0
	for _, e := range entries {
		if e.Name() != "tilesight.log" && filepath.Ext(e.Name()) == ".log" {
			rotated++
		}
	}
	assert.Equal(t, 1, rotated)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Less(t, info.Size(), int64(maxLogSize))
}
