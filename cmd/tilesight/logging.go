package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/lixenwraith/tilesight/config"
	"github.com/lixenwraith/tilesight/logger"
)

const maxLogSize = 10 * 1024 * 1024

// setupLogging points the global logger at the configured file, rotating it
// once it exceeds maxLogSize. The terminal is owned by tcell, so an empty
// file name discards log output instead of writing to stdout.
func setupLogging(cfg config.LogConfig, debug bool) (*os.File, error) {
	level := cfg.Level
	if debug {
		level = "debug"
	}
	if cfg.File == "" {
		logger.Init(logger.Options{Level: level, Format: cfg.Format, Out: io.Discard})
		return nil, nil
	}

	if dir := filepath.Dir(cfg.File); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create log directory: %w", err)
		}
	}
	if err := rotateLog(cfg.File); err != nil {
		return nil, err
	}

	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	logger.Init(logger.Options{Level: level, Format: cfg.Format, Out: f})
	return f, nil
}

// rotateLog renames path with a timestamp suffix if it has grown too large
func rotateLog(path string) error {
	info, err := os.Stat(path)
	if err != nil || info.Size() <= maxLogSize {
		return nil
	}
	ext := filepath.Ext(path)
	base := path[:len(path)-len(ext)]
	rotated := fmt.Sprintf("%s_%s%s", base, time.Now().Format("20060102_150405"), ext)
	if err := os.Rename(path, rotated); err != nil {
		return fmt.Errorf("rotate log: %w", err)
	}
	return nil
}
