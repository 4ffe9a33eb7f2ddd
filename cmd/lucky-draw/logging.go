package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	logFileName = "lucky-draw.log"
	maxLogSize  = 10 * 1024 * 1024
)

// setupLogging points the global logger at dir/lucky-draw.log when debug is set
// Without debug every log call is discarded; the terminal is never written to
// Returns the open log file for the caller to close, or nil
func setupLogging(debug bool, dir string) *os.File {
	if !debug {
		log.Logger = zerolog.New(io.Discard).Level(zerolog.Disabled)
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Logger = zerolog.New(io.Discard).Level(zerolog.Disabled)
		return nil
	}

	logPath := filepath.Join(dir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(dir, fmt.Sprintf("lucky-draw-%s.log", time.Now().Format("20060102-150405")))
		_ = os.Rename(logPath, rotated)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.Logger = zerolog.New(io.Discard).Level(zerolog.Disabled)
		return nil
	}

	log.Logger = zerolog.New(f).With().Timestamp().Logger().Level(zerolog.DebugLevel)
	return f
}
