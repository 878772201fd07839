package log

import (
	"io"
	"log/slog"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Rotation limits for the run log.
const (
	runLogMaxSizeMB  = 5
	runLogMaxBackups = 3
	runLogMaxAgeDays = 28
)

// OpenRunLog creates a structured logger appending to a size-rotated file at
// path. The returned io.Closer must be closed to flush pending writes.
func OpenRunLog(path string) (*slog.Logger, io.Closer) {
	lj := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    runLogMaxSizeMB,
		MaxBackups: runLogMaxBackups,
		MaxAge:     runLogMaxAgeDays,
	}
	return NewRunLog(lj), lj
}

// NewRunLog creates a structured run logger writing text records to w.
func NewRunLog(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
