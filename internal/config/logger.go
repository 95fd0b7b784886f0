package config

import (
	"io"
	"log/slog"

	"github.com/lmittmann/tint"
	"gopkg.in/natefinch/lumberjack.v2"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// NewLogger logs colored text in development and JSON otherwise. With
// LogFile set every record is also appended to a rotated file; the
// returned closer releases it.
func NewLogger(c *Config, w io.Writer) (*slog.Logger, io.Closer) {
	var closer io.Closer = nopCloser{}
	if c.LogFile != "" {
		file := &lumberjack.Logger{
			Filename:   c.LogFile,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
		}
		w = io.MultiWriter(w, file)
		closer = file
	}

	if c.Development {
		return slog.New(tint.NewHandler(w, &tint.Options{
			Level:   slog.LevelDebug,
			NoColor: c.LogFile != "",
		})), closer
	}
	return slog.New(slog.NewJSONHandler(w, nil)), closer
}
