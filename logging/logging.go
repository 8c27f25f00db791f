package logging

import (
	"io"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"gopkg.in/natefinch/lumberjack.v2"
)

// FileOptions rotation settings for an optional log file
type FileOptions struct {
	Path       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// Output returns console alone, or console and a rotating file when opts.Path is set.
// The closer releases the file.
func Output(console io.Writer, opts FileOptions) (io.Writer, io.Closer) {
	if opts.Path == "" {
		return console, io.NopCloser(nil)
	}
	file := &lumberjack.Logger{
		Filename:   opts.Path,
		MaxSize:    opts.MaxSizeMB,
		MaxBackups: opts.MaxBackups,
		MaxAge:     opts.MaxAgeDays,
		Compress:   opts.Compress,
	}
	return io.MultiWriter(console, file), file
}

// New builds the process logger: logfmt (default) or json, stamped with ts and
// caller, and filtered to lvl. An unknown lvl falls back to info.
func New(w io.Writer, format string, lvl string) log.Logger {
	w = log.NewSyncWriter(w)

	var logger log.Logger
	if strings.EqualFold(format, "json") {
		logger = log.NewJSONLogger(w)
	} else {
		logger = log.NewLogfmtLogger(w)
	}
	logger = level.NewFilter(logger, level.Allow(level.ParseDefault(lvl, level.InfoValue())))
	return log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)
}

// Component returns a child logger tagged with the component name
func Component(logger log.Logger, name string) log.Logger {
	return log.With(logger, "component", name)
}
