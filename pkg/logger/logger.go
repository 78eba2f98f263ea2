package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger provides functionality for logging.
type Logger struct {
	*zerolog.Logger
}

// Options represents options for logger.
type Options struct {
	LogLevel        string
	LogFile         string
	PrettyLogOutput bool
	// MaxFileSizeMB is the size at which the log file gets rotated. (Used only with LogFile)
	MaxFileSizeMB int
}

func newFileWriter(filename string, maxSizeMB int) io.Writer {
	return &lumberjack.Logger{
		Filename: filename,
		MaxSize:  maxSizeMB,
		Compress: true,
	}
}

// New returns a new instance of logger.
func New(opts Options) (*Logger, error) {
	// By default create console writer
	writers := []io.Writer{os.Stdout}

	if opts.PrettyLogOutput {
		writers[0] = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Stamp}
	}

	if opts.LogFile != "" {
		writers = append(writers, newFileWriter(opts.LogFile, opts.MaxFileSizeMB))
	}

	level := zerolog.DebugLevel
	if opts.LogLevel != "" {
		var err error
		level, err = zerolog.ParseLevel(opts.LogLevel)
		if err != nil {
			return nil, fmt.Errorf("parse log level: %w", err)
		}
	}

	zeroLogger := zerolog.New(io.MultiWriter(writers...)).
		Level(level).
		With().Caller().Timestamp().
		Logger()

	return &Logger{&zeroLogger}, nil
}

// Nop returns a logger which discards everything. Useful in tests.
func Nop() *Logger {
	zeroLogger := zerolog.Nop()
	return &Logger{&zeroLogger}
}
