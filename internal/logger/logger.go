package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// NewLogger builds the process logger and sets it as the zerolog global logger.
// Locally it writes human readable lines to stdout, on the server it appends JSON to logFilePath.
func NewLogger(shouldOutputToConcole bool, logFilePath string) zerolog.Logger {
	var output io.Writer

	if shouldOutputToConcole {
		output = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.TimeOnly}
	} else { // its on server. so log to file
		if err := os.MkdirAll(filepath.Dir(logFilePath), 0o755); err != nil {
			os.Stderr.Write([]byte(fmt.Sprintf("Error creating the log dir, Error: %v", err)))
			os.Exit(1)
		}
		file, err := os.OpenFile(
			logFilePath,
			os.O_APPEND|os.O_CREATE|os.O_WRONLY,
			0664,
		)
		if err != nil {
			os.Stderr.Write([]byte(fmt.Sprintf("Error opening the log file for write, Error: %v", err)))
			os.Exit(1)
		}
		output = file
	}

	zerolog.DurationFieldUnit = time.Millisecond
	zerolog.DefaultContextLogger = nil
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return filepath.Base(file) + ":" + strconv.Itoa(line)
	}

	level := zerolog.InfoLevel
	if shouldOutputToConcole {
		level = zerolog.DebugLevel
	}

	log.Logger = zerolog.New(output).Level(level).With().Caller().Timestamp().Logger()

	return log.Logger
}
