// Package log configures the global zerolog logger used across checkconnect.
package log

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init sets up a console logger on stderr. When logFilePath is non-empty and
// writable, log lines are mirrored into that file as JSON.
func Init(logFilePath string) {
	consoleWriter := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.ANSIC,
		FormatLevel: func(i any) string {
			return colorizeLevel(i.(string))
		},
	}

	writers := []io.Writer{consoleWriter}

	if logFilePath != "" {
		if file, err := openLogFile(logFilePath); err != nil {
			log.Warn().Msgf("Could not open log file '%s', file logging disabled: %v", logFilePath, err)
		} else {
			writers = append(writers, file)
		}
	}

	log.Logger = zerolog.New(zerolog.MultiLevelWriter(writers...)).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}

	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
}

// SetLevel sets the global logging level, falling back to info on bad input.
func SetLevel(level string) {
	logLevel, err := zerolog.ParseLevel(level)
	if err != nil {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		log.Warn().Msgf("Invalid log level '%s'. Using 'info' level.", level)
		return
	}

	zerolog.SetGlobalLevel(logLevel)
}

func colorizeLevel(level string) string {
	switch strings.ToLower(level) {
	case "debug":
		return "\033[36mDBG\033[0m"
	case "info":
		return "\033[32mINF\033[0m"
	case "warn":
		return "\033[33mWRN\033[0m"
	case "error":
		return "\033[31mERR\033[0m"
	case "fatal":
		return "\033[35mFTL\033[0m"
	case "panic":
		return "\033[41mPNC\033[0m"
	default:
		return level
	}
}
