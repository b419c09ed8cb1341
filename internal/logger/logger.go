package logger

import (
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var once sync.Once
var Log zerolog.Logger

// Stderr keeps stdout free for the simulation report.
var output io.Writer = os.Stderr

func configureLogger() {
	customTimeFormat := "2006-01-02T15:04:05.000Z07:00"
	zerolog.TimeFieldFormat = customTimeFormat

	consoleWriter := zerolog.ConsoleWriter{
		Out:        output,
		TimeFormat: customTimeFormat,
	}

	Log = zerolog.New(consoleWriter).With().Timestamp().Logger()
}

func GetLoggerConfigured(level zerolog.Level) *zerolog.Logger {
	once.Do(func() {
		configureLogger()
	})
	zerolog.SetGlobalLevel(level)
	return &Log
}

func GetLogger() *zerolog.Logger {
	once.Do(func() {
		configureLogger()
	})
	return &Log
}
