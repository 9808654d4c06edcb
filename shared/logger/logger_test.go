package logger_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"

	"hostel/config"
	"hostel/shared/logger"
)

func TestInitLogger(t *testing.T) {
	originalLogger := log.Logger
	defer func() { log.Logger = originalLogger }()

	logger.InitLogger()

	assert.Equal(t, zerolog.TimeFormatUnix, zerolog.TimeFieldFormat)
	assert.Equal(t, zerolog.TraceLevel, zerolog.GlobalLevel())
}

func TestWriter(t *testing.T) {
	var buf bytes.Buffer

	assert.Same(t, &buf, logger.Writer("production", &buf))
	assert.IsType(t, zerolog.ConsoleWriter{}, logger.Writer("development", &buf))
	assert.IsType(t, zerolog.ConsoleWriter{}, logger.Writer("", &buf))
}

func TestErrorWithStack(t *testing.T) {
	originalLogger := log.Logger
	defer func() { log.Logger = originalLogger }()

	var buf bytes.Buffer
	log.Logger = log.Output(&buf)

	logger.ErrorWithStack(errors.New("seat ledger unavailable"))

	assert.Contains(t, buf.String(), "seat ledger unavailable")
	assert.Contains(t, buf.String(), `"level":"error"`)
}

func TestComponent(t *testing.T) {
	originalLogger := log.Logger
	defer func() { log.Logger = originalLogger }()

	var buf bytes.Buffer
	log.Logger = log.Output(&buf)

	l := logger.Component("notifier")
	l.Info().Msg("started")

	assert.Contains(t, buf.String(), `"component":"notifier"`)
}

func TestSetLogLevel(t *testing.T) {
	originalLevel := zerolog.GlobalLevel()
	defer zerolog.SetGlobalLevel(originalLevel)

	tests := []struct {
		name     string
		level    string
		expected zerolog.Level
	}{
		{name: "debug", level: "debug", expected: zerolog.DebugLevel},
		{name: "warn", level: "warn", expected: zerolog.WarnLevel},
		{name: "empty falls back to trace", level: "", expected: zerolog.TraceLevel},
		{name: "unknown falls back to trace", level: "verbose", expected: zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.Server.LogLevel = tt.level

			logger.SetLogLevel(cfg)

			assert.Equal(t, tt.expected, zerolog.GlobalLevel())
		})
	}
}
