package logger

import (
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"hostel/config"
)

const envProduction = "production"

func InitLogger() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	log.Logger = log.Output(Writer(os.Getenv("SERVER_ENV"), os.Stdout))
	log.Trace().Msg("Zerolog initialized.")
}

// Writer picks the console writer for local runs and raw JSON lines in production.
func Writer(env string, out io.Writer) io.Writer {
	if env == envProduction {
		return out
	}

	return zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
}

func ErrorWithStack(err error) {
	log.Error().Msgf("%+v", errors.WithStack(err))
}

// Component returns the global logger tagged with a component field, used by the
// background workers so their lines can be told apart from request logs.
func Component(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

func SetLogLevel(config *config.Config) {
	level, err := zerolog.ParseLevel(config.Server.LogLevel)
	if err != nil || config.Server.LogLevel == "" {
		level = zerolog.TraceLevel
		log.Trace().Str("loglevel", level.String()).Msg("Environment has no log level set up, using default.")
	} else {
		log.Trace().Str("loglevel", level.String()).Msg("Desired log level detected.")
	}

	zerolog.SetGlobalLevel(level)
}
