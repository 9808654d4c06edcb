package helper

//nolint:revive
import (
	"errors"
	"fmt"
	"net"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"

	"hostel/config"
)

const migrationSource = "file://migrations/postgres"

const (
	ActionUp      = "up"
	ActionDown    = "down"
	ActionStepUp  = "step-up"
	ActionDrop    = "drop"
	ActionVersion = "version"
)

var ErrUnknownAction = errors.New("unknown migration action")

func getDBName(config *config.Config, baseName string) string {
	if config.DB.Postgres.Prefix != "" {
		return config.DB.Postgres.Prefix + baseName
	}

	return baseName
}

// DSN is the write connection in the URL form golang-migrate expects, with the
// migrations table taken from config.
func DSN(config *config.Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s&x-migrations-table=%s",
		config.DB.Postgres.Write.Username,
		config.DB.Postgres.Write.Password,
		net.JoinHostPort(config.DB.Postgres.Write.Host, config.DB.Postgres.Write.Port),
		getDBName(config, config.DB.Postgres.Write.Name),
		config.DB.Postgres.Write.SSLMode,
		config.DB.Postgres.MigrationTable,
	)
}

func Runner(config *config.Config, action string) error {
	mig, err := migrate.New(migrationSource, DSN(config))
	if err != nil {
		return fmt.Errorf("error creating migrate instance: %w", err)
	}

	defer func() {
		if srcErr, dbErr := mig.Close(); srcErr != nil || dbErr != nil {
			log.Warn().AnErr("source", srcErr).AnErr("database", dbErr).Msg("failed to close migrate instance")
		}
	}()

	switch action {
	case ActionUp:
		err = mig.Up()
	case ActionDown:
		err = mig.Steps(-1)
	case ActionStepUp:
		err = mig.Steps(1)
	case ActionDrop:
		err = mig.Down()
	case ActionVersion:
		version, dirty, err := mig.Version()
		if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
			return fmt.Errorf("error reading migration version: %w", err)
		}

		log.Info().Uint("version", version).Bool("dirty", dirty).Msg("Current database migration version")

		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("error running %s migration: %w", action, err)
	}

	log.Info().Str("action", action).Msg("Database migration completed successfully")

	return nil
}
