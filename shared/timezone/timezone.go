package timezone

import (
	"time"

	"github.com/rs/zerolog/log"
)

var (
	appLocation = time.UTC
)

// Init loads the named IANA location as the application timezone. An empty or unknown
// name leaves the application on UTC.
func Init(name string) {
	if name == "" {
		log.Warn().Msg("No timezone configured, using UTC as default")

		appLocation = time.UTC

		return
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Error().
			Err(err).
			Str("timezone", name).
			Msg("Failed to load timezone, falling back to UTC. Please use standard timezone names like 'Asia/Kolkata', 'UTC', 'Europe/London'")

		appLocation = time.UTC

		return
	}

	appLocation = loc

	log.Info().
		Str("timezone", name).
		Str("location", loc.String()).
		Msg("Application timezone initialized")
}

// Now returns the current time in the application timezone
func Now() time.Time {
	return time.Now().In(appLocation)
}

// ToAppTime converts a time to the application timezone
func ToAppTime(t time.Time) time.Time {
	return t.In(appLocation)
}

// GetLocation returns the current application timezone location
func GetLocation() *time.Location {
	return appLocation
}

// Parse parses a time string in the application timezone
func Parse(layout, value string) (time.Time, error) {
	return time.ParseInLocation(layout, value, appLocation) //nolint:wrapcheck
}

// Format formats a time in the application timezone
func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}

// Expired reports whether more than ttl has passed between since and now.
func Expired(since, now time.Time, ttl time.Duration) bool {
	return now.Sub(since) > ttl
}
