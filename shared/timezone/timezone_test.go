package timezone_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hostel/shared/timezone"
)

func TestInit(t *testing.T) {
	defer timezone.Init("UTC")

	tests := []struct {
		name     string
		zone     string
		expected string
	}{
		{name: "named zone", zone: "Asia/Kolkata", expected: "Asia/Kolkata"},
		{name: "empty falls back to utc", zone: "", expected: "UTC"},
		{name: "unknown falls back to utc", zone: "Mars/Olympus", expected: "UTC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			timezone.Init(tt.zone)

			assert.Equal(t, tt.expected, timezone.GetLocation().String())
			assert.Equal(t, tt.expected, timezone.Now().Location().String())
		})
	}
}

func TestParseAndFormat(t *testing.T) {
	timezone.Init("Asia/Kolkata")
	defer timezone.Init("UTC")

	parsed, err := timezone.Parse("2006-01-02 15:04", "2024-07-01 09:30")
	require.NoError(t, err)

	assert.Equal(t, "Asia/Kolkata", parsed.Location().String())
	assert.Equal(t, "2024-07-01 04:00", parsed.UTC().Format("2006-01-02 15:04"))

	utc := time.Date(2024, 7, 1, 4, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-07-01 09:30", timezone.Format(utc, "2006-01-02 15:04"))
}

func TestExpired(t *testing.T) {
	issued := time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC)

	assert.False(t, timezone.Expired(issued, issued.Add(23*time.Hour), 24*time.Hour))
	assert.False(t, timezone.Expired(issued, issued.Add(24*time.Hour), 24*time.Hour))
	assert.True(t, timezone.Expired(issued, issued.Add(24*time.Hour+time.Second), 24*time.Hour))
}
