package main

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("SENDGRID_API_KEY", "SG.test-key")
	t.Setenv("EMAIL_FROM", "weather@example.com")
	t.Setenv("EMAIL_TO", "one@example.com, two@example.com")
}

func TestLoadConfigDefaults(t *testing.T) {
	setRequiredEnv(t)

	config, err := loadConfig()
	require.NoError(t, err)

	assert.Equal(t, []string{"one@example.com", " two@example.com"}, config.EmailTo)
	assert.Equal(t, 39.36, config.Latitude)
	assert.Equal(t, -78.05, config.Longitude)
	assert.Equal(t, "America/New_York", config.Timezone)
	assert.Equal(t, "Inwood", config.SiteName)
	assert.Equal(t, "https://api.open-meteo.com", config.WeatherAPI)
	assert.Equal(t, 15*time.Second, config.RequestTimeout)
	assert.False(t, config.DryRun)
}

func TestLoadConfigMissingKey(t *testing.T) {
	t.Setenv("EMAIL_FROM", "weather@example.com")
	t.Setenv("EMAIL_TO", "one@example.com")

	// t.Setenv registers the restore, the unset makes the key truly absent
	for _, key := range []string{"SENDGRID_API_KEY", "WEATHERMAIL_SENDGRID_API_KEY"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	_, err := loadConfig()
	assert.Error(t, err)
}

func TestLoadConfigOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("LATITUDE", "47.61")
	t.Setenv("LONGITUDE", "-122.33")
	t.Setenv("TIMEZONE", "America/Los_Angeles")
	t.Setenv("DRY_RUN", "true")

	config, err := loadConfig()
	require.NoError(t, err)

	assert.Equal(t, 47.61, config.Latitude)
	assert.Equal(t, -122.33, config.Longitude)
	assert.Equal(t, "America/Los_Angeles", config.Timezone)
	assert.True(t, config.DryRun)
}

func TestRecipientsTrimsAndDropsEmpty(t *testing.T) {
	to := recipients([]string{"one@example.com", " two@example.com ", "", "  "})

	require.Len(t, to, 2)
	assert.Equal(t, "one@example.com", to[0].Address)
	assert.Equal(t, "two@example.com", to[1].Address)
}
