package client_test

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sohail9972/Trip-planner-EaseMyTrip/client"
)

func TestNew_DefaultsFromEnv(t *testing.T) {
	t.Setenv("TRIPPLANNER_SERVICE_URL", "http://example.test/api/v1")
	t.Setenv("TRIPPLANNER_CREDENTIAL_FILE", filepath.Join(t.TempDir(), "token"))

	c, err := client.New("")
	require.NoError(t, err)
	defer func() { _ = c.Close() }()

	assert.Equal(t, "http://example.test/api/v1", c.BaseURL())
}

func TestNew_ExplicitBaseURLWins(t *testing.T) {
	t.Setenv("TRIPPLANNER_SERVICE_URL", "http://ignored.test")
	t.Setenv("TRIPPLANNER_CREDENTIAL_FILE", filepath.Join(t.TempDir(), "token"))

	c, err := client.New("http://explicit.test/api/v1")
	require.NoError(t, err)
	defer func() { _ = c.Close() }()

	assert.Equal(t, "http://explicit.test/api/v1", c.BaseURL())
}

func TestNew_OptionValidation(t *testing.T) {
	t.Parallel()

	_, err := client.New("http://x.test", client.WithHTTPTimeout(0))
	require.Error(t, err)

	_, err = client.New("http://x.test", client.WithCredentialStore(nil))
	require.Error(t, err)

	_, err = client.New("http://x.test", client.WithCredentialPath(""))
	require.Error(t, err)

	_, err = client.New("http://x.test", client.WithNotifier(nil))
	require.Error(t, err)

	_, err = client.New("http://x.test", client.WithNavigator(nil))
	require.Error(t, err)
}

func TestNew_WithOptions(t *testing.T) {
	t.Parallel()
	c, err := client.New("http://x.test",
		client.WithHTTPTimeout(5*time.Second),
		client.WithCredentialStore(client.NewMemCredentialStore("")),
	)
	require.NoError(t, err)
	require.NoError(t, c.Close())
	require.NoError(t, c.Close(), "close is idempotent")
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("TRIPPLANNER_SERVICE_URL", "http://cfg.test/api/v1")
	t.Setenv("TRIPPLANNER_HTTP_TIMEOUT", "7s")

	cfg, err := client.ConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "http://cfg.test/api/v1", cfg.ServiceURL)
	assert.Equal(t, 7*time.Second, cfg.HTTPTimeout)
}

func TestEnumReexports(t *testing.T) {
	t.Parallel()
	// Enum values are part of the public surface: consumers build requests
	// from the client package alone, without importing internal types.
	assert.Equal(t, client.TripStatus("planning"), client.TripStatusPlanning)
	assert.Equal(t, client.BudgetLevel("mid_range"), client.BudgetMid)
	assert.Equal(t, client.TripTheme("food"), client.ThemeFood)
	assert.Equal(t, client.TripTheme("cultural"), client.ThemeCultural)
	assert.Equal(t, client.TripTheme("road_trip"), client.ThemeRoadTrip)
	assert.Equal(t, client.TravelerType("couple"), client.TravelerCouple)
	assert.Equal(t, client.TravelerType("solo"), client.TravelerSolo)
}

func TestErrorMessage_FallbackForForeignErrors(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "fallback", client.ErrorMessage(errors.New("plain"), "fallback"))
	assert.Equal(t, "fallback", client.ErrorMessage(nil, "fallback"))
}
