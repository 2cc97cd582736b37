package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		viper.Reset()
		t.Setenv("GOOGLE_MAPS_API_KEY", "test-key")

		cfg, err := New()
		require.NoError(t, err)
		assert.Equal(t, "test-key", cfg.GoogleMapsAPIKey)
		assert.Equal(t, "zh-TW", cfg.PlacesLanguage)
		assert.Equal(t, "tw", cfg.PlacesRegion)
		assert.Equal(t, 10*time.Second, cfg.UpstreamTimeout)
		assert.Equal(t, 25.0478, cfg.FallbackLat)
		assert.Equal(t, 121.5319, cfg.FallbackLng)
		assert.Equal(t, 6060, cfg.APIPort)
		assert.Equal(t, 4, cfg.DetailsWorkers)
		assert.Empty(t, cfg.DetailsCachePath)
	})

	t.Run("environment overrides", func(t *testing.T) {
		viper.Reset()
		t.Setenv("GOOGLE_MAPS_API_KEY", "test-key")
		t.Setenv("PLACES_LANGUAGE", "en")
		t.Setenv("UPSTREAM_TIMEOUT", "3s")
		t.Setenv("API_PORT", "8080")

		cfg, err := New()
		require.NoError(t, err)
		assert.Equal(t, "en", cfg.PlacesLanguage)
		assert.Equal(t, 3*time.Second, cfg.UpstreamTimeout)
		assert.Equal(t, 8080, cfg.APIPort)
	})

	t.Run("missing api key", func(t *testing.T) {
		viper.Reset()
		t.Setenv("GOOGLE_MAPS_API_KEY", "")

		_, err := New()
		assert.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	valid := Config{
		GoogleMapsAPIKey: "k", FallbackLat: 25, FallbackLng: 121,
		UpstreamTimeout: time.Second, DetailsWorkers: 1, APIPort: 6060,
	}
	require.NoError(t, valid.Validate())

	bad := valid
	bad.FallbackLat = 120
	assert.Error(t, bad.Validate())

	bad = valid
	bad.DetailsWorkers = 0
	assert.Error(t, bad.Validate())

	bad = valid
	bad.APIPort = 70000
	assert.Error(t, bad.Validate())
}
