package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	GoogleMapsAPIKey string
	PlacesBaseURL    string
	PlacesLanguage   string
	PlacesRegion     string
	UpstreamTimeout  time.Duration

	FallbackLat float64
	FallbackLng float64

	DetailsCacheTTL  time.Duration
	DetailsCachePath string // bbolt file. empty keeps details in memory
	DetailsWorkers   int
	DefaultEnrichTop int

	APIPort       int
	APITimeout    time.Duration
	SessionSecret string
}

func setDefaults() {
	viper.SetDefault("PLACES_BASE_URL", "https://maps.googleapis.com")
	viper.SetDefault("PLACES_LANGUAGE", "zh-TW")
	viper.SetDefault("PLACES_REGION", "tw")
	viper.SetDefault("UPSTREAM_TIMEOUT", "10s")

	// Taipei Main Station
	viper.SetDefault("FALLBACK_LAT", 25.0478)
	viper.SetDefault("FALLBACK_LNG", 121.5319)

	viper.SetDefault("DETAILS_CACHE_TTL", "24h")
	viper.SetDefault("DETAILS_CACHE_PATH", "")
	viper.SetDefault("DETAILS_WORKERS", 4)
	viper.SetDefault("DEFAULT_ENRICH_TOP", 5)

	viper.SetDefault("API_PORT", 6060)
	viper.SetDefault("API_TIMEOUT", "60s")
	viper.SetDefault("SESSION_SECRET", "")
}

// New reads config.yaml from the working directory when present, environment variables win.
func New() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()
	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var typeErr viper.ConfigFileNotFoundError
		if !errors.As(err, &typeErr) {
			return nil, fmt.Errorf("read config.yaml: %w", err)
		}
	}

	config := &Config{
		GoogleMapsAPIKey: viper.GetString("GOOGLE_MAPS_API_KEY"),
		PlacesBaseURL:    viper.GetString("PLACES_BASE_URL"),
		PlacesLanguage:   viper.GetString("PLACES_LANGUAGE"),
		PlacesRegion:     viper.GetString("PLACES_REGION"),
		UpstreamTimeout:  viper.GetDuration("UPSTREAM_TIMEOUT"),
		FallbackLat:      viper.GetFloat64("FALLBACK_LAT"),
		FallbackLng:      viper.GetFloat64("FALLBACK_LNG"),
		DetailsCacheTTL:  viper.GetDuration("DETAILS_CACHE_TTL"),
		DetailsCachePath: viper.GetString("DETAILS_CACHE_PATH"),
		DetailsWorkers:   viper.GetInt("DETAILS_WORKERS"),
		DefaultEnrichTop: viper.GetInt("DEFAULT_ENRICH_TOP"),
		APIPort:          viper.GetInt("API_PORT"),
		APITimeout:       viper.GetDuration("API_TIMEOUT"),
		SessionSecret:    viper.GetString("SESSION_SECRET"),
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *Config) Validate() error {
	if c.GoogleMapsAPIKey == "" {
		return errors.New("GOOGLE_MAPS_API_KEY is not set")
	}
	if c.FallbackLat < -90 || c.FallbackLat > 90 || c.FallbackLng < -180 || c.FallbackLng > 180 {
		return fmt.Errorf("fallback center %v,%v is not a valid coordinate", c.FallbackLat, c.FallbackLng)
	}
	if c.UpstreamTimeout <= 0 {
		return errors.New("UPSTREAM_TIMEOUT must be positive")
	}
	if c.DetailsWorkers <= 0 {
		return errors.New("DETAILS_WORKERS must be positive")
	}
	if c.APIPort <= 0 || c.APIPort > 65535 {
		return fmt.Errorf("API_PORT %d is out of range", c.APIPort)
	}
	return nil
}
