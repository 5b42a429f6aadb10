package config

import (
	"fmt"
	"time"
)

// HotelBedsConfig holds the external catalog provider settings. The
// client is constructed from this explicitly; nothing here is global.
type HotelBedsConfig struct {
	BaseURL string
	APIKey  string
	Secret  string
	Timeout time.Duration
}

// LoadHotelBedsConfig reads provider settings from the environment.
// Missing credentials are an error: the proxy endpoints cannot operate
// without them.
func LoadHotelBedsConfig() (*HotelBedsConfig, error) {
	cfg := &HotelBedsConfig{
		BaseURL: GetEnv("HOTELBEDS_BASE_URL", "https://api.test.hotelbeds.com"),
		APIKey:  GetEnv("HOTELBEDS_API_KEY", ""),
		Secret:  GetEnv("HOTELBEDS_SECRET", ""),
		Timeout: GetEnvAsDuration("HOTELBEDS_TIMEOUT", 10*time.Second),
	}
	if cfg.APIKey == "" || cfg.Secret == "" {
		return nil, fmt.Errorf("missing HotelBeds API credentials")
	}
	return cfg, nil
}
