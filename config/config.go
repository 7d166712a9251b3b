package config

import (
	"os"
	"time"
)

type Config struct {
	APIKey         string
	VideoID        string
	OutputDir      string
	APIPort        string
	NATSUrl        string
	PageInterval   time.Duration
	CacheTTL       time.Duration
	SearchCacheTTL time.Duration
}

func Load() *Config {
	return &Config{
		APIKey:         getEnv("YOUTUBE_API_KEY", ""),
		VideoID:        getEnv("YOUTUBE_VIDEO_ID", ""),
		OutputDir:      getEnv("OUTPUT_DIR", "youtube_output_data"),
		APIPort:        getEnv("API_PORT", "8080"),
		NATSUrl:        getEnv("NATS_URL", ""),
		PageInterval:   getDurationEnv("PAGE_RATE_LIMIT", "0s"),
		CacheTTL:       getDurationEnv("CACHE_TTL", "10m"),
		SearchCacheTTL: getDurationEnv("SEARCH_CACHE_TTL", "1h"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key, defaultValue string) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	duration, _ := time.ParseDuration(defaultValue)

	return duration
}
