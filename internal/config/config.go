// Package config loads runtime settings from the environment.
package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/fortuna/depthsheets/internal/render"
	"github.com/joho/godotenv"
)

// Fetch modes for the schedule page
const (
	FetchHTTP    = "http"
	FetchBrowser = "browser"
)

// Config holds every runtime setting
type Config struct {
	SeasonYear     int
	OutDir         string
	FoxBaseURL     string
	OurladsURL     string
	FetchMode      string
	RedisURL       string
	CachePath      string
	RosterCacheTTL time.Duration
	DatabaseURL    string
	RESTPort       string
	WSPort         string
	AwayQBLines    int
}

// Load reads an optional .env file and then the environment
func Load() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("⚠️  .env not loaded: %v", err)
	}

	return Config{
		SeasonYear:     getEnvInt("SEASON_YEAR", 2025),
		OutDir:         getEnv("OUT_DIR", "out_txt"),
		FoxBaseURL:     getEnv("FOX_BASE_URL", "https://www.foxsports.com/nfl/schedule"),
		OurladsURL:     getEnv("OURLADS_URL", "https://www.ourlads.com/nfldepthcharts/depthcharts.aspx"),
		FetchMode:      getEnv("FETCH_MODE", FetchHTTP),
		RedisURL:       getEnv("REDIS_URL", ""),
		CachePath:      getEnv("CACHE_PATH", "depthsheets-cache.db"),
		RosterCacheTTL: getEnvDuration("ROSTER_CACHE_TTL", time.Hour),
		DatabaseURL:    getEnv("DATABASE_URL", ""),
		RESTPort:       getEnv("REST_PORT", "8080"),
		WSPort:         getEnv("WS_PORT", "8081"),
		AwayQBLines:    getEnvInt("AWAY_QB_LINES", 1),
	}
}

// Validate checks values that would otherwise fail deep inside a run
func (c Config) Validate() error {
	if c.SeasonYear <= 0 {
		return fmt.Errorf("SEASON_YEAR must be positive, got %d", c.SeasonYear)
	}
	if c.FetchMode != FetchHTTP && c.FetchMode != FetchBrowser {
		return fmt.Errorf("FETCH_MODE must be %q or %q, got %q", FetchHTTP, FetchBrowser, c.FetchMode)
	}
	if c.RosterCacheTTL <= 0 {
		return fmt.Errorf("ROSTER_CACHE_TTL must be positive, got %v", c.RosterCacheTTL)
	}
	return c.Layout().Validate()
}

// Layout returns the sheet layout with the configured away quarterback count
func (c Config) Layout() render.Layout {
	return render.DefaultLayout.WithAwayQuarterbacks(c.AwayQBLines)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("⚠️  %s=%q is not a number, using %d", key, value, defaultValue)
		return defaultValue
	}
	return n
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("⚠️  %s=%q is not a duration, using %v", key, value, defaultValue)
		return defaultValue
	}
	return d
}
