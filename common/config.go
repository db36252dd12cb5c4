// Package common provides configuration shared across the tool
package common

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// MaxFetchLimit is the per-request ceiling of the videos.list endpoint.
const MaxFetchLimit = 50

// ErrMissingAPIKey signals that no YouTube API key was configured.
var ErrMissingAPIKey = errors.New("YouTube API key is required")

// TrendingConfig holds everything one trending run needs.
type TrendingConfig struct {
	RegionCode     string        // region whose chart is requested, e.g. "US"
	WindowHours    int           // recency window; 0 keeps only same-instant uploads
	FetchLimit     int           // items requested from the API, independent of DisplayCount
	DisplayCount   int           // items shown after filtering
	APIKey         string        // YouTube Data API key
	RequestTimeout time.Duration // HTTP timeout for the single API request
	RunID          string        // correlates log lines of one invocation
}

// DefaultTrendingConfig returns a configuration with the stock defaults.
func DefaultTrendingConfig() TrendingConfig {
	return TrendingConfig{
		RegionCode:     "US",
		WindowHours:    12,
		FetchLimit:     25,
		DisplayCount:   5,
		RequestTimeout: 30 * time.Second,
	}
}

// Validate checks if the configuration is valid. The API key check
// runs first so a missing credential halts before anything else is
// reported.
func (c *TrendingConfig) Validate() error {
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}

	if c.RegionCode == "" {
		return fmt.Errorf("region code cannot be empty")
	}

	if c.WindowHours < 0 {
		return fmt.Errorf("window hours cannot be negative")
	}

	if c.FetchLimit < 1 {
		return fmt.Errorf("fetch limit must be at least 1")
	}

	if c.FetchLimit > MaxFetchLimit {
		return fmt.Errorf("fetch limit cannot exceed %d", MaxFetchLimit)
	}

	if c.DisplayCount < 1 {
		return fmt.Errorf("display count must be at least 1")
	}

	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive")
	}

	return nil
}

// GenerateRunID generates a unique identifier for one invocation.
func GenerateRunID() string {
	return uuid.New().String()
}
