package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultTrendingConfig(t *testing.T) {
	cfg := DefaultTrendingConfig()

	assert.Equal(t, "US", cfg.RegionCode)
	assert.Equal(t, 12, cfg.WindowHours)
	assert.Equal(t, 25, cfg.FetchLimit)
	assert.Equal(t, 5, cfg.DisplayCount)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Empty(t, cfg.APIKey)
}

func TestTrendingConfigValidate(t *testing.T) {
	valid := func() TrendingConfig {
		cfg := DefaultTrendingConfig()
		cfg.APIKey = "test-api-key"
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*TrendingConfig)
		wantErr string
	}{
		{
			name:   "valid defaults with key",
			mutate: func(c *TrendingConfig) {},
		},
		{
			name:    "missing API key",
			mutate:  func(c *TrendingConfig) { c.APIKey = "" },
			wantErr: "YouTube API key is required",
		},
		{
			name:    "empty region",
			mutate:  func(c *TrendingConfig) { c.RegionCode = "" },
			wantErr: "region code cannot be empty",
		},
		{
			name:    "negative window",
			mutate:  func(c *TrendingConfig) { c.WindowHours = -1 },
			wantErr: "window hours cannot be negative",
		},
		{
			name:   "zero window is allowed",
			mutate: func(c *TrendingConfig) { c.WindowHours = 0 },
		},
		{
			name:    "zero fetch limit",
			mutate:  func(c *TrendingConfig) { c.FetchLimit = 0 },
			wantErr: "fetch limit must be at least 1",
		},
		{
			name:    "fetch limit over API ceiling",
			mutate:  func(c *TrendingConfig) { c.FetchLimit = 51 },
			wantErr: "fetch limit cannot exceed 50",
		},
		{
			name:   "fetch limit at API ceiling",
			mutate: func(c *TrendingConfig) { c.FetchLimit = MaxFetchLimit },
		},
		{
			name:    "zero display count",
			mutate:  func(c *TrendingConfig) { c.DisplayCount = 0 },
			wantErr: "display count must be at least 1",
		},
		{
			name:    "zero timeout",
			mutate:  func(c *TrendingConfig) { c.RequestTimeout = 0 },
			wantErr: "request timeout must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestValidateMissingKeyIsSentinel(t *testing.T) {
	cfg := DefaultTrendingConfig()

	err := cfg.Validate()
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestGenerateRunID(t *testing.T) {
	first := GenerateRunID()
	second := GenerateRunID()

	assert.NotEmpty(t, first)
	assert.NotEqual(t, first, second)
}
