package client

import (
	"context"
	"fmt"
	"time"
)

// ClientFactory creates clients based on the platform type
type ClientFactory interface {
	// CreateClient creates a client for the specified platform
	CreateClient(ctx context.Context, platformType string, config map[string]interface{}) (Client, error)
}

// DefaultClientFactory implements ClientFactory
type DefaultClientFactory struct{}

// NewDefaultClientFactory creates a new DefaultClientFactory
func NewDefaultClientFactory() *DefaultClientFactory {
	return &DefaultClientFactory{}
}

// CreateClient implements ClientFactory. YouTube is the only platform
// the tool speaks; the switch keeps the seam for others.
func (f *DefaultClientFactory) CreateClient(ctx context.Context, platformType string, config map[string]interface{}) (Client, error) {
	switch platformType {
	case "youtube":
		apiKey, ok := config["api_key"].(string)
		if !ok || apiKey == "" {
			return nil, fmt.Errorf("youtube client requires api_key in config")
		}
		timeout := getConfigDuration(config, "timeout", defaultRequestTimeout)
		return NewYouTubeDataClient(apiKey, timeout)
	default:
		return nil, fmt.Errorf("unsupported platform type: %s", platformType)
	}
}

// Helper function for config extraction
func getConfigDuration(config map[string]interface{}, key string, defaultValue time.Duration) time.Duration {
	if val, ok := config[key].(time.Duration); ok {
		return val
	}
	return defaultValue
}
