package config

import (
	"fmt"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// LogLevel is the minimum log level of the client.
	LogLevel string
	// LogFile is the file client log entries are appended to.
	LogFile string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains the server address and request timeout.
	Adapter Adapter
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// Server-only settings are not validated here, so the client runs without a
// database DSN or listen address.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			LogLevel: cfg.App.LogLevel,
			LogFile:  cfg.App.LogFile,
		},
		Adapter: cfg.Adapter,
	}

	return clientCfg, clientCfg.validate()
}
