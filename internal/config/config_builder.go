package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"dario.cat/mergo"
	"github.com/joho/godotenv"
)

const dotEnvFile = ".env"

// Defaults applied when no source sets the field.
const (
	defaultLogLevel              = "info"
	defaultServerRequestTimeout  = 30 * time.Second
	defaultAdapterRequestTimeout = 10 * time.Second
	defaultCacheTTL              = 5 * time.Minute
	defaultPurgeRetention        = 30 * 24 * time.Hour
)

type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
	}
}

// build merges the collected configs. Earlier configs take precedence: a
// field is only filled from a later config while it is still zero.
func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, nil
}

// withDotEnv loads the given files into the process environment. Missing
// files are skipped and variables already set are not overridden.
func (b *configBuilder) withDotEnv(paths ...string) *configBuilder {
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}

		if err := godotenv.Load(path); err != nil {
			b.err = errors.Join(b.err, fmt.Errorf("error loading %s: %w", path, err))
		}
	}

	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags() *configBuilder {
	flags := ParseFlags()

	b.configs = append(b.configs, flags)
	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string
	isJSONSpecified := false

	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			isJSONSpecified = true
			jsonPath = cfg.JSONFilePath
		}
	}

	if isJSONSpecified {
		jsonCfg, err := parseJSON(jsonPath)
		if err != nil {
			b.err = errors.Join(b.err, err)
			return b
		}
		b.configs = append(b.configs, jsonCfg)
	}

	return b
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append(b.configs, &StructuredConfig{
		App: App{
			LogLevel: defaultLogLevel,
		},
		Server: Server{
			RequestTimeout: defaultServerRequestTimeout,
		},
		Storage: Storage{
			Cache: Cache{TTL: defaultCacheTTL},
		},
		Adapter: Adapter{
			RequestTimeout: defaultAdapterRequestTimeout,
		},
		Workers: Workers{
			PurgeRetention: defaultPurgeRetention,
		},
	})

	return b
}
