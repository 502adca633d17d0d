// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-posts application. It aggregates all sub-configurations and is
// populated by merging values from a .env file, environment variables,
// command-line flags, an optional JSON file and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version and log level.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the relational database and the
	// optional read cache.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP and
	// gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the settings the command-line client uses to reach
	// the server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Exposed via the /api/version/ endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is the minimum zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// LogFile is where the command-line client appends its log entries.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address on which the gRPC health server
	// listens, in "host:port" format (e.g. "0.0.0.0:9090").
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration for all storage backends used by the
// application.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`

	// Cache holds the optional Redis read-cache settings.
	Cache Cache `envPrefix:"CACHE_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects the driver by its scheme:
	// "postgres://..." opens PostgreSQL, "sqlite://..." or "file:..." opens
	// SQLite.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Cache holds the Redis connection settings of the post read cache.
// An empty RedisURL disables caching.
type Cache struct {
	// RedisURL is a redis:// connection URL.
	// Env: STORAGE_CACHE_REDIS_URL
	RedisURL string `env:"REDIS_URL"`

	// TTL is how long a cached post stays valid.
	// Env: STORAGE_CACHE_TTL
	TTL time.Duration `env:"TTL"`
}

// Adapter holds the client-side transport settings.
type Adapter struct {
	// HTTPAddress is the base URL or host:port of the go-posts server.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// PurgeInterval is how often removed posts are purged. Zero disables
	// the purge worker.
	// Env: WORKERS_PURGE_INTERVAL
	PurgeInterval time.Duration `env:"PURGE_INTERVAL"`

	// PurgeRetention is how long a removed post is kept before purging.
	// Env: WORKERS_PURGE_RETENTION
	PurgeRetention time.Duration `env:"PURGE_RETENTION"`
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from all available sources. For every field the first non-zero value wins,
// in the following order:
//  1. Environment variables (a .env file in the working directory is
//     loaded into the environment first)
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validate()
}

func loadConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv(dotEnvFile).
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
