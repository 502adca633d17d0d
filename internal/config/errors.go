package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates that neither an HTTP nor a gRPC
	// listen address is configured.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidStorageConfigs indicates an empty DSN or a DSN whose scheme
	// maps to no supported driver.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidCacheConfigs indicates a Redis URL without a positive TTL.
	ErrInvalidCacheConfigs = errors.New("invalid cache configuration")
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing HTTP address or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, a purge interval without retention).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
