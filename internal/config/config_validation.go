// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks that the final merged [StructuredConfig] can start the
// server: at least one listener, a database DSN with a supported scheme and
// consistent cache and worker settings.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" && cfg.Server.GRPCAddress == "" {
		return ErrInvalidServerConfigs
	}

	if !isSupportedDSN(cfg.Storage.DB.DSN) {
		return ErrInvalidStorageConfigs
	}

	if cfg.Storage.Cache.RedisURL != "" && cfg.Storage.Cache.TTL <= 0 {
		return ErrInvalidCacheConfigs
	}

	if cfg.Workers.PurgeInterval < 0 ||
		(cfg.Workers.PurgeInterval > 0 && cfg.Workers.PurgeRetention <= 0) {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}

func isSupportedDSN(dsn string) bool {
	for _, prefix := range []string{"postgres://", "postgresql://", "sqlite://", "file:"} {
		if strings.HasPrefix(dsn, prefix) {
			return true
		}
	}

	return false
}
