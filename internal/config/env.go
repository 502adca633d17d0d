// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the APP_, STORAGE_, SERVER_, ADAPTER_ and
// WORKERS_ variables declared by the env tags of [StructuredConfig].
// Unset variables leave their fields zero so later sources can fill them.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error parsing go-posts environment: %w", err)
	}

	return nil
}
