// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"strings"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// An empty DSN falls back to [DefaultDatabaseDSN]: test runs and deployments
// pick their own storage location, while a bare invocation gets a local
// SQLite file next to the working directory. A DSN with a URI scheme must
// point at PostgreSQL; any other scheme is rejected before the store ever
// tries to connect.
func (cfg *StructuredConfig) validate() error {
	dsn := strings.TrimSpace(cfg.Storage.DB.DSN)
	if dsn == "" {
		cfg.Storage.DB.DSN = DefaultDatabaseDSN
		return nil
	}

	if scheme, _, found := strings.Cut(dsn, "://"); found {
		if scheme != "postgres" && scheme != "postgresql" {
			return fmt.Errorf("%w: unsupported DSN scheme %q", ErrInvalidStorageConfigs, scheme)
		}
	}

	return nil
}
