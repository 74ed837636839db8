// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 COVID-19 India Portal API Authors

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The database DSN and the token signing key are mandatory: the server
// fails fast rather than starting without a store connection or with an
// unverifiable token secret.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.TokenSignKey == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}
