// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 COVID-19 India Portal API Authors

// Package config loads the portal API configuration from environment
// variables, command-line flags, and an optional JSON file, merging the
// sources into a single validated [StructuredConfig].
package config
