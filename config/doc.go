// SPDX-License-Identifier: MIT

// Package config loads engine settings and turns them into ready-to-use
// compare options, validators and loggers.
//
// Settings come from a caller-supplied reader (YAML, JSON or TOML) and from
// environment variables prefixed with FISCUS_, nested keys joined by "_":
//
//	validation:
//	  max_change_percent: 50     # FISCUS_VALIDATION_MAX_CHANGE_PERCENT
//	  boundary: inclusive        # FISCUS_VALIDATION_BOUNDARY
//	parallelism: 4               # FISCUS_PARALLELISM, CompareAll and SummarizeAll
//	log_level: info              # FISCUS_LOG_LEVEL
//
// Environment values win over the reader. The package never opens files.
package config
