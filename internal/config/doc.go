// Package config loads the service configuration from defaults, an optional
// config.yaml file and BENEFIT_CARDS_* environment variables, and validates
// it before any component is built from it.
package config
