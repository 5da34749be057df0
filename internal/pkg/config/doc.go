// Package config provides functionality for loading and managing application configuration.
//
// Settings are read from a YAML file with environment variable overrides, validated,
// and handed to the rest of the application as typed structs. It centralizes
// configuration management for easier modification and extension.
package config
