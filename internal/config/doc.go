// Package config loads and merges the application configuration from
// environment variables, command-line flags, and an optional JSON file.
//
// The merge order is env, then flags, then JSON file, with the first
// non-zero value winning for each field. The merged result is validated
// before use.
package config
