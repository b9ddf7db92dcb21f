// Package config handles application configuration loading and validation.
//
// Configuration is loaded from a YAML file and validated using struct tags.
// The database DSN can be overridden with the DATABASE_URL environment
// variable so deployments don't need credentials in the file.
package config
