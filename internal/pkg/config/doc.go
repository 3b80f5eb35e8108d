// Package config defines the settings structs for the mentor match
// service and loads them from YAML files with environment overrides.
package config
