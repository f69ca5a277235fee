// Package config defines the application configuration structure and its
// loading rules. Configuration is assembled once at startup from environment
// variables (PROCRASTINANT_ prefix) and an optional config.yaml, validated,
// and then passed by value into the services that need it.
package config
