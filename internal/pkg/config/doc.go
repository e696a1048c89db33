// Package config provides functionality for loading and managing application configuration.
//
// Settings are read from the process environment, optionally seeded from a .env file,
// validated, and handed to the logger and command handlers.
package config
