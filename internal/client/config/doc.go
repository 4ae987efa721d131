// Package config loads runtime configuration for the Mesto CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables, with optional .env file (see parseEnv).
//  3. Optional JSON file (see parseJSON) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-auth string   base URL of the auth service
//	-api string    base URL of the content API
//	-t string      authorization value sent to the content API
//	-d string      path/DSN of the client SQLite database
//	-l string      log level (debug|info|warn|error)
//
// Environment variables
//
//	MESTO_AUTH_ENDPOINT, MESTO_API_ENDPOINT, MESTO_API_AUTHORIZATION,
//	MESTO_DATABASE_DSN, MESTO_LOG_LEVEL
//
// # JSON schema
//
//	{
//	  "auth_endpoint": "https://auth.nomoreparties.co",
//	  "api_endpoint": "https://mesto.nomoreparties.co/v1/cohort-15",
//	  "api_authorization": "…",
//	  "database_dsn": "mesto.db",
//	  "log_level": "info"
//	}
//
// Note: the content API authenticates with a static per-cohort authorization
// value, not the session token. That is how the deployed backend works; the
// value is therefore plain configuration here.
package config
