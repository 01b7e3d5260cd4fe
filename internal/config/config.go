// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration of both binaries. It is
// assembled from defaults, a .env file, environment variables, command-line
// flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to nested env lookups (caarlos0/env).
//   - env: environment variable name of a scalar field.
type StructuredConfig struct {
	// App holds versioning, the seeded admin identity and hashing cost.
	App App `envPrefix:"APP_"`

	// Storage selects the profile backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server configures the public catalog API.
	Server Server `envPrefix:"SERVER_"`

	// Security holds the login and registration attempt limits.
	Security Security `envPrefix:"SECURITY_"`

	// Log configures log destinations.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file, merged
	// over everything else. Env: CONFIG, flags: -c / -config.
	JSONFilePath string `env:"CONFIG"`

	// EnvFilePath is the .env file loaded before the environment is read.
	// Env: ENV_FILE (default ".env")
	EnvFilePath string `env:"ENV_FILE"`
}

// App holds application-level settings.
type App struct {
	// Version is reported by the API and the TUI.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// SeedAdminName and SeedAdminEmail identify the bootstrap admin account:
	// a registration matching both (case-insensitively) receives the admin
	// role. Intended for first provisioning of a profile only.
	// Env: APP_SEED_ADMIN_NAME, APP_SEED_ADMIN_EMAIL
	SeedAdminName  string `env:"SEED_ADMIN_NAME"`
	SeedAdminEmail string `env:"SEED_ADMIN_EMAIL"`

	// PasswordIterations is the PBKDF2 work factor for new hashes.
	// Env: APP_PASSWORD_ITERATIONS
	PasswordIterations int `env:"PASSWORD_ITERATIONS"`
}

// Storage groups persistence settings.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds the profile DSN.
type DB struct {
	// DSN selects the backend: "memory" or ":memory:" for a process-local
	// store, a postgres:// URL for PostgreSQL, anything else is a SQLite
	// file path.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Server configures the public catalog API.
type Server struct {
	// HTTPAddress is the listen address in "host:port" form. Empty disables
	// the API in the interactive client.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds each request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// AllowedOrigins lists CORS origins of the web front end.
	// Env: SERVER_ALLOWED_ORIGINS (comma separated)
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`

	// DownloadRate is the sustained per-client rate of download counter
	// increments per second; DownloadBurst is the bucket size.
	// Env: SERVER_DOWNLOAD_RATE, SERVER_DOWNLOAD_BURST
	DownloadRate  float64 `env:"DOWNLOAD_RATE"`
	DownloadBurst int     `env:"DOWNLOAD_BURST"`
}

// Security holds the attempt limits of the auth pipelines.
type Security struct {
	// Env: SECURITY_LOGIN_MAX_ATTEMPTS, SECURITY_LOGIN_WINDOW
	LoginMaxAttempts int           `env:"LOGIN_MAX_ATTEMPTS"`
	LoginWindow      time.Duration `env:"LOGIN_WINDOW"`

	// Env: SECURITY_REGISTER_MAX_ATTEMPTS, SECURITY_REGISTER_WINDOW
	RegisterMaxAttempts int           `env:"REGISTER_MAX_ATTEMPTS"`
	RegisterWindow      time.Duration `env:"REGISTER_WINDOW"`
}

// Log configures log destinations.
type Log struct {
	// ClientFile is where the interactive client writes its JSON log.
	// Env: LOG_CLIENT_FILE
	ClientFile string `env:"CLIENT_FILE"`
}

// GetStructuredConfig loads and validates the configuration. Sources are
// applied in order, later non-zero values winning:
//  1. Defaults
//  2. .env file (only fills variables not already set)
//  3. Environment variables
//  4. Command-line flags
//  5. JSON file (path resolved from sources 3 and 4)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withDotEnv().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}

// GetServerConfig is [GetStructuredConfig] plus the requirements of the
// headless API binary.
func GetServerConfig() (*StructuredConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validateServer()
}
