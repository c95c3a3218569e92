// Package config loads the application configuration and wires the infrastructure it describes.
//
// Configuration comes from an optional yaml file and LIBRARY_* environment variables (viper).
// The package also builds the slog logger, opens Postgres connections with pgx.Pool, sql.DB (lib/pq)
// or sqlx.DB, and assembles the activity log sinks and store options for cmd/library.
//
// This package is part of the shell (infrastructure) layer.
package config
