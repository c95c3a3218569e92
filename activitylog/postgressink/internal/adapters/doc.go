// Package adapters provides database adapter implementations for the Postgres activity log sink.
//
// This package implements the adapter pattern to support multiple PostgreSQL database libraries:
// pgx.Pool, sql.DB, and sqlx.DB. All adapters provide equivalent functionality through
// a common DBAdapter interface, allowing the sink to work with any supported connection type.
package adapters
