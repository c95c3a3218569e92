// Package postgressink provides a PostgreSQL-backed activity log sink.
//
// Every entry becomes one row of an append-only table (default "activity_log"):
//
//	sequence_number BIGSERIAL | event_type TEXT | occurred_at TIMESTAMPTZ | description TEXT | payload JSONB | metadata JSONB
//
// Rows are only ever inserted; Entries reads them back ordered by sequence number.
//
// The sink can be created from three connection types through the internal adapters:
//   - NewFromPGXPool for *pgxpool.Pool
//   - NewFromSQLDB for *sql.DB (e.g. opened with the lib/pq driver)
//   - NewFromSQLX for *sqlx.DB
//
// SQL is built with goqu using the postgres dialect.
package postgressink
