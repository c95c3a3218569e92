package postgressink

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"

	"github.com/zeenath1324/Mini-project/activitylog"
	"github.com/zeenath1324/Mini-project/activitylog/postgressink/internal/adapters"
)

const (
	defaultTableName             = "activity_log"
	logMsgBuildSelectQueryFailed = "failed to build select query"
	logMsgBuildInsertQueryFailed = "failed to build insert query"
	logMsgDBQueryFailed          = "database query execution failed"
	logMsgDBExecFailed           = "database execution failed during entry append"
	logMsgCloseRowsFailed        = "failed to close database rows"
	logMsgScanRowFailed          = "failed to scan database row"
	logMsgEntryAppended          = "activity log entry appended"
	logMsgEntriesQueried         = "activity log entries queried"
	logMsgSQLExecuted            = "executed sql for: "
	logAttrError                 = "error"
	logAttrQuery                 = "query"
	logAttrEventType             = "event_type"
	logAttrEntryCount            = "entry_count"
	logAttrDurationMS            = "duration_ms"
	logActionQuery               = "query"
	logActionAppend              = "append"
	colSequenceNumber            = "sequence_number"
	colEventType                 = "event_type"
	colOccurredAt                = "occurred_at"
	colDescription               = "description"
	colPayload                   = "payload"
	colMetadata                  = "metadata"
	dialectPostgres              = "postgres"
)

var (
	ErrNilDatabaseConnection     = errors.New("database connection must not be nil")
	ErrEmptyTableName            = errors.New("empty table name supplied")
	ErrBuildingQueryFailed       = errors.New("building query failed")
	ErrQueryingEntriesFailed     = errors.New("querying activity log entries failed")
	ErrScanningDBRowFailed       = errors.New("scanning db row failed")
	ErrAppendingEntryFailed      = errors.New("appending activity log entry failed")
	ErrGettingRowsAffectedFailed = errors.New("getting rows affected failed")
	ErrCreatingTableFailed       = errors.New("creating activity log table failed")
)

// Logger interface for SQL query logging, operational information, warnings, and error reporting.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Sink appends activity log entries to a Postgres table.
type Sink struct {
	db        adapters.DBAdapter
	tableName string
	logger    Logger
}

// Option defines a functional option for configuring Sink.
type Option func(*Sink) error

// WithTableName sets the table name for the Sink.
func WithTableName(tableName string) Option {
	return func(s *Sink) error {
		if tableName == "" {
			return ErrEmptyTableName
		}

		s.tableName = tableName

		return nil
	}
}

// WithLogger sets the logger for the Sink.
//
// Debug level: SQL statements with execution timing
// Info level: entry counts and durations
// Warn level: cleanup failures
// Error level: failures that cause operation failures.
func WithLogger(logger Logger) Option {
	return func(s *Sink) error {
		s.logger = logger
		return nil
	}
}

// NewFromPGXPool creates a new Sink using a pgx Pool with optional configuration.
func NewFromPGXPool(db *pgxpool.Pool, options ...Option) (*Sink, error) {
	if db == nil {
		return nil, ErrNilDatabaseConnection
	}

	return newSink(adapters.NewPGXAdapter(db), options...)
}

// NewFromSQLDB creates a new Sink using a sql.DB with optional configuration.
func NewFromSQLDB(db *sql.DB, options ...Option) (*Sink, error) {
	if db == nil {
		return nil, ErrNilDatabaseConnection
	}

	return newSink(adapters.NewSQLAdapter(db), options...)
}

// NewFromSQLX creates a new Sink using a sqlx.DB with optional configuration.
func NewFromSQLX(db *sqlx.DB, options ...Option) (*Sink, error) {
	if db == nil {
		return nil, ErrNilDatabaseConnection
	}

	return newSink(adapters.NewSQLXAdapter(db), options...)
}

func newSink(db adapters.DBAdapter, options ...Option) (*Sink, error) {
	s := &Sink{
		db:        db,
		tableName: defaultTableName,
	}

	for _, option := range options {
		if err := option(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// CreateTableSQL returns the DDL for the sink's table.
func (s *Sink) CreateTableSQL() string {
	return fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
	%s BIGSERIAL PRIMARY KEY,
	%s TEXT NOT NULL,
	%s TIMESTAMPTZ NOT NULL,
	%s TEXT NOT NULL,
	%s JSONB NOT NULL,
	%s JSONB NOT NULL
)`,
		pgx.Identifier{s.tableName}.Sanitize(),
		colSequenceNumber, colEventType, colOccurredAt, colDescription, colPayload, colMetadata)
}

// EnsureTable creates the sink's table if it does not exist yet.
func (s *Sink) EnsureTable(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, s.CreateTableSQL()); err != nil {
		return errors.Join(ErrCreatingTableFailed, err)
	}

	return nil
}

// Record implements activitylog.Recorder by inserting one row.
func (s *Sink) Record(ctx context.Context, entry activitylog.Entry) error {
	sqlQuery, buildErr := s.buildInsertQuery(entry)
	if buildErr != nil {
		s.logError(logMsgBuildInsertQueryFailed, logAttrError, buildErr.Error(), logAttrEventType, entry.EventType)
		return errors.Join(activitylog.ErrLogWriteFailed, buildErr)
	}

	start := time.Now()
	result, execErr := s.db.Exec(ctx, sqlQuery)
	duration := time.Since(start)
	s.logQueryWithDuration(sqlQuery, logActionAppend, duration)

	if execErr != nil {
		s.logError(logMsgDBExecFailed, logAttrError, execErr.Error(), logAttrQuery, sqlQuery)
		return errors.Join(activitylog.ErrLogWriteFailed, ErrAppendingEntryFailed, execErr)
	}

	rowsAffected, rowsErr := result.RowsAffected()
	if rowsErr != nil {
		return errors.Join(activitylog.ErrLogWriteFailed, ErrGettingRowsAffectedFailed, rowsErr)
	}

	if rowsAffected != 1 {
		return errors.Join(activitylog.ErrLogWriteFailed, ErrAppendingEntryFailed)
	}

	if s.logger != nil {
		s.logger.Info(logMsgEntryAppended, logAttrEventType, entry.EventType, logAttrDurationMS, durationToMilliseconds(duration))
	}

	return nil
}

// Entries implements activitylog.Reader, returning all rows ordered by sequence number.
func (s *Sink) Entries(ctx context.Context) (activitylog.Entries, error) {
	sqlQuery, buildErr := s.buildSelectQuery()
	if buildErr != nil {
		s.logError(logMsgBuildSelectQueryFailed, logAttrError, buildErr.Error())
		return nil, errors.Join(activitylog.ErrLogReadFailed, buildErr)
	}

	start := time.Now()
	rows, queryErr := s.db.Query(ctx, sqlQuery)
	duration := time.Since(start)
	s.logQueryWithDuration(sqlQuery, logActionQuery, duration)

	if queryErr != nil {
		s.logError(logMsgDBQueryFailed, logAttrError, queryErr.Error(), logAttrQuery, sqlQuery)
		return nil, errors.Join(activitylog.ErrLogReadFailed, ErrQueryingEntriesFailed, queryErr)
	}
	defer s.closeRows(rows)

	entries, scanErr := s.scanEntries(rows)
	if scanErr != nil {
		return nil, errors.Join(activitylog.ErrLogReadFailed, scanErr)
	}

	if s.logger != nil {
		s.logger.Info(logMsgEntriesQueried, logAttrEntryCount, len(entries), logAttrDurationMS, durationToMilliseconds(duration))
	}

	return entries, nil
}

func (s *Sink) scanEntries(rows adapters.DBRows) (activitylog.Entries, error) {
	entries := make(activitylog.Entries, 0)

	var (
		eventType   string
		occurredAt  time.Time
		description string
		payload     []byte
		metadata    []byte
	)

	for rows.Next() {
		if err := rows.Scan(&eventType, &occurredAt, &description, &payload, &metadata); err != nil {
			s.logError(logMsgScanRowFailed, logAttrError, err.Error())
			return nil, errors.Join(ErrScanningDBRowFailed, err)
		}

		entry, err := activitylog.BuildEntry(eventType, occurredAt, description, payload, metadata)
		if err != nil {
			return nil, err
		}

		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Join(ErrQueryingEntriesFailed, err)
	}

	return entries, nil
}

func (s *Sink) buildInsertQuery(entry activitylog.Entry) (string, error) {
	insertStmt := goqu.Dialect(dialectPostgres).
		Insert(s.tableName).
		Cols(colEventType, colOccurredAt, colDescription, colPayload, colMetadata).
		Vals(goqu.Vals{
			entry.EventType,
			entry.OccurredAt,
			entry.Description,
			string(entry.PayloadJSON),
			string(entry.MetadataJSON),
		})

	sqlQuery, _, toSQLErr := insertStmt.ToSQL()
	if toSQLErr != nil {
		return "", errors.Join(ErrBuildingQueryFailed, toSQLErr)
	}

	return sqlQuery, nil
}

func (s *Sink) buildSelectQuery() (string, error) {
	selectStmt := goqu.Dialect(dialectPostgres).
		From(s.tableName).
		Select(colEventType, colOccurredAt, colDescription, colPayload, colMetadata).
		Order(goqu.I(colSequenceNumber).Asc())

	sqlQuery, _, toSQLErr := selectStmt.ToSQL()
	if toSQLErr != nil {
		return "", errors.Join(ErrBuildingQueryFailed, toSQLErr)
	}

	return sqlQuery, nil
}

// closeRows safely closes database rows and logs any errors.
func (s *Sink) closeRows(rows adapters.DBRows) {
	if closeErr := rows.Close(); closeErr != nil && s.logger != nil {
		s.logger.Warn(logMsgCloseRowsFailed, logAttrError, closeErr.Error())
	}
}

func (s *Sink) logError(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Error(msg, args...)
	}
}

// logQueryWithDuration logs SQL statements with execution time at debug level if the logger is configured.
func (s *Sink) logQueryWithDuration(sqlQuery string, action string, duration time.Duration) {
	if s.logger != nil {
		s.logger.Debug(logMsgSQLExecuted+action, logAttrDurationMS, durationToMilliseconds(duration), logAttrQuery, sqlQuery)
	}
}

// durationToMilliseconds converts a time.Duration to float64 milliseconds with 3 decimal places.
func durationToMilliseconds(d time.Duration) float64 {
	return math.Round(float64(d.Nanoseconds())/1e6*1000) / 1000
}
