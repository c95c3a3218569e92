package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/zeenath1324/Mini-project/activitylog"
	"github.com/zeenath1324/Mini-project/activitylog/postgressink"
	"github.com/zeenath1324/Mini-project/librarystore"
)

// ActivityLog is the set of configured sinks behind one recorder.
// Entries are read back from the first sink that supports reading.
type ActivityLog struct {
	activitylog.MultiRecorder

	closers []func() error
}

// Close releases all sinks; the errors are joined.
func (a *ActivityLog) Close() error {
	var errs []error

	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// OpenActivityLog opens every sink named in cfg.Sinks, in order.
// On failure the sinks opened so far are closed again.
func OpenActivityLog(ctx context.Context, cfg ActivityLogConfig, logger *slog.Logger) (*ActivityLog, error) {
	activityLog := &ActivityLog{}
	recorders := make([]activitylog.Recorder, 0, len(cfg.Sinks))

	for _, sinkName := range cfg.Sinks {
		recorder, closer, err := openSink(ctx, sinkName, cfg, logger)
		if err != nil {
			return nil, errors.Join(err, activityLog.Close())
		}

		recorders = append(recorders, recorder)
		if closer != nil {
			activityLog.closers = append(activityLog.closers, closer)
		}
	}

	// Readable sinks go first, so Entries finds one of them.
	ordered := make([]activitylog.Recorder, 0, len(recorders))
	for _, r := range recorders {
		if _, ok := r.(activitylog.Reader); ok {
			ordered = append(ordered, r)
		}
	}
	for _, r := range recorders {
		if _, ok := r.(activitylog.Reader); !ok {
			ordered = append(ordered, r)
		}
	}

	activityLog.MultiRecorder = activitylog.NewMultiRecorder(ordered...)

	return activityLog, nil
}

func openSink(
	ctx context.Context,
	sinkName string,
	cfg ActivityLogConfig,
	logger *slog.Logger,
) (activitylog.Recorder, func() error, error) {

	switch sinkName {
	case SinkFile:
		sink, err := activitylog.NewFileSink(cfg.File)
		return sink, nil, err

	case SinkBolt:
		sink, err := activitylog.OpenBoltSink(cfg.BoltPath)
		if err != nil {
			return nil, nil, err
		}
		return sink, sink.Close, nil

	case SinkPostgres:
		return openPostgresSink(ctx, cfg.Postgres, logger)

	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownSink, sinkName)
	}
}

func openPostgresSink(ctx context.Context, cfg PostgresConfig, logger *slog.Logger) (activitylog.Recorder, func() error, error) {
	if cfg.DSN == "" {
		return nil, nil, ErrMissingDSN
	}

	options := []postgressink.Option{postgressink.WithTableName(cfg.Table)}
	if logger != nil {
		options = append(options, postgressink.WithLogger(logger))
	}

	var (
		sink   *postgressink.Sink
		closer func() error
		err    error
	)

	switch cfg.Driver {
	case DriverPGX:
		pool, openErr := OpenPGXPool(ctx, cfg.DSN)
		if openErr != nil {
			return nil, nil, openErr
		}
		closer = func() error { pool.Close(); return nil }
		sink, err = postgressink.NewFromPGXPool(pool, options...)

	case DriverSQL:
		db, openErr := OpenSQLDB(ctx, cfg.DSN)
		if openErr != nil {
			return nil, nil, openErr
		}
		closer = db.Close
		sink, err = postgressink.NewFromSQLDB(db, options...)

	case DriverSQLX:
		db, openErr := OpenSQLX(ctx, cfg.DSN)
		if openErr != nil {
			return nil, nil, openErr
		}
		closer = db.Close
		sink, err = postgressink.NewFromSQLX(db, options...)

	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}

	if err == nil {
		err = sink.EnsureTable(ctx)
	}

	if err != nil {
		return nil, nil, errors.Join(err, closer())
	}

	return sink, closer, nil
}

// StoreOptions translates the store section and the diagnostic logger into librarystore options.
func StoreOptions(cfg StoreConfig, logger *slog.Logger) ([]librarystore.Option, error) {
	policy, err := librarystore.ParseDuplicatePolicy(cfg.DuplicatePolicy)
	if err != nil {
		return nil, err
	}

	options := []librarystore.Option{librarystore.WithDuplicatePolicy(policy)}
	if logger != nil {
		options = append(options, librarystore.WithLogger(logger))
	}

	return options, nil
}
