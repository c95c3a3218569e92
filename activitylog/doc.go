// Package activitylog provides the append-only activity log used by the library store.
//
// The store hands every successful operation to a Recorder as an Entry. An Entry is built on
// scalars (event type, timestamp, human-readable description, JSON payload and metadata) to stay
// agnostic of the domain event implementation, and renders itself as one log line:
//
//	<timestamp> - <description>
//
// Available sinks:
//   - FileSink: appends lines to a UTF-8 text file
//   - BoltSink: appends JSON records to a bbolt bucket and can read them back
//   - postgressink.Sink: appends rows to a Postgres table (see subpackage)
//   - MultiRecorder: fans out to several sinks
//   - NopRecorder: discards everything
//
// Writing to the log is best-effort from the caller's point of view: sinks return errors wrapping
// ErrLogWriteFailed and the caller decides how to report them.
//
// Common usage pattern:
//
//	sink, err := activitylog.NewFileSink("library_log.txt")
//	if err != nil {
//		// handle error
//	}
//
//	entry, err := activitylog.BuildEntry(eventType, time.Now(), "checked out: item B1 to actor M1", payload, metadata)
//	err = sink.Record(ctx, entry)
package activitylog
