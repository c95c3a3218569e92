// Package helper provides test doubles shared by the package tests:
// a slog.Handler spy capturing log records and a Recorder spy capturing activity log entries.
package helper
