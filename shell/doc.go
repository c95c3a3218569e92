// Package shell maps domain events of the library to activity log entries.
//
// It renders the human-readable description of each event, serializes the event as the JSON
// payload and attaches EventMetadata (message, causation and correlation IDs).
//
// In Domain-Driven Design or Hexagonal Architecture terminology, this is part of the
// infrastructure layer between the core domain and the activity log sinks.
package shell
