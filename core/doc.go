// Package core contains the domain model for the example:
// Book circulation in a small lending library.
//
// It defines the catalog entry (Item), the registered borrower (Actor),
// the domain events emitted by successful operations, the error taxonomy
// for expected validation failures and the late-fee rule.
//
// All domain events implement the DomainEvent interface with IsEventType() and
// HasOccurredAt() methods so the shell layer can map them to activity log entries.
//
// The package is free of I/O. In Domain-Driven Design or Hexagonal Architecture
// terminology, this would be called the 'domain' layer.
package core
