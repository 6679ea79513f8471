// Package kernel contains shared value objects used across the domain model.
//
// The package includes:
//   - UUID: identifier value object wrapping github.com/google/uuid
//   - Price: money value object stored as integer cents
//
// Kernel types are immutable, compared by value, and validated at construction.
// They carry no behavior specific to any single aggregate, which is why they
// live outside the order package.
package kernel
