// Package models defines the core domain models for the bill tracker.
//
// # Models
//
//   - Bill: a financial obligation owed by one of the tracked companies
//   - Category: a named grouping of bills with a set of subcategories
//   - User: an account with a role that gates write access
//   - Snapshot: the full set of collections read from a storage backend
//
// Company names are kept as a plain string set on the Snapshot.
//
// # Design Principles
//
//  1. **Status is derived**: Bill.Status is a cached value recomputed by the
//     lifecycle package, never trusted on its own
//  2. **Dates are strings**: due and bill dates are ISO YYYY-MM-DD strings so
//     that lexicographic order equals chronological order
//  3. **Money is decimal**: amounts use shopspring/decimal and round-trip
//     through storage without float drift
//  4. **Avoid circular references**: relationships use names or ID strings
package models
