// Package lifecycle keeps a bill's cached status consistent with its due
// date.
//
// A bill is Paid only when a user says so. Otherwise it is Pending until its
// due date has passed and Overdue after that. Reconcile enforces the rule in
// two modes:
//
//   - ModeLoad runs passively when bills are read from storage. It only moves
//     Pending bills forward to Overdue.
//   - ModeSave runs on create, edit and import. It also moves Overdue bills
//     back to Pending when their due date was pushed forward.
//
// All comparisons are done on YYYY-MM-DD strings; "today" comes from a Clock
// so that tests and the server agree on a single time zone.
package lifecycle
