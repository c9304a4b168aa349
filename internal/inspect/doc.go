// Package inspect runs the fixed sequence of read-only queries that
// makes up a colors.db inspection and collects the results into an
// InspectReport.
//
// The inspection is organized as ordered sections: schema listing, total
// count, per-status breakdown, file size, recent records, and the
// success-rate summary. Each section fills one part of the report.
//
// Design decision: We use a section sequence instead of one long
// function because:
// 1. It provides consistent error handling and logging across sections
// 2. Each section is testable against a fixture database on its own
// 3. The report order is data, not control flow, and easy to audit
//
// The first failing section aborts the run; later sections depend on a
// healthy database, so partial continuation would only produce a
// misleading report.
package inspect
