// Package database provides read-only access to the gallery
// application's colors.db SQLite file.
//
// This package implements the ColorDB, which exposes:
//   - Catalog introspection (tables and their columns)
//   - Row counts, per-status breakdowns, and recent records
//   - Palette and pending-file lookups for individual records
//
// Design decision: We use SQLite (via modernc.org/sqlite) instead of a
// CGO-based driver because:
// 1. The database is owned by another application - we only read it
// 2. CGO-free implementation allows easy cross-compilation
// 3. Sufficient performance for a one-shot diagnostic pass
//
// Every connection is opened with mode=ro so a diagnostic run can never
// mutate the gallery's data, even by accident.
package database
