// Package sqlite provides the SQLite-backed recommendation archive.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that
// requires no CGO, enabling easy cross-compilation. Recommendations are stored
// as JSON payloads alongside the columns the history listing needs, so listing
// never parses payloads and the payload schema can evolve without migrations.
//
// # Schema
//
// The database schema is managed through versioned migrations stored in the
// migrations/ directory.
//
// # Data Location
//
// By default, the database is stored at ~/.atelier/data/archive.db. The
// archive.dir setting overrides the directory.
//
// # Thread Safety
//
// All operations are thread-safe. The store uses database-level locking
// provided by SQLite in WAL mode.
package sqlite
