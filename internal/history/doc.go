// Package history keeps a local SQLite ledger of batch runs and their
// per-video outcomes so earlier results can be inspected after the terminal
// output is gone.
//
// The database lives at <state_dir>/history.db. Its schema is embedded and
// versioned; a database written by a different schema version is rejected
// with ErrSchemaMismatch instead of being migrated. Writes retry briefly on
// SQLITE_BUSY so a watch process and a one-shot run can share the file.
package history
