// Package sqlite stores wizard snapshots and submission history in a single
// SQLite database, by default ~/.apply/data/apply.db.
//
// It uses modernc.org/sqlite, so no CGO toolchain is needed. The schema is
// built from the embedded migrations/ files, applied in order on open. The
// connection runs in WAL mode.
//
//   - SnapshotStore: the session as a JSON row in kv_records
//   - HistoryStore: one row per successful submission in submissions
package sqlite
