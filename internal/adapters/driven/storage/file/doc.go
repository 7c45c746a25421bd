// Package file provides a JSON file implementation of driven.SnapshotStore.
// Each record key maps to one <key>.json file in the data directory.
package file
