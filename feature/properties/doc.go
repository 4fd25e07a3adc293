// Package properties keeps the flat server.properties file and the typed
// property catalog in sync.
//
// Two reconciliation directions exist. The import pass (MapConfiguration)
// scans the file and populates the catalog, inferring a type for every new
// key and refreshing values of known ones. The update pass (UpdateProperties)
// applies a batch of key/value changes, validating each against the
// property's declared type and constraint payload, patching the file copy in
// memory and committing it once at the end.
//
// The file and the catalog fail independently. The update pass keeps them
// consistent with a compensating protocol: every catalog write in a pass is
// preceded by a snapshot of the previous value, and a failed file commit
// replays the snapshots back into the catalog. A failed compensating write is
// surfaced as ErrRollback rather than swallowed.
//
// Per-key results are modeled as an ordered list of tagged outcomes
// (updated, skipped, unchanged) so classification and input order stay
// coupled.
package properties
