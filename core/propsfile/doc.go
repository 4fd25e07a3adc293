// Package propsfile provides line-level access to the flat server.properties file.
//
// The file is modeled as an ordered sequence of raw lines (Document). Only the
// first line matching a given "key=" prefix is ever rewritten; comments, blank
// lines and later duplicates pass through serialization untouched. This keeps
// hand-edited files stable across automated updates.
//
// # Store
//
// File I/O goes through the Store interface so that services and tests can
// substitute the filesystem. The default implementation reads and writes via
// the os package. A testify-based mock lives in the mocks subpackage.
//
// # Usage
//
//	doc, err := propsfile.Load(store, cfg.Server.PropertiesPath)
//	if err != nil {
//	    return err
//	}
//	doc.Patch("max-players", "20")
//	err = doc.Commit(store, cfg.Server.PropertiesPath)
package propsfile
