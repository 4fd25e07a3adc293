// Package database handles database connections for the property catalog.
//
// It provides a wrapper around GORM to properly configure MySQL connections
// based on the application's configuration. A sqlite driver is also supported,
// mainly for local development and in-memory test databases.
//
// # Connect
//
// The Connect function establishes a connection to the database and verifies
// it with a ping before returning. Connection, read and write timeouts are
// injected into the MySQL DSN so a dead database never hangs a request.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
package database
