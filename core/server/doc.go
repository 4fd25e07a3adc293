// Package server holds the HTTP server and game-server configuration.
//
// It covers the listen port, the API key protecting the HTTP API, the path to
// the managed server.properties file, and the address of the game server that
// the status feature pings.
package server
