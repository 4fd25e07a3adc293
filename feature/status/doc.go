// Package status reports live information about the managed game server.
//
// The server is queried over its own status protocol: a TCP handshake
// followed by a status request that returns a JSON document, plus a
// best-effort ping round trip for latency. The feature is disabled when no
// game host is configured.
package status
