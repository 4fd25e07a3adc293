// Package backup stores timestamped snapshots of the properties file in
// object storage, so a bad batch update can be recovered by hand.
package backup
