// Package storage provides object storage access for configuration backups.
//
// It wraps the Minio S3 client behind a narrow Client interface so features
// and tests can substitute their own implementations. A testify-based mock
// lives in the mocks subpackage.
//
// The client is created lazily; connectivity problems surface on the first
// operation, bounded by the transport timeouts configured here and by the
// caller's context.
package storage
