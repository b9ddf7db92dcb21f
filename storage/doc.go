// Package storage persists Alert rows behind a small Repository interface so
// the pipeline can run against an in-memory fake in tests. The production
// implementation is gorm over postgres; sqlite is supported for local runs
// and the package's own tests.
package storage
