// Package invalidate signals downstream caches that alert data changed.
// One event is published per completed ingestion batch; consumers re-read
// whatever subset of the batch was persisted.
package invalidate
