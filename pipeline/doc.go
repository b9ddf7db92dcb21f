// Package pipeline runs one ingestion batch: fetch the service-alerts feed,
// decode it, classify entities as standalone or complement, persist
// standalone alerts, link complements to their parent alerts, and fire one
// cache-invalidation signal.
//
// Processing is sequential and two-phase on purpose: every standalone alert
// is persisted before any complement lookup runs, so a complement can link
// to a parent that arrived in the same feed snapshot.
package pipeline
