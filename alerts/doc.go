// Package alerts defines the persisted Alert record and the pure text
// classification functions used during ingestion: complement detection and
// keyword-based cause/effect inference for feeds that omit those fields.
//
// The keyword lists are French because that is what the upstream operator's
// alert texts use. Classification is deterministic: same text, same result.
package alerts
