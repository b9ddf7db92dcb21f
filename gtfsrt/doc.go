// Package gtfsrt handles fetching and decoding GTFS-Realtime service-alert feeds.
//
// Client performs the HTTP fetch and returns raw protobuf bytes; DecodeFeed
// flattens a FeedMessage into AlertEntity values carrying only the fields the
// ingestion pipeline needs.
package gtfsrt
