package gtfsrt

import (
	"fmt"

	gtfsrtpb "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"google.golang.org/protobuf/proto"
)

// DecodeError reports a malformed protobuf payload. Decoding is all-or-nothing:
// a schema mismatch or truncated buffer makes the whole batch unusable.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string { return fmt.Sprintf("decode feed: %v", e.Err) }

func (e *DecodeError) Unwrap() error { return e.Err }

// AlertEntity is the flattened form of one feed entity's alert.
// Cause and Effect are GTFS-RT enum names, empty when the feed leaves them
// unset. Start and End are epoch seconds, zero when absent.
type AlertEntity struct {
	ID          string
	Header      string
	Description string
	URL         string
	Cause       string
	Effect      string
	Start       int64
	End         int64
	RouteIDs    []string
	StopIDs     []string
}

// Feed holds the decoded service-alerts snapshot.
type Feed struct {
	HeaderTimestamp int64
	Alerts          []AlertEntity
}

// DecodeFeed decodes raw FeedMessage bytes and flattens every entity that
// carries an alert. Entities without an alert (trip updates, vehicle
// positions) are skipped. Pure transformation, no I/O.
func DecodeFeed(b []byte) (*Feed, error) {
	var fm gtfsrtpb.FeedMessage
	if err := proto.Unmarshal(b, &fm); err != nil {
		return nil, &DecodeError{Err: err}
	}

	feed := &Feed{}
	if fm.Header != nil && fm.Header.Timestamp != nil {
		feed.HeaderTimestamp = int64(*fm.Header.Timestamp)
	}

	for _, e := range fm.Entity {
		if e.Alert == nil {
			continue
		}
		a := e.Alert
		ae := AlertEntity{}
		if e.Id != nil {
			ae.ID = *e.Id
		}
		ae.Header = firstTranslation(a.HeaderText)
		ae.Description = firstTranslation(a.DescriptionText)
		ae.URL = firstTranslation(a.Url)
		if a.Cause != nil {
			ae.Cause = a.Cause.String()
		}
		if a.Effect != nil {
			ae.Effect = a.Effect.String()
		}
		// ActivePeriod: the first window is authoritative.
		if len(a.ActivePeriod) > 0 {
			ap := a.ActivePeriod[0]
			if ap.Start != nil {
				ae.Start = int64(*ap.Start)
			}
			if ap.End != nil {
				ae.End = int64(*ap.End)
			}
		}
		for _, ie := range a.InformedEntity {
			if ie.RouteId != nil && *ie.RouteId != "" {
				ae.RouteIDs = append(ae.RouteIDs, *ie.RouteId)
			}
			if ie.StopId != nil && *ie.StopId != "" {
				ae.StopIDs = append(ae.StopIDs, *ie.StopId)
			}
		}
		feed.Alerts = append(feed.Alerts, ae)
	}
	return feed, nil
}

// firstTranslation returns the first translation string of a localized text
// list, or "" when the field is absent.
func firstTranslation(ts *gtfsrtpb.TranslatedString) string {
	if ts == nil {
		return ""
	}
	for _, tr := range ts.Translation {
		if tr != nil && tr.Text != nil {
			return *tr.Text
		}
	}
	return ""
}
