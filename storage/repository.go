package storage

import (
	"context"
	"time"

	"github.com/theoremus-urban-solutions/gtfsrt-alerts/alerts"
)

// Repository is the persistence surface the pipeline depends on.
type Repository interface {
	// FindActiveAlertsMatchingRoutes returns standalone alerts whose active
	// window contains asOf and whose route list shares at least one id with
	// routeIDs, most recently started first.
	FindActiveAlertsMatchingRoutes(ctx context.Context, routeIDs []string, asOf time.Time) ([]alerts.Alert, error)

	// UpsertAlert inserts the record or, if a row with the same id exists,
	// updates all mutable fields. Safe to call repeatedly with the same
	// input; only updated_at drifts.
	UpsertAlert(ctx context.Context, a *alerts.Alert) error

	// TouchUpdatedAt refreshes a row's updated_at, used to surface new
	// complement activity on the parent alert.
	TouchUpdatedAt(ctx context.Context, id string, at time.Time) error
}
