package pipeline

import (
	"context"
	"log/slog"

	"github.com/theoremus-urban-solutions/gtfsrt-alerts/alerts"
)

// linkComplement resolves one complement candidate. It returns whether the
// record was persisted with a parent link. A complement that cannot be
// linked (no route ids, a failed lookup, or no matching parent) falls back
// to the standalone path rather than being dropped. Only the final upsert
// error is returned to the caller.
func (p *Pipeline) linkComplement(ctx context.Context, logger *slog.Logger, c candidate) (bool, error) {
	routes := c.entity.RouteIDs
	if len(routes) == 0 {
		return false, p.persistStandalone(ctx, c)
	}

	matches, err := p.repo.FindActiveAlertsMatchingRoutes(ctx, routes, c.rec.TimeStart)
	if err != nil {
		logger.Warn("parent lookup failed, treating complement as standalone", "alert_id", c.rec.ID, "err", err)
		return false, p.persistStandalone(ctx, c)
	}
	if len(matches) == 0 {
		return false, p.persistStandalone(ctx, c)
	}

	// Matches arrive most recently started first.
	parent := matches[0]

	rec := c.rec
	rec.IsComplement = true
	rec.ParentAlertID = &parent.ID
	rec.Cause = parent.Cause
	// The complement's own effect wins only when the feed supplied it.
	if c.entity.Effect == "" {
		rec.Effect = parent.Effect
		if rec.Effect == "" {
			rec.Effect = alerts.EffectUnknown
		}
	}

	if err := p.repo.UpsertAlert(ctx, &rec); err != nil {
		return false, err
	}

	// Surface the new activity on the parent.
	if err := p.repo.TouchUpdatedAt(ctx, parent.ID, p.Now().UTC()); err != nil {
		logger.Warn("touch parent failed", "parent_id", parent.ID, "err", err)
	}
	return true, nil
}

// persistStandalone is the fallback path: the record keeps its classified
// cause/effect and is stored without complement markers.
func (p *Pipeline) persistStandalone(ctx context.Context, c candidate) error {
	rec := c.rec
	rec.IsComplement = false
	rec.ParentAlertID = nil
	return p.repo.UpsertAlert(ctx, &rec)
}
