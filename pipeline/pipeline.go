package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/theoremus-urban-solutions/gtfsrt-alerts/alerts"
	"github.com/theoremus-urban-solutions/gtfsrt-alerts/gtfsrt"
	"github.com/theoremus-urban-solutions/gtfsrt-alerts/invalidate"
	"github.com/theoremus-urban-solutions/gtfsrt-alerts/storage"
)

// Summary reports what one batch run did.
type Summary struct {
	BatchID        string
	Entities       int
	Standalone     int
	Complements    int
	Linked         int
	Fallbacks      int
	EntityFailures int
}

// Pipeline ingests one feed snapshot per Run call.
type Pipeline struct {
	feedURL  string
	client   *gtfsrt.Client
	repo     storage.Repository
	notifier invalidate.Notifier
	logger   *slog.Logger

	// Now supplies the batch reference time; replaceable in tests.
	Now func() time.Time
	// InferEffect fills the effect when the feed leaves it unset. Defaults
	// to alerts.InferEffect; operators with different alert phrasing can
	// substitute their own classifier.
	InferEffect func(string) string
}

func New(feedURL string, client *gtfsrt.Client, repo storage.Repository, notifier invalidate.Notifier, logger *slog.Logger) *Pipeline {
	return &Pipeline{
		feedURL:     feedURL,
		client:      client,
		repo:        repo,
		notifier:    notifier,
		logger:      logger,
		Now:         time.Now,
		InferEffect: alerts.InferEffect,
	}
}

// candidate pairs the resolved record with its feed entity: linking needs to
// know whether the feed itself supplied an effect, which the record alone
// no longer shows once inference has filled it.
type candidate struct {
	rec    alerts.Alert
	entity gtfsrt.AlertEntity
}

// Run processes one feed snapshot end to end. Fetch and decode failures are
// batch-fatal and returned to the caller; entity-level failures are logged,
// counted, and skipped. The invalidation signal fires once after every
// batch that got past decoding, even a partially-failed one.
func (p *Pipeline) Run(ctx context.Context) (Summary, error) {
	sum := Summary{BatchID: uuid.NewString()}
	logger := p.logger.With("batch_id", sum.BatchID)

	raw, err := p.client.Fetch(ctx, p.feedURL)
	if err != nil {
		return sum, err
	}

	feed, err := gtfsrt.DecodeFeed(raw)
	if err != nil {
		return sum, err
	}

	ref := p.Now().UTC()
	if feed.HeaderTimestamp > 0 {
		ref = time.Unix(feed.HeaderTimestamp, 0).UTC()
	}

	var standalone, complements []candidate
	for _, e := range feed.Alerts {
		if e.ID == "" {
			logger.Warn("skipping feed entity without id")
			continue
		}
		c := candidate{rec: p.buildRecord(e, ref), entity: e}
		if alerts.IsComplementText(e.Header, e.Description) {
			complements = append(complements, c)
		} else {
			standalone = append(standalone, c)
		}
	}
	sum.Entities = len(standalone) + len(complements)
	sum.Standalone = len(standalone)
	sum.Complements = len(complements)

	// Phase 1: standalone alerts, so same-batch parents are in place
	// before any complement lookup.
	for _, c := range standalone {
		if err := p.repo.UpsertAlert(ctx, &c.rec); err != nil {
			sum.EntityFailures++
			logger.Error("upsert standalone alert failed", "alert_id", c.rec.ID, "err", err)
		}
	}

	// Phase 2: complements.
	for _, c := range complements {
		linked, err := p.linkComplement(ctx, logger, c)
		if err != nil {
			sum.EntityFailures++
			logger.Error("persist complement failed", "alert_id", c.rec.ID, "err", err)
			continue
		}
		if linked {
			sum.Linked++
		} else {
			sum.Fallbacks++
		}
	}

	if err := p.notifier.AlertsChanged(ctx, sum.BatchID); err != nil {
		logger.Warn("invalidation signal failed", "err", err)
	}

	logger.Info("batch complete",
		"entities", sum.Entities,
		"standalone", sum.Standalone,
		"complements", sum.Complements,
		"linked", sum.Linked,
		"fallbacks", sum.Fallbacks,
		"entity_failures", sum.EntityFailures,
	)
	return sum, nil
}

// buildRecord resolves a feed entity into a persistable Alert: times
// defaulted from the batch reference, cause/effect inferred from text when
// the feed leaves them unset.
func (p *Pipeline) buildRecord(e gtfsrt.AlertEntity, ref time.Time) alerts.Alert {
	rec := alerts.Alert{
		ID:              e.ID,
		TimeStart:       ref,
		HeaderText:      e.Header,
		DescriptionText: e.Description,
		URL:             e.URL,
		RouteIDs:        alerts.JoinIDs(e.RouteIDs),
		StopIDs:         alerts.JoinIDs(e.StopIDs),
	}
	if e.Start > 0 {
		rec.TimeStart = time.Unix(e.Start, 0).UTC()
	}
	if e.End > 0 {
		end := time.Unix(e.End, 0).UTC()
		rec.TimeEnd = &end
	}
	rec.NormalizeWindow()

	text := e.Description + " " + e.Header
	rec.Cause = e.Cause
	if rec.Cause == "" {
		rec.Cause = alerts.InferCause(text)
	}
	rec.Effect = e.Effect
	if rec.Effect == "" {
		rec.Effect = p.InferEffect(text)
	}
	return rec
}
