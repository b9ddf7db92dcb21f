package invalidate

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"
)

// Notifier fires the "alerts changed" signal after a batch completes.
type Notifier interface {
	AlertsChanged(ctx context.Context, batchID string) error
}

// Event is the payload published to consumers.
type Event struct {
	Event   string    `json:"event"`
	BatchID string    `json:"batch_id"`
	At      time.Time `json:"at"`
}

func encodeEvent(batchID string, at time.Time) ([]byte, error) {
	return json.Marshal(Event{Event: "alerts_changed", BatchID: batchID, At: at.UTC()})
}

// LogNotifier only logs the signal. Used when no broker is configured.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) AlertsChanged(ctx context.Context, batchID string) error {
	n.logger.Info("alerts changed", "batch_id", batchID)
	return nil
}
