package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/theoremus-urban-solutions/gtfsrt-alerts/alerts"
)

// GormRepository implements Repository on a relational database.
type GormRepository struct {
	db *gorm.DB
}

// Open connects to the database and runs migrations.
func Open(driver, dsn string) (*GormRepository, error) {
	var dialector gorm.Dialector
	switch strings.ToLower(driver) {
	case "postgres", "postgresql":
		dialector = postgres.Open(dsn)
	case "sqlite":
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.AutoMigrate(&alerts.Alert{}); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return &GormRepository{db: db}, nil
}

// NewGormRepository wraps an already-open gorm handle. Callers are
// responsible for migrations.
func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

// Close releases the underlying connection pool.
func (r *GormRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// FindActiveAlertsMatchingRoutes loads standalone alerts active at asOf and
// filters the route overlap in Go: the stored route list is a denormalized
// comma-joined string, and alerts.ContainsAnyID is the one place that knows
// its element semantics.
func (r *GormRepository) FindActiveAlertsMatchingRoutes(ctx context.Context, routeIDs []string, asOf time.Time) ([]alerts.Alert, error) {
	if len(routeIDs) == 0 {
		return nil, nil
	}

	var rows []alerts.Alert
	err := r.db.WithContext(ctx).
		Where("is_complement = ?", false).
		Where("time_start <= ?", asOf).
		Where("(time_end IS NULL OR time_end >= ?)", asOf).
		Order("time_start DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	matched := make([]alerts.Alert, 0, len(rows))
	for _, row := range rows {
		if alerts.ContainsAnyID(row.RouteIDs, routeIDs) {
			matched = append(matched, row)
		}
	}
	return matched, nil
}

// UpsertAlert inserts or updates by primary key, refreshing updated_at.
func (r *GormRepository) UpsertAlert(ctx context.Context, a *alerts.Alert) error {
	a.UpdatedAt = time.Now().UTC()
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"time_start", "time_end", "cause", "effect",
				"header_text", "description_text", "url",
				"route_ids", "stop_ids",
				"is_complement", "parent_alert_id", "updated_at",
			}),
		}).
		Create(a).Error
}

// TouchUpdatedAt bumps updated_at without changing anything else.
func (r *GormRepository) TouchUpdatedAt(ctx context.Context, id string, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&alerts.Alert{}).
		Where("id = ?", id).
		Update("updated_at", at).Error
}
