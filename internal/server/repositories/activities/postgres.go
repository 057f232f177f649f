// Package activities is the append-only log of suspicious-activity reports.
package activities

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/secureshare/internal/dbx"
	"github.com/dmitrijs2005/secureshare/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, a *models.SuspiciousActivity) error {
	query := `
		INSERT INTO suspicious_activities (id, content_id, activity_type, device_id, ip_address, description, detected_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.ExecContext(ctx, query,
		a.ID, a.ContentID, a.ActivityType, a.DeviceID, a.IPAddress, a.Description, a.DetectedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) CountSince(ctx context.Context, contentID string, since time.Time) (int, error) {
	query := `SELECT COUNT(*) FROM suspicious_activities WHERE content_id = $1 AND detected_at >= $2`

	var n int
	if err := r.db.QueryRowContext(ctx, query, contentID, since).Scan(&n); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

func (r *PostgresRepository) DeleteByContentID(ctx context.Context, contentID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM suspicious_activities WHERE content_id = $1`, contentID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
