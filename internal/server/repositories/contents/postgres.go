// Package contents provides the content item store.
package contents

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/secureshare/internal/common"
	"github.com/dmitrijs2005/secureshare/internal/dbx"
	"github.com/dmitrijs2005/secureshare/internal/server/models"
)

// PostgresRepository implements Repository over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const selectColumns = `id, key_hash, iv, blob_key, content_type, file_name, file_size, mime_type,
		access_mode, created_at, expires_at, max_devices, current_devices, views_count,
		auto_terminate, require_biometric, dynamic_pin, pin_rotation_minutes,
		screenshot_protection, watermarking, status, status_changed_at, termination_reason,
		last_accessed_at`

func (r *PostgresRepository) Create(ctx context.Context, c *models.Content) error {
	query := `
		INSERT INTO content (id, key_hash, iv, blob_key, content_type, file_name, file_size, mime_type,
			access_mode, created_at, expires_at, max_devices, current_devices, views_count,
			auto_terminate, require_biometric, dynamic_pin, pin_rotation_minutes,
			screenshot_protection, watermarking, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
	`
	_, err := r.db.ExecContext(ctx, query,
		c.ID, c.KeyHash, c.IV, c.BlobKey, c.ContentType, c.FileName, c.FileSize, c.MimeType,
		string(c.AccessMode), c.CreatedAt, dbx.NullTime(c.ExpiresAt), c.MaxDevices, c.CurrentDevices, c.ViewsCount,
		c.AutoTerminate, c.RequireBiometric, c.DynamicPin, c.PinRotationMinutes,
		c.ScreenshotProtection, c.Watermarking, string(c.Status))
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return common.ErrConflict
		}
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (*models.Content, error) {
	return r.get(ctx, `SELECT `+selectColumns+` FROM content WHERE id = $1`, id)
}

func (r *PostgresRepository) GetForUpdate(ctx context.Context, id string) (*models.Content, error) {
	return r.get(ctx, `SELECT `+selectColumns+` FROM content WHERE id = $1 FOR UPDATE`, id)
}

func (r *PostgresRepository) get(ctx context.Context, query, id string) (*models.Content, error) {
	var (
		c                                  models.Content
		mode, status, reason               string
		expires, statusChanged, lastAccess sql.NullTime
	)
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&c.ID, &c.KeyHash, &c.IV, &c.BlobKey, &c.ContentType, &c.FileName, &c.FileSize, &c.MimeType,
		&mode, &c.CreatedAt, &expires, &c.MaxDevices, &c.CurrentDevices, &c.ViewsCount,
		&c.AutoTerminate, &c.RequireBiometric, &c.DynamicPin, &c.PinRotationMinutes,
		&c.ScreenshotProtection, &c.Watermarking, &status, &statusChanged, &reason,
		&lastAccess,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	c.AccessMode = models.AccessMode(mode)
	c.Status = models.ContentStatus(status)
	c.TerminationReason = models.DestructionReason(reason)
	c.ExpiresAt = dbx.TimePtr(expires)
	c.StatusChangedAt = dbx.TimePtr(statusChanged)
	c.LastAccessedAt = dbx.TimePtr(lastAccess)
	return &c, nil
}

// Update writes the mutable lifecycle fields. A write that would push
// current_devices above max_devices is rejected by the schema and reported as
// common.ErrDeviceLimitReached.
func (r *PostgresRepository) Update(ctx context.Context, c *models.Content) error {
	query := `
		UPDATE content SET current_devices = $2, views_count = $3, status = $4,
			status_changed_at = $5, termination_reason = $6, last_accessed_at = $7
		WHERE id = $1
	`
	res, err := r.db.ExecContext(ctx, query,
		c.ID, c.CurrentDevices, c.ViewsCount, string(c.Status),
		dbx.NullTime(c.StatusChangedAt), string(c.TerminationReason), dbx.NullTime(c.LastAccessedAt))
	if err != nil {
		if dbx.IsCheckViolation(err) {
			return common.ErrDeviceLimitReached
		}
		return fmt.Errorf("db error: %w", err)
	}
	return expectOne(res)
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM content WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return expectOne(res)
}

func (r *PostgresRepository) ListExpirable(ctx context.Context, now time.Time) ([]string, error) {
	query := `
		SELECT id FROM content
		WHERE status = 'active' AND expires_at IS NOT NULL AND expires_at < $1
		ORDER BY expires_at
	`
	return r.listIDs(ctx, query, now)
}

func (r *PostgresRepository) ListTerminal(ctx context.Context, before time.Time) ([]string, error) {
	query := `
		SELECT id FROM content
		WHERE status <> 'active' AND (status_changed_at IS NULL OR status_changed_at <= $1)
		ORDER BY status_changed_at
	`
	return r.listIDs(ctx, query, before)
}

func (r *PostgresRepository) listIDs(ctx context.Context, query string, arg any) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *PostgresRepository) Stats(ctx context.Context) (*models.Stats, error) {
	query := `
		SELECT COUNT(*),
			COUNT(*) FILTER (WHERE status = 'active'),
			COUNT(*) FILTER (WHERE access_mode = 'time_based'),
			COUNT(*) FILTER (WHERE access_mode = 'one_time'),
			COALESCE(SUM(views_count), 0)
		FROM content
	`
	s := &models.Stats{}
	err := r.db.QueryRowContext(ctx, query).Scan(
		&s.TotalContent, &s.ActiveContent, &s.TimeBasedContent, &s.OneTimeContent, &s.TotalViews)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return s, nil
}

func expectOne(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	switch n {
	case 1:
		return nil
	case 0:
		return common.ErrorNotFound
	default:
		return fmt.Errorf("unexpected rows affected: %d", n)
	}
}
