// Package sessions stores per-device access sessions, at most one per
// (content, device fingerprint).
package sessions

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/secureshare/internal/common"
	"github.com/dmitrijs2005/secureshare/internal/dbx"
	"github.com/dmitrijs2005/secureshare/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, s *models.AccessSession) error {
	query := `
		INSERT INTO access_sessions (id, content_id, device_id, device_fingerprint, session_token,
			started_at, last_activity, view_count, is_active, ip_address, user_agent)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := r.db.ExecContext(ctx, query,
		s.ID, s.ContentID, s.DeviceID, s.DeviceFingerprint, s.SessionToken,
		s.StartedAt, s.LastActivity, s.ViewCount, s.IsActive, s.IPAddress, s.UserAgent)
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return common.ErrConflict
		}
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

const selectColumns = `id, content_id, device_id, device_fingerprint, session_token,
		started_at, last_activity, view_count, is_active, ip_address, user_agent`

func (r *PostgresRepository) GetByDevice(ctx context.Context, contentID, fingerprint string) (*models.AccessSession, error) {
	query := `SELECT ` + selectColumns + ` FROM access_sessions WHERE content_id = $1 AND device_fingerprint = $2`
	return r.scan(r.db.QueryRowContext(ctx, query, contentID, fingerprint))
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.AccessSession, error) {
	query := `SELECT ` + selectColumns + ` FROM access_sessions WHERE id = $1`
	return r.scan(r.db.QueryRowContext(ctx, query, id))
}

func (r *PostgresRepository) scan(row *sql.Row) (*models.AccessSession, error) {
	s := &models.AccessSession{}
	err := row.Scan(&s.ID, &s.ContentID, &s.DeviceID, &s.DeviceFingerprint, &s.SessionToken,
		&s.StartedAt, &s.LastActivity, &s.ViewCount, &s.IsActive, &s.IPAddress, &s.UserAgent)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return s, nil
}

func (r *PostgresRepository) Update(ctx context.Context, s *models.AccessSession) error {
	query := `
		UPDATE access_sessions SET session_token = $2, last_activity = $3, view_count = $4,
			is_active = $5, ip_address = $6, user_agent = $7
		WHERE id = $1
	`
	res, err := r.db.ExecContext(ctx, query,
		s.ID, s.SessionToken, s.LastActivity, s.ViewCount, s.IsActive, s.IPAddress, s.UserAgent)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func (r *PostgresRepository) DeleteByContentID(ctx context.Context, contentID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM access_sessions WHERE content_id = $1`, contentID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
