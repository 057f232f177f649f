// Package pins stores PIN credentials. Only PBKDF2 digests and keyed lookup
// hashes are persisted.
package pins

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

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts the credential. A lookup key already held by another active
// credential yields common.ErrPinInUse.
func (r *PostgresRepository) Create(ctx context.Context, p *models.PinCredential) error {
	query := `
		INSERT INTO pin_credentials (id, content_id, pin_hash, lookup_key, is_active, failed_attempts,
			locked_until, created_at, next_rotation_at, rotation_interval_seconds)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.db.ExecContext(ctx, query,
		p.ID, p.ContentID, p.PinHash, p.LookupKey, p.IsActive, p.FailedAttempts,
		dbx.NullTime(p.LockedUntil), p.CreatedAt, dbx.NullTime(p.NextRotationAt), int64(p.RotationInterval/time.Second))
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return common.ErrPinInUse
		}
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

const selectColumns = `id, content_id, pin_hash, lookup_key, is_active, failed_attempts,
		locked_until, created_at, next_rotation_at, rotation_interval_seconds`

func (r *PostgresRepository) GetByContentID(ctx context.Context, contentID string) (*models.PinCredential, error) {
	return r.get(ctx, `SELECT `+selectColumns+` FROM pin_credentials WHERE content_id = $1`, contentID)
}

func (r *PostgresRepository) GetActiveByLookup(ctx context.Context, lookupKey string) (*models.PinCredential, error) {
	return r.get(ctx, `SELECT `+selectColumns+` FROM pin_credentials WHERE lookup_key = $1 AND is_active`, lookupKey)
}

func (r *PostgresRepository) get(ctx context.Context, query, arg string) (*models.PinCredential, error) {
	var (
		p                  models.PinCredential
		locked, nextRotate sql.NullTime
		intervalSeconds    int64
	)
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&p.ID, &p.ContentID, &p.PinHash, &p.LookupKey, &p.IsActive, &p.FailedAttempts,
		&locked, &p.CreatedAt, &nextRotate, &intervalSeconds,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	p.LockedUntil = dbx.TimePtr(locked)
	p.NextRotationAt = dbx.TimePtr(nextRotate)
	p.RotationInterval = time.Duration(intervalSeconds) * time.Second
	return &p, nil
}

func (r *PostgresRepository) Update(ctx context.Context, p *models.PinCredential) error {
	query := `
		UPDATE pin_credentials SET pin_hash = $2, lookup_key = $3, is_active = $4,
			failed_attempts = $5, locked_until = $6, next_rotation_at = $7
		WHERE id = $1
	`
	res, err := r.db.ExecContext(ctx, query,
		p.ID, p.PinHash, p.LookupKey, p.IsActive, p.FailedAttempts,
		dbx.NullTime(p.LockedUntil), dbx.NullTime(p.NextRotationAt))
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return common.ErrPinInUse
		}
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
	if _, err := r.db.ExecContext(ctx, `DELETE FROM pin_credentials WHERE content_id = $1`, contentID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
