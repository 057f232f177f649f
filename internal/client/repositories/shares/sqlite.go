package shares

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/secureshare/internal/common"
	"github.com/dmitrijs2005/secureshare/internal/dbx"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func unixOrNil(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.Unix()
}

func timeOrNil(v sql.NullInt64) *time.Time {
	if !v.Valid {
		return nil
	}
	t := time.Unix(v.Int64, 0).UTC()
	return &t
}

const shareColumns = `content_id, file_name, content_type, access_mode, share_url, created_at, expires_at, last_status, checked_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanShare(row scanner) (*Share, error) {
	var (
		s         Share
		createdAt int64
		expiresAt sql.NullInt64
		checkedAt sql.NullInt64
	)
	if err := row.Scan(&s.ContentID, &s.FileName, &s.ContentType, &s.AccessMode, &s.ShareURL,
		&createdAt, &expiresAt, &s.LastStatus, &checkedAt); err != nil {
		return nil, err
	}
	s.CreatedAt = time.Unix(createdAt, 0).UTC()
	s.ExpiresAt = timeOrNil(expiresAt)
	s.CheckedAt = timeOrNil(checkedAt)
	return &s, nil
}

// Add inserts s, replacing a previous record with the same content id.
func (r *SQLiteRepository) Add(ctx context.Context, s *Share) error {
	status := s.LastStatus
	if status == "" {
		status = "active"
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO shares (`+shareColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(content_id) DO UPDATE SET
			file_name = excluded.file_name,
			content_type = excluded.content_type,
			access_mode = excluded.access_mode,
			share_url = excluded.share_url,
			created_at = excluded.created_at,
			expires_at = excluded.expires_at,
			last_status = excluded.last_status,
			checked_at = excluded.checked_at
	`, s.ContentID, s.FileName, s.ContentType, s.AccessMode, s.ShareURL,
		s.CreatedAt.Unix(), unixOrNil(s.ExpiresAt), status, unixOrNil(s.CheckedAt))
	if err != nil {
		return fmt.Errorf("failed to add share %s: %w", s.ContentID, err)
	}
	return nil
}

func (r *SQLiteRepository) Get(ctx context.Context, contentID string) (*Share, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+shareColumns+` FROM shares WHERE content_id = ?`, contentID)
	s, err := scanShare(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get share %s: %w", contentID, err)
	}
	return s, nil
}

// List returns all shares, newest first.
func (r *SQLiteRepository) List(ctx context.Context) ([]*Share, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+shareColumns+` FROM shares ORDER BY created_at DESC, content_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list shares: %w", err)
	}
	defer rows.Close()

	result := make([]*Share, 0)
	for rows.Next() {
		s, err := scanShare(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan share row: %w", err)
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate share rows: %w", err)
	}
	return result, nil
}

func (r *SQLiteRepository) UpdateStatus(ctx context.Context, contentID, status string, at time.Time) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE shares SET last_status = ?, checked_at = ? WHERE content_id = ?`, status, at.Unix(), contentID)
	if err != nil {
		return fmt.Errorf("failed to update share %s: %w", contentID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, contentID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM shares WHERE content_id = ?`, contentID)
	if err != nil {
		return fmt.Errorf("failed to delete share %s: %w", contentID, err)
	}
	return nil
}
