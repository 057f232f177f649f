// Package certificates stores destruction certificates. Rows here are never
// deleted and have no foreign key to content.
package certificates

import (
	"context"
	"database/sql"
	"encoding/json"
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

func (r *PostgresRepository) Create(ctx context.Context, c *models.DestructionCertificate) error {
	meta, err := json.Marshal(c.Metadata)
	if err != nil {
		return fmt.Errorf("marshal metadata: %w", err)
	}

	query := `
		INSERT INTO destruction_certificates (id, content_id, reason, destroyed_at, proof_hash, signature, metadata)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err = r.db.ExecContext(ctx, query,
		c.ID, c.ContentID, string(c.Reason), c.DestroyedAt, c.ProofHash, c.Signature, meta)
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return common.ErrConflict
		}
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) GetByContentID(ctx context.Context, contentID string) (*models.DestructionCertificate, error) {
	query := `
		SELECT id, content_id, reason, destroyed_at, proof_hash, signature, metadata
		FROM destruction_certificates WHERE content_id = $1
	`
	var (
		c      models.DestructionCertificate
		reason string
		meta   []byte
	)
	err := r.db.QueryRowContext(ctx, query, contentID).Scan(
		&c.ID, &c.ContentID, &reason, &c.DestroyedAt, &c.ProofHash, &c.Signature, &meta)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	c.Reason = models.DestructionReason(reason)
	if len(meta) > 0 {
		if err := json.Unmarshal(meta, &c.Metadata); err != nil {
			return nil, fmt.Errorf("unmarshal metadata: %w", err)
		}
	}
	return &c, nil
}

func (r *PostgresRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM destruction_certificates`).Scan(&n); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}
