// Package shares keeps the uploader's local record of what it has shared.
// Keys and PINs are never stored; only what is needed to check on or
// terminate a share later.
package shares

import (
	"context"
	"time"
)

type Share struct {
	ContentID   string
	FileName    string
	ContentType string
	AccessMode  string
	ShareURL    string
	CreatedAt   time.Time
	ExpiresAt   *time.Time
	LastStatus  string
	CheckedAt   *time.Time
}

type Repository interface {
	Add(ctx context.Context, s *Share) error
	Get(ctx context.Context, contentID string) (*Share, error)
	List(ctx context.Context) ([]*Share, error)
	UpdateStatus(ctx context.Context, contentID, status string, at time.Time) error
	Delete(ctx context.Context, contentID string) error
}
