package activities

import (
	"context"
	"time"

	"github.com/dmitrijs2005/secureshare/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, a *models.SuspiciousActivity) error
	// CountSince counts records for contentID detected at or after since.
	CountSince(ctx context.Context, contentID string, since time.Time) (int, error)
	DeleteByContentID(ctx context.Context, contentID string) error
}
