package certificates

import (
	"context"

	"github.com/dmitrijs2005/secureshare/internal/server/models"
)

type Repository interface {
	// Create fails with common.ErrConflict when the content already has a
	// certificate.
	Create(ctx context.Context, c *models.DestructionCertificate) error
	GetByContentID(ctx context.Context, contentID string) (*models.DestructionCertificate, error)
	Count(ctx context.Context) (int, error)
}
